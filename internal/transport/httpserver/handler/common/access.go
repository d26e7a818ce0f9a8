package common

import (
	"net/http"

	"family-organizer/internal/domain/access"
	"family-organizer/internal/domain/session"
	"family-organizer/internal/transport/httpserver/middleware"
)

// Authorize returns the signed-in user when their role may open collection,
// and with edit set, change it. Otherwise it writes 401 or 403.
func Authorize(w http.ResponseWriter, r *http.Request, collection access.Collection, edit bool) (session.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not_signed_in", "sign in first")
		return session.User{}, false
	}

	allowed := access.Allows(user.Role, collection)
	if edit {
		allowed = access.CanEdit(user.Principal(), collection)
	}
	if !allowed {
		Forbidden(w)
		return session.User{}, false
	}
	return user, true
}

func CurrentUser(w http.ResponseWriter, r *http.Request) (session.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not_signed_in", "sign in first")
		return session.User{}, false
	}
	return user, true
}

func Forbidden(w http.ResponseWriter) {
	writeError(w, http.StatusForbidden, "forbidden", "not allowed for your role")
}
