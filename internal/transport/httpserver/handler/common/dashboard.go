package common

import (
	"net/http"

	"family-organizer/internal/domain/access"
)

func (h *Handlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.Dashboard.Summary(r.Context(), user.ID, user.Principal()))
}

func (h *Handlers) ListLocations(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(w, r)
	if !ok {
		return
	}
	if user.Role != access.RoleDriver && user.Role != access.RoleAdmin {
		Forbidden(w)
		return
	}
	writeJSON(w, http.StatusOK, h.Locations.Track(r.Context(), user.Principal()))
}
