package common

import (
	"errors"
	"net/http"
	"strings"

	"family-organizer/internal/domain/access"
	sessiondomain "family-organizer/internal/domain/session"
)

type loginRequest struct {
	MemberID string `json:"memberId"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User  sessiondomain.User `json:"user"`
	Views []access.View      `json:"views"`
}

func (h *Handlers) ListCandidates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Sessions.Candidates(r.Context()))
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	req.MemberID = strings.TrimSpace(req.MemberID)
	if req.MemberID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "memberId is required")
		return
	}

	user, err := h.Sessions.Login(r.Context(), req.MemberID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, sessiondomain.ErrMemberNotFound):
			writeError(w, http.StatusNotFound, "member_not_found", "member not found")
		case errors.Is(err, sessiondomain.ErrIncorrectPassword):
			writeError(w, http.StatusUnauthorized, "incorrect_password", "Incorrect password")
		default:
			h.log.InternalError("session.login: login failed", err, "member_id", req.MemberID)
			WriteInternal(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{User: *user, Views: access.Views(user.Role)})
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{User: user, Views: access.Views(user.Role)})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) Views(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, access.Views(user.Role))
}
