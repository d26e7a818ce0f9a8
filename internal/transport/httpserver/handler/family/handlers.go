package family

import (
	"errors"
	"net/http"

	"family-organizer/internal/domain/access"
	membersdomain "family-organizer/internal/domain/members"
	commonhandler "family-organizer/internal/transport/httpserver/handler/common"
	"family-organizer/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Members *membersdomain.Service
	log     logger.Logger
}

func New(members *membersdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{Members: members, log: log}
}

type createMemberRequest struct {
	Name                string   `json:"name"`
	Role                string   `json:"role"`
	Avatar              string   `json:"avatar"`
	Password            string   `json:"password"`
	Preferences         []string `json:"preferences"`
	MealPreferences     []string `json:"mealPreferences"`
	ActivityPreferences []string `json:"activityPreferences"`
}

type updateMemberRequest struct {
	Name                *string   `json:"name"`
	Role                *string   `json:"role"`
	Avatar              *string   `json:"avatar"`
	Password            *string   `json:"password"`
	Preferences         *[]string `json:"preferences"`
	MealPreferences     *[]string `json:"mealPreferences"`
	ActivityPreferences *[]string `json:"activityPreferences"`
}

type memberResponse struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Role                access.Role `json:"role"`
	Avatar              string      `json:"avatar,omitempty"`
	Preferences         []string    `json:"preferences"`
	MealPreferences     []string    `json:"mealPreferences"`
	ActivityPreferences []string    `json:"activityPreferences"`
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionMembers, false); !ok {
		return
	}

	members := h.Members.List(r.Context())
	response := make([]memberResponse, 0, len(members))
	for _, member := range members {
		response = append(response, toMemberResponse(member))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetMember(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionMembers, false); !ok {
		return
	}

	member, err := h.Members.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeMemberError(w, "members.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toMemberResponse(*member))
}

func (h *Handlers) CreateMember(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.Authorize(w, r, access.CollectionMembers, true)
	if !ok {
		return
	}

	var req createMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	member, err := h.Members.Create(r.Context(), membersdomain.CreateMemberInput{
		Name:                req.Name,
		Role:                req.Role,
		Avatar:              req.Avatar,
		Password:            req.Password,
		Preferences:         req.Preferences,
		MealPreferences:     req.MealPreferences,
		ActivityPreferences: req.ActivityPreferences,
	})
	if err != nil {
		h.writeMemberError(w, "members.create", err)
		return
	}

	h.log.Info("members.create: member added", "member_id", member.ID, "by", user.ID)
	writeJSON(w, http.StatusCreated, toMemberResponse(*member))
}

func (h *Handlers) UpdateMember(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionMembers, true); !ok {
		return
	}

	var req updateMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	member, err := h.Members.Update(r.Context(), membersdomain.UpdateMemberInput{
		ID:                  chi.URLParam(r, "id"),
		Name:                req.Name,
		Role:                req.Role,
		Avatar:              req.Avatar,
		Password:            req.Password,
		Preferences:         req.Preferences,
		MealPreferences:     req.MealPreferences,
		ActivityPreferences: req.ActivityPreferences,
	})
	if err != nil {
		h.writeMemberError(w, "members.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toMemberResponse(*member))
}

func (h *Handlers) DeleteMember(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionMembers, true); !ok {
		return
	}

	if err := h.Members.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeMemberError(w, "members.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) writeMemberError(w http.ResponseWriter, op string, err error) {
	if commonhandler.WriteValidationError(w, err) {
		return
	}
	if errors.Is(err, membersdomain.ErrMemberNotFound) {
		writeError(w, http.StatusNotFound, "member_not_found", "member not found")
		return
	}
	h.log.InternalError(op+": failed", err)
	commonhandler.WriteInternal(w)
}

func toMemberResponse(member membersdomain.FamilyMember) memberResponse {
	return memberResponse{
		ID:                  member.ID,
		Name:                member.Name,
		Role:                member.Role,
		Avatar:              member.Avatar,
		Preferences:         nonNil(member.Preferences),
		MealPreferences:     nonNil(member.MealPreferences),
		ActivityPreferences: nonNil(member.ActivityPreferences),
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
