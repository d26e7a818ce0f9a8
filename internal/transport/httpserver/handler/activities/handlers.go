package activities

import (
	"errors"
	"net/http"

	"family-organizer/internal/domain/access"
	activitiesdomain "family-organizer/internal/domain/activities"
	commonhandler "family-organizer/internal/transport/httpserver/handler/common"
	"family-organizer/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Activities *activitiesdomain.Service
	log        logger.Logger
}

func New(activities *activitiesdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{Activities: activities, log: log}
}

type activityRequest struct {
	ChildName string `json:"childName"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	Driver    string `json:"driver"`
	Notes     string `json:"notes"`
	Recurring bool   `json:"recurring"`
}

func (req activityRequest) input() activitiesdomain.ActivityInput {
	return activitiesdomain.ActivityInput{
		ChildName: req.ChildName,
		Title:     req.Title,
		Type:      req.Type,
		Date:      req.Date,
		Time:      req.Time,
		Location:  req.Location,
		Driver:    req.Driver,
		Notes:     req.Notes,
		Recurring: req.Recurring,
	}
}

type calendarResponse struct {
	Date       string                      `json:"date"`
	Activities []activitiesdomain.Activity `json:"activities"`
}

func (h *Handlers) ListActivities(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.Authorize(w, r, access.CollectionActivities, false)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.Activities.Schedule(r.Context(), user.Principal()))
}

func (h *Handlers) Calendar(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.Authorize(w, r, access.CollectionActivities, false)
	if !ok {
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.Activities.Today()
	}
	list, err := h.Activities.OnDate(r.Context(), user.Principal(), date)
	if err != nil {
		h.writeActivityError(w, "activities.calendar", err)
		return
	}
	writeJSON(w, http.StatusOK, calendarResponse{Date: date, Activities: list})
}

// GetActivity answers 404 for records the user may not see, so hidden
// activities are indistinguishable from missing ones.
func (h *Handlers) GetActivity(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.Authorize(w, r, access.CollectionActivities, false)
	if !ok {
		return
	}

	activity, err := h.Activities.Get(r.Context(), chi.URLParam(r, "id"))
	if err == nil && !access.Decide(user.Principal(), access.CollectionActivities, activity.Record()).Visible {
		err = activitiesdomain.ErrActivityNotFound
	}
	if err != nil {
		h.writeActivityError(w, "activities.get", err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

func (h *Handlers) CreateActivity(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionActivities, true); !ok {
		return
	}

	var req activityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	activity, err := h.Activities.Create(r.Context(), req.input())
	if err != nil {
		h.writeActivityError(w, "activities.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, activity)
}

func (h *Handlers) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionActivities, true); !ok {
		return
	}

	var req activityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	activity, err := h.Activities.Update(r.Context(), chi.URLParam(r, "id"), req.input())
	if err != nil {
		h.writeActivityError(w, "activities.update", err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

func (h *Handlers) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionActivities, true); !ok {
		return
	}

	if err := h.Activities.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeActivityError(w, "activities.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) writeActivityError(w http.ResponseWriter, op string, err error) {
	if commonhandler.WriteValidationError(w, err) {
		return
	}
	if errors.Is(err, activitiesdomain.ErrActivityNotFound) {
		writeError(w, http.StatusNotFound, "activity_not_found", "activity not found")
		return
	}
	h.log.InternalError(op+": failed", err)
	commonhandler.WriteInternal(w)
}
