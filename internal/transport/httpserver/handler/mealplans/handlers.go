package mealplans

import (
	"errors"
	"net/http"

	"family-organizer/internal/domain/access"
	mealgendomain "family-organizer/internal/domain/mealgen"
	mealsdomain "family-organizer/internal/domain/meals"
	commonhandler "family-organizer/internal/transport/httpserver/handler/common"
	"family-organizer/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Meals     *mealsdomain.Service
	Generator *mealgendomain.Service
	log       logger.Logger
}

func New(meals *mealsdomain.Service, generator *mealgendomain.Service, log logger.Logger) *Handlers {
	return &Handlers{Meals: meals, Generator: generator, log: log}
}

type mealPlanRequest struct {
	Day       string   `json:"day"`
	Breakfast string   `json:"breakfast"`
	Lunch     string   `json:"lunch"`
	Dinner    string   `json:"dinner"`
	Snacks    []string `json:"snacks"`
	Notes     string   `json:"notes"`
}

func (req mealPlanRequest) input() mealsdomain.MealPlanInput {
	return mealsdomain.MealPlanInput{
		Day:       req.Day,
		Breakfast: req.Breakfast,
		Lunch:     req.Lunch,
		Dinner:    req.Dinner,
		Snacks:    req.Snacks,
		Notes:     req.Notes,
	}
}

func (h *Handlers) ListMealPlans(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionMealPlans, false); !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.Meals.List(r.Context()))
}

func (h *Handlers) GetMealPlan(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionMealPlans, false); !ok {
		return
	}

	plan, err := h.Meals.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeMealError(w, "meal_plans.get", err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *Handlers) GetMealPlanForDay(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionMealPlans, false); !ok {
		return
	}

	plan, err := h.Meals.ForDay(r.Context(), chi.URLParam(r, "day"))
	if err != nil {
		h.writeMealError(w, "meal_plans.day", err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *Handlers) CreateMealPlan(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionMealPlans, true); !ok {
		return
	}

	var req mealPlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	plan, err := h.Meals.Create(r.Context(), req.input())
	if err != nil {
		h.writeMealError(w, "meal_plans.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, plan)
}

func (h *Handlers) UpdateMealPlan(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionMealPlans, true); !ok {
		return
	}

	var req mealPlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	plan, err := h.Meals.Update(r.Context(), chi.URLParam(r, "id"), req.input())
	if err != nil {
		h.writeMealError(w, "meal_plans.update", err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *Handlers) DeleteMealPlan(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionMealPlans, true); !ok {
		return
	}

	if err := h.Meals.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeMealError(w, "meal_plans.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) writeMealError(w http.ResponseWriter, op string, err error) {
	if commonhandler.WriteValidationError(w, err) {
		return
	}
	switch {
	case errors.Is(err, mealsdomain.ErrMealPlanNotFound):
		writeError(w, http.StatusNotFound, "meal_plan_not_found", "meal plan not found")
	case errors.Is(err, mealsdomain.ErrInvalidDay):
		writeError(w, http.StatusBadRequest, "invalid_day", "day must be a weekday name")
	default:
		h.log.InternalError(op+": failed", err)
		commonhandler.WriteInternal(w)
	}
}
