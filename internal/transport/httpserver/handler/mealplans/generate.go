package mealplans

import (
	"errors"
	"net/http"

	"family-organizer/internal/domain/access"
	mealgendomain "family-organizer/internal/domain/mealgen"
	mealsdomain "family-organizer/internal/domain/meals"
	commonhandler "family-organizer/internal/transport/httpserver/handler/common"
)

type generateRequest struct {
	APIKey     string `json:"apiKey"`
	SaveAPIKey bool   `json:"saveApiKey"`
}

type acceptRequest struct {
	Plans []mealsdomain.MealPlan `json:"plans"`
}

// GenerateMealPlans returns a preview only. The client accepts it through
// AcceptMealPlans.
func (h *Handlers) GenerateMealPlans(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.Authorize(w, r, access.CollectionMealPlans, true)
	if !ok {
		return
	}

	var req generateRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json", "invalid json")
			return
		}
	}

	preview, err := h.Generator.Generate(r.Context(), mealgendomain.GenerateInput{
		APIKey:     req.APIKey,
		SaveAPIKey: req.SaveAPIKey,
	})
	if err != nil {
		var genErr *mealgendomain.GenerationError
		switch {
		case errors.Is(err, mealgendomain.ErrAPIKeyRequired):
			writeError(w, http.StatusBadRequest, "api_key_required", "Please enter your OpenAI API key to continue.")
		case errors.Is(err, mealgendomain.ErrGenerationInProgress):
			writeError(w, http.StatusConflict, "generation_in_progress", "a meal plan is already being generated")
		case errors.As(err, &genErr):
			writeError(w, http.StatusBadGateway, "meal_generation_failed", "Failed to generate meal plan: "+genErr.Error())
		default:
			h.log.InternalError("meal_plans.generate: failed", err, "user_id", user.ID)
			commonhandler.WriteInternal(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, preview)
}

func (h *Handlers) AcceptMealPlans(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionMealPlans, true); !ok {
		return
	}

	var req acceptRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	plans, err := h.Generator.Accept(r.Context(), req.Plans)
	if err != nil {
		h.writeMealError(w, "meal_plans.accept", err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}
