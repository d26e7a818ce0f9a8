package settings

import (
	"net/http"
	"strconv"

	"family-organizer/internal/domain/access"
	settingsdomain "family-organizer/internal/domain/settings"
	commonhandler "family-organizer/internal/transport/httpserver/handler/common"
	"family-organizer/pkg/logger"
)

type Handlers struct {
	Settings *settingsdomain.Service
	log      logger.Logger
}

func New(settings *settingsdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{Settings: settings, log: log}
}

type apiKeyRequest struct {
	APIKey string `json:"apiKey"`
}

func (h *Handlers) GetAPIKey(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionSettings, false); !ok {
		return
	}

	reveal, _ := strconv.ParseBool(r.URL.Query().Get("reveal"))
	writeJSON(w, http.StatusOK, h.Settings.View(r.Context(), reveal))
}

func (h *Handlers) SetAPIKey(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.Authorize(w, r, access.CollectionSettings, true)
	if !ok {
		return
	}

	var req apiKeyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	if err := h.Settings.SetAPIKey(r.Context(), req.APIKey); err != nil {
		if commonhandler.WriteValidationError(w, err) {
			return
		}
		h.log.InternalError("settings.api_key: save failed", err, "user_id", user.ID)
		commonhandler.WriteInternal(w)
		return
	}

	h.log.Info("settings.api_key: saved", "user_id", user.ID)
	writeJSON(w, http.StatusOK, h.Settings.View(r.Context(), false))
}

func (h *Handlers) ClearAPIKey(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.Authorize(w, r, access.CollectionSettings, true)
	if !ok {
		return
	}

	if err := h.Settings.ClearAPIKey(r.Context()); err != nil {
		h.log.InternalError("settings.api_key: clear failed", err, "user_id", user.ID)
		commonhandler.WriteInternal(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
