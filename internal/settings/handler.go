package settings

import (
	"encoding/json"
	"net/http"

	"github.com/versepath/scripture-companion/pkg/response"
)

// StoreMirror is the local settings store, updated after every facade
// write so the derived theme is recomputed synchronously.
type StoreMirror interface {
	Replace(Settings)
	EffectiveTheme() Theme
}

type Handler struct {
	service Service
	mirror  StoreMirror
}

func NewHandler(service Service, mirror StoreMirror) Handler {
	return Handler{service: service, mirror: mirror}
}

type settingsPayload struct {
	Settings
	EffectiveTheme Theme `json:"effectiveTheme"`
}

func (h *Handler) GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	current, err := h.service.GetSettings(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get settings", err.Error())
		return
	}

	payload := settingsPayload{Settings: current}
	if h.mirror != nil {
		payload.EffectiveTheme = h.mirror.EffectiveTheme()
	}
	response.Success(w, payload, "successfully")
}

func (h *Handler) UpdateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var update Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if err := h.service.UpdateSettings(r.Context(), update); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to update settings", err.Error())
		return
	}

	merged, err := h.service.GetSettings(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get settings", err.Error())
		return
	}
	if h.mirror != nil {
		h.mirror.Replace(merged)
	}

	payload := settingsPayload{Settings: merged}
	if h.mirror != nil {
		payload.EffectiveTheme = h.mirror.EffectiveTheme()
	}
	response.Success(w, payload, "successfully")
}
