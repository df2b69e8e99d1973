package http

import (
	"encoding/json"
	"net/http"

	"github.com/calldesk/callcenter-backend-go/internal/domain/settings"
	"github.com/calldesk/callcenter-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	ProjectTypes(w http.ResponseWriter, r *http.Request)
	UpdateProjectTypes(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
	}
}

// ProjectTypes implements SettingsHandler.
func (h *settingsHandlerImpl) ProjectTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.ProjectTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateProjectTypes implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateProjectTypes(w http.ResponseWriter, r *http.Request) {
	actor, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req settings.UpdateProjectTypesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.settingsService.UpdateProjectTypes(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project types updated", result)
}
