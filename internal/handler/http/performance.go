package http

import (
	"context"
	"net/http"

	"github.com/calldesk/callcenter-backend-go/internal/domain/performance"
	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
	"github.com/calldesk/callcenter-backend-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	Goals(w http.ResponseWriter, r *http.Request)
	TeamComparison(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &performanceHandlerImpl{
		performanceService: performanceService,
	}
}

// Daily implements PerformanceHandler.
func (h *performanceHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	h.serveStats(w, r, h.performanceService.Daily)
}

// Weekly implements PerformanceHandler.
func (h *performanceHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	h.serveStats(w, r, h.performanceService.Weekly)
}

// Monthly implements PerformanceHandler.
func (h *performanceHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	h.serveStats(w, r, h.performanceService.Monthly)
}

// Goals implements PerformanceHandler.
func (h *performanceHandlerImpl) Goals(w http.ResponseWriter, r *http.Request) {
	actor, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.performanceService.Goals(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// TeamComparison implements PerformanceHandler.
func (h *performanceHandlerImpl) TeamComparison(w http.ResponseWriter, r *http.Request) {
	actor, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.performanceService.TeamComparison(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *performanceHandlerImpl) serveStats(w http.ResponseWriter, r *http.Request, fn func(context.Context, user.Identity) (performance.StatsResponse, error)) {
	actor, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := fn(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
