package handlers

import (
	"context"
	"errors"
	"net/http"
	"web-starter/handler"
	usecase "web-starter/internal/usecases/greeting"
)

type HealthRequest struct{}

type HealthResponse struct {
	Status  string            `json:"status"`
	Name    string            `json:"name"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

type HealthHandler struct {
	handler.DefaultHeaders[HealthResponse]

	usecase usecase.HealthUseCase
	name    string
	version string
}

func NewHealthHandler(usecase usecase.HealthUseCase, name, version string) *HealthHandler {
	return &HealthHandler{usecase: usecase, name: name, version: version}
}

func (h *HealthHandler) ServeRequest(ctx context.Context, _ *HealthRequest) (*HealthResponse, error) {
	checks, err := h.usecase.Execute(ctx)
	if errors.Is(err, usecase.ErrUnhealthy) {
		return nil, handler.WrapHandlerError(http.StatusServiceUnavailable, "unhealthy", err)
	}
	if err != nil {
		return nil, err
	}
	return &HealthResponse{Status: "ok", Name: h.name, Version: h.version, Checks: checks}, nil
}
