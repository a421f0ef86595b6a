package handlers

import (
	"context"
	"errors"
	"net/http"
	"web-starter/handler"
	usecase "web-starter/internal/usecases/greeting"
)

type HelloRequest struct {
	Name string `params:"name"`
}

type HelloResponse struct {
	Message string `json:"message"`
}

// HelloHandler has no header hook; responses go out with the defaults.
type HelloHandler struct {
	usecase usecase.HelloUseCase
}

func NewHelloHandler(usecase usecase.HelloUseCase) *HelloHandler {
	return &HelloHandler{
		usecase: usecase,
	}
}

func (h *HelloHandler) ServeRequest(ctx context.Context, req *HelloRequest) (*HelloResponse, error) {
	message, err := h.usecase.Execute(ctx, req.Name)
	if errors.Is(err, usecase.ErrEmptyName) {
		return nil, handler.NewHandlerError(http.StatusBadRequest, "name is required")
	}
	if err != nil {
		return nil, err
	}

	return &HelloResponse{Message: message}, nil
}
