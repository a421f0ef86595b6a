package handlers

import (
	"context"
	"errors"
	"net/http"
	"web-starter/domain"
	"web-starter/handler"
	"web-starter/internal/middleware"
	usecase "web-starter/internal/usecases/auth"

	"github.com/gofiber/fiber/v2"
)

type MeRequest struct{}

type MeResponse struct {
	User *domain.User `json:"user"`
}

type MeHandler struct {
	usecase usecase.MeUseCase
}

func NewMeHandler(usecase usecase.MeUseCase) *MeHandler {
	return &MeHandler{usecase: usecase}
}

func (h *MeHandler) ServeRequest(ctx context.Context, _ *MeRequest) (*MeResponse, error) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		return nil, handler.NewHandlerError(http.StatusUnauthorized, "missing session")
	}
	user, err := h.usecase.Execute(ctx, session.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, handler.NewHandlerError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return nil, err
	}
	return &MeResponse{User: user}, nil
}

func (h *MeHandler) ModifyHeader(headers handler.Header, _ *MeResponse) {
	headers.Set(fiber.HeaderCacheControl, "no-store")
}
