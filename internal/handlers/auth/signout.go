package handlers

import (
	"context"
	"net/http"
	"web-starter/handler"
	"web-starter/internal/middleware"
	usecase "web-starter/internal/usecases/auth"

	"github.com/gofiber/fiber/v2"
)

type SignOutRequest struct {
	Everywhere bool `query:"everywhere" json:"everywhere"`
}

type SignOutResponse struct {
	Message string `json:"message"`
}

type SignOutHandler struct {
	usecase usecase.SignOutUseCase
	secure  bool
}

func NewSignOutHandler(usecase usecase.SignOutUseCase, secureCookie bool) *SignOutHandler {
	return &SignOutHandler{usecase: usecase, secure: secureCookie}
}

func (h *SignOutHandler) ServeRequest(ctx context.Context, req *SignOutRequest) (*SignOutResponse, error) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		return nil, handler.NewHandlerError(http.StatusUnauthorized, "missing session")
	}
	if err := h.usecase.Execute(ctx, session.UserID, middleware.SessionTokenFromContext(ctx), req.Everywhere); err != nil {
		return nil, err
	}
	return &SignOutResponse{Message: "signed out"}, nil
}

func (h *SignOutHandler) ModifyHeader(headers handler.Header, _ *SignOutResponse) {
	headers.Add(fiber.HeaderSetCookie, sessionCookie("", 0, h.secure))
}
