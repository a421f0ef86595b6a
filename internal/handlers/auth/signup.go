package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"web-starter/domain"
	"web-starter/handler"
	usecase "web-starter/internal/usecases/auth"
)

type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignUpRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	switch {
	case len(r.Username) < 3 || len(r.Username) > 50:
		return errors.New("username must be 3 to 50 characters")
	case !strings.Contains(r.Email, "@") || strings.HasPrefix(r.Email, "@") || strings.HasSuffix(r.Email, "@"):
		return errors.New("email is invalid")
	case len(r.Password) < 8:
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

type SignUpResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (SignUpResponse) Status() int { return http.StatusCreated }

type SignUpHandler struct {
	usecase usecase.SignUpUseCase
}

func NewSignUpHandler(usecase usecase.SignUpUseCase) *SignUpHandler {
	return &SignUpHandler{
		usecase: usecase,
	}
}

func (h *SignUpHandler) ServeRequest(ctx context.Context, req *SignUpRequest) (*SignUpResponse, error) {
	id, err := h.usecase.Execute(ctx, &domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &SignUpResponse{ID: id, Message: "user signed up"}, nil
}

func (h *SignUpHandler) ModifyHeader(headers handler.Header, data *SignUpResponse) {
	headers.Set("Location", "/users/"+data.ID)
}
