package handlers

import (
	"context"
	"errors"
	"time"
	"web-starter/domain"
	"web-starter/handler"
	"web-starter/internal/middleware"
	usecase "web-starter/internal/usecases/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type SignInRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (r *SignInRequest) Validate() error {
	if r.Identifier == "" || r.Password == "" {
		return errors.New("identifier and password are required")
	}
	return nil
}

type SignInResponse struct {
	User      *domain.User `json:"user"`
	ExpiresAt time.Time    `json:"expires_at"`

	token string
}

type SignInHandler struct {
	usecase usecase.SignInUseCase
	secure  bool
}

func NewSignInHandler(usecase usecase.SignInUseCase, secureCookie bool) *SignInHandler {
	return &SignInHandler{
		usecase: usecase,
		secure:  secureCookie,
	}
}

func (h *SignInHandler) ServeRequest(fbrCtx *fiber.Ctx, ctx context.Context, req *SignInRequest) (*SignInResponse, error) {
	result, err := h.usecase.Execute(ctx, req.Identifier, req.Password, fbrCtx.Get(fiber.HeaderUserAgent), fbrCtx.IP())
	if err != nil {
		return nil, mapError(err)
	}

	return &SignInResponse{User: result.User, ExpiresAt: result.Expires.UTC(), token: result.Token}, nil
}

// ModifyHeader hands the session token to the client as a cookie; the token
// itself never appears in the body.
func (h *SignInHandler) ModifyHeader(headers handler.Header, data *SignInResponse) {
	headers.Add(fiber.HeaderSetCookie, sessionCookie(data.token, time.Until(data.ExpiresAt), h.secure))
}

func sessionCookie(value string, maxAge time.Duration, secure bool) string {
	cookie := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(cookie)

	cookie.SetKey(middleware.SessionCookie)
	cookie.SetValue(value)
	cookie.SetPath("/")
	cookie.SetHTTPOnly(true)
	cookie.SetSecure(secure)
	cookie.SetSameSite(fasthttp.CookieSameSiteLaxMode)
	if maxAge > 0 {
		cookie.SetMaxAge(int(maxAge.Seconds()))
	} else {
		cookie.SetExpire(fasthttp.CookieExpireDelete)
	}
	return cookie.String()
}
