// Package handler defines the contract every business handler implements and
// the adapters that drive it from fiber routes and websocket connections.
package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type Request any
type Response any

// RequestHandler is implemented by every business handler. It turns one
// request into one response.
type RequestHandler[T Request, R Response] interface {
	ServeRequest(ctx context.Context, req *T) (*R, error)
}

// FiberHandler is a RequestHandler that also needs the fiber context, for
// example to read the client IP or the User-Agent.
type FiberHandler[T Request, R Response] interface {
	ServeRequest(fbrCtx *fiber.Ctx, ctx context.Context, req *T) (*R, error)
}

// HeaderModifier is the optional hook that lets a handler adjust the response
// headers once ServeRequest has produced data.
type HeaderModifier[R Response] interface {
	ModifyHeader(headers Header, data *R)
}

// DefaultHeaders can be embedded to make the no-op ModifyHeader explicit.
type DefaultHeaders[R Response] struct{}

func (DefaultHeaders[R]) ModifyHeader(Header, *R) {}

// HandlerFunc adapts an ordinary function to RequestHandler.
type HandlerFunc[T Request, R Response] func(ctx context.Context, req *T) (*R, error)

func (f HandlerFunc[T, R]) ServeRequest(ctx context.Context, req *T) (*R, error) {
	return f(ctx, req)
}

// Validator is checked on the bound request before ServeRequest runs.
type Validator interface {
	Validate() error
}

// StatusCoder lets a response pick its own success status.
type StatusCoder interface {
	Status() int
}
