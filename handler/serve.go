package handler

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Serve runs one response cycle: ServeRequest once, then ModifyHeader once
// with the value it returned, which may be nil. ModifyHeader is skipped when
// ServeRequest fails.
func Serve[T Request, R Response](ctx context.Context, h RequestHandler[T, R], req *T, headers Header) (*R, error) {
	res, err := h.ServeRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	modifyHeader(h, headers, res)
	return res, nil
}

// ServeFiber is Serve for handlers that take the fiber context.
func ServeFiber[T Request, R Response](c *fiber.Ctx, ctx context.Context, h FiberHandler[T, R], req *T, headers Header) (*R, error) {
	res, err := h.ServeRequest(c, ctx, req)
	if err != nil {
		return nil, err
	}
	modifyHeader(h, headers, res)
	return res, nil
}

func modifyHeader[R Response](h any, headers Header, res *R) {
	m, ok := h.(HeaderModifier[R])
	if !ok {
		return
	}
	if headers == nil {
		headers = http.Header{}
	}
	m.ModifyHeader(headers, res)
}
