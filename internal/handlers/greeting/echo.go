package handlers

import (
	"context"
	"errors"
	"strconv"
	"time"
	"web-starter/handler"
	"web-starter/internal/middleware"
)

const HeaderEchoLength = "X-Echo-Length"

type EchoRequest struct {
	Message string `json:"message"`
}

func (r *EchoRequest) Validate() error {
	if r.Message == "" {
		return errors.New("message is required")
	}
	if len(r.Message) > 4096 {
		return errors.New("message is longer than 4096 bytes")
	}
	return nil
}

type EchoResponse struct {
	Message    string    `json:"message"`
	Length     int       `json:"length"`
	RequestID  string    `json:"request_id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

// EchoHandler answers every message with itself. It is mounted on an
// authenticated websocket route, so each frame is one cycle and the caller's
// user id rides along.
type EchoHandler struct {
	now func() time.Time
}

func NewEchoHandler() *EchoHandler {
	return &EchoHandler{now: time.Now}
}

func (h *EchoHandler) ServeRequest(ctx context.Context, req *EchoRequest) (*EchoResponse, error) {
	res := &EchoResponse{
		Message:    req.Message,
		Length:     len(req.Message),
		RequestID:  middleware.RequestIDFromContext(ctx),
		ReceivedAt: h.now().UTC(),
	}
	if session, ok := middleware.SessionFromContext(ctx); ok {
		res.UserID = session.UserID
	}
	return res, nil
}

func (h *EchoHandler) ModifyHeader(headers handler.Header, data *EchoResponse) {
	headers.Set(HeaderEchoLength, strconv.Itoa(data.Length))
}
