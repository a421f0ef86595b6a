package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const userContextLocal = "handler.userContext"

// DefaultWSReadLimit caps a single frame when no WithReadLimit is given.
const DefaultWSReadLimit int64 = 4 * 1024 * 1024

type wsOptions struct {
	readLimit int64
}

type WSOption func(*wsOptions)

// WithReadLimit caps the size of one incoming frame in bytes. A larger frame
// closes the connection with 1009 (message too big).
func WithReadLimit(n int64) WSOption {
	return func(o *wsOptions) {
		if n > 0 {
			o.readLimit = n
		}
	}
}

// Envelope is the frame written back for every websocket response cycle.
type Envelope struct {
	Status  int         `json:"status"`
	Headers http.Header `json:"headers,omitempty"`
	Data    any         `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HandleWS upgrades the route to a websocket and treats every incoming
// message as one request: it is decoded as JSON into T, served, and answered
// with an Envelope carrying the headers ModifyHeader set.
func HandleWS[T Request, R Response](h RequestHandler[T, R], opts ...WSOption) fiber.Handler {
	o := wsOptions{readLimit: DefaultWSReadLimit}
	for _, opt := range opts {
		opt(&o)
	}

	upgrade := websocket.New(func(conn *websocket.Conn) {
		conn.SetReadLimit(o.readLimit)

		parent, ok := conn.Locals(userContextLocal).(context.Context)
		if !ok || parent == nil {
			parent = context.Background()
		}
		ctx, cancel := context.WithCancel(parent)
		defer cancel()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					zap.L().Warn("websocket read failed", zap.Error(err))
				}
				return
			}
			if err := conn.WriteJSON(serveFrame(ctx, h, msg)); err != nil {
				zap.L().Warn("websocket write failed", zap.Error(err))
				return
			}
		}
	})

	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return respondWithError(c, fiber.ErrUpgradeRequired)
		}
		c.Locals(userContextLocal, c.UserContext())
		return upgrade(c)
	}
}

func serveFrame[T Request, R Response](ctx context.Context, h RequestHandler[T, R], msg []byte) Envelope {
	req := new(T)
	if err := json.Unmarshal(msg, req); err != nil {
		return errorEnvelope(fmt.Errorf("%w: %v", ErrBind, err))
	}
	if err := validate(req); err != nil {
		return errorEnvelope(err)
	}

	headers := http.Header{}
	res, err := Serve(ctx, h, req, headers)
	if err != nil {
		return errorEnvelope(err)
	}
	if res == nil {
		return Envelope{Status: fiber.StatusNoContent, Headers: headers}
	}
	status := fiber.StatusOK
	if sc, ok := any(res).(StatusCoder); ok {
		status = sc.Status()
	}
	return Envelope{Status: status, Headers: headers, Data: res}
}

func errorEnvelope(err error) Envelope {
	return Envelope{Status: StatusCode(err), Error: ErrorMessage(err)}
}
