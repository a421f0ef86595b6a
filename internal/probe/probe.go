// Package probe drives a websocket route the way a client would: one JSON
// frame out, one envelope back.
package probe

import (
	"context"
	"fmt"
	"net/http"
	"web-starter/handler"

	"github.com/gorilla/websocket"
)

type Options struct {
	URL     string
	Message string
	Count   int
	Header  http.Header
}

// Run sends Count frames and collects the envelopes in order. It stops at
// the first transport error; handler errors arrive inside the envelopes.
func Run(ctx context.Context, opts Options) ([]handler.Envelope, error) {
	if opts.Count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", opts.Count)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, opts.URL, opts.Header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: %w (status %d)", opts.URL, err, resp.StatusCode)
		}
		return nil, fmt.Errorf("dial %s: %w", opts.URL, err)
	}
	defer conn.Close()

	envelopes := make([]handler.Envelope, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		if err := ctx.Err(); err != nil {
			return envelopes, err
		}
		if err := conn.WriteJSON(map[string]string{"message": opts.Message}); err != nil {
			return envelopes, fmt.Errorf("write frame %d: %w", i, err)
		}
		var env handler.Envelope
		if err := conn.ReadJSON(&env); err != nil {
			return envelopes, fmt.Errorf("read frame %d: %w", i, err)
		}
		envelopes = append(envelopes, env)
	}

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return envelopes, nil
}
