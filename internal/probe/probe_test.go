package probe

import (
	"context"
	"net"
	"net/http"
	"strings"
	"testing"
	"web-starter/handler"
	greeting "web-starter/internal/handlers/greeting"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startEcho(t *testing.T) string {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler, DisableStartupMessage: true})
	app.Get("/ws/echo", handler.HandleWS[greeting.EchoRequest, greeting.EchoResponse](greeting.NewEchoHandler()))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.Shutdown()
	})
	return "ws://" + ln.Addr().String() + "/ws/echo"
}

func TestRun(t *testing.T) {
	url := startEcho(t)

	t.Run("one envelope per frame", func(t *testing.T) {
		envs, err := Run(context.Background(), Options{URL: url, Message: "ping", Count: 3})
		require.NoError(t, err)
		require.Len(t, envs, 3)
		for _, env := range envs {
			assert.Equal(t, http.StatusOK, env.Status)
			assert.Equal(t, "4", http.Header(env.Headers).Get(greeting.HeaderEchoLength))
			data, ok := env.Data.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "ping", data["message"])
		}
	})

	t.Run("invalid frames come back as errors", func(t *testing.T) {
		envs, err := Run(context.Background(), Options{URL: url, Message: "", Count: 1})
		require.NoError(t, err)
		require.Len(t, envs, 1)
		assert.Equal(t, http.StatusUnprocessableEntity, envs[0].Status)
		assert.NotEmpty(t, envs[0].Error)
	})

	t.Run("bad count", func(t *testing.T) {
		_, err := Run(context.Background(), Options{URL: url, Count: 0})
		assert.Error(t, err)
	})

	t.Run("plain http route refuses", func(t *testing.T) {
		_, err := Run(context.Background(), Options{URL: strings.Replace(url, "/ws/echo", "/missing", 1), Message: "x", Count: 1})
		assert.Error(t, err)
	})
}
