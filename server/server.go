package server

import (
	"fmt"
	"net"
	"runtime/debug"
	"time"
	"web-starter/handler"
	"web-starter/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

type Config struct {
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
	AppName      string
}

// NewFiberApp builds the fiber app every route is mounted on. Panics become
// 500 responses and every request gets an id and an access log line.
func NewFiberApp(cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		IdleTimeout:           cfg.IdleTimeout,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		BodyLimit:             cfg.BodyLimit,
		Concurrency:           256 * 1024,
		DisableStartupMessage: true,
		ErrorHandler:          handler.ErrorHandler,
	})

	app.Use(
		middleware.RequestID(),
		middleware.AccessLog(zap.L()),
		recover.New(recover.Config{
			EnableStackTrace:  true,
			StackTraceHandler: logPanic,
		}),
	)
	return app
}

func logPanic(c *fiber.Ctx, e interface{}) {
	zap.L().Error("recovered from panic",
		zap.Any("panic", e),
		zap.String("path", c.Path()),
		zap.String("request_id", middleware.RequestIDFromContext(c.UserContext())),
		zap.ByteString("stack", debug.Stack()),
	)
}

// Listen binds 0.0.0.0:<port>.
func Listen(port string) (net.Listener, error) {
	ln, err := net.Listen(fiber.NetworkTCP4, fmt.Sprintf("0.0.0.0:%s", port))
	if err != nil {
		return nil, fmt.Errorf("listen on port %s: %w", port, err)
	}
	return ln, nil
}

// Serve blocks serving app on ln until the app is shut down or ln is closed.
func Serve(app *fiber.App, ln net.Listener) error {
	return app.Listener(ln)
}
