package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WaitForShutdown blocks until SIGINT/SIGTERM or ctx is done, then shuts
// the app down, waiting at most timeout for in-flight requests.
func WaitForShutdown(app *fiber.App, timeout time.Duration, ctx context.Context) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		zap.L().Info("shutting down server", zap.String("signal", sig.String()))
	case <-ctx.Done():
		zap.L().Info("shutting down server", zap.Error(ctx.Err()))
	}

	if err := app.ShutdownWithTimeout(timeout); err != nil {
		zap.L().Error("shutdown failed", zap.Error(err))
		return err
	}

	zap.L().Info("server gracefully stopped")
	return nil
}
