package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"web-starter/graceful"
	"web-starter/internal/config"
	"web-starter/server"

	"github.com/gofiber/fiber/v2"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

type App struct {
	config         *config.Config
	fiberApp       *fiber.App
	httpHandlers   *Handlers
	postgresRepo   PostgresRepository
	sessionManager SessionManager
}

func NewApp(ctx context.Context, config *config.Config) (*App, error) {
	app := &App{
		config: config,
	}
	if err := app.initDependencies(ctx); err != nil {
		return nil, err
	}
	app.initHTTP()
	return app, nil
}

// NewAppWithDependencies wires the HTTP layer over dependencies that are
// already connected.
func NewAppWithDependencies(config *config.Config, postgresRepo PostgresRepository, sessionManager SessionManager) *App {
	app := &App{
		config:         config,
		postgresRepo:   postgresRepo,
		sessionManager: sessionManager,
	}
	app.initHTTP()
	return app
}

// initDependencies dials redis and postgres concurrently. If either fails,
// whatever did connect is closed again.
func (a *App) initDependencies(ctx context.Context) error {
	var mu sync.Mutex
	p := pool.New().WithContext(ctx).WithCancelOnError()

	p.Go(func(context.Context) error {
		sm, err := InitSessionRedis(a.config)
		if err != nil {
			return err
		}
		mu.Lock()
		a.sessionManager = sm
		mu.Unlock()
		return nil
	})
	p.Go(func(context.Context) error {
		repo, err := InitDatabase(a.config)
		if err != nil {
			return err
		}
		mu.Lock()
		a.postgresRepo = repo
		mu.Unlock()
		return nil
	})

	if err := p.Wait(); err != nil {
		if cerr := a.closeDependencies(); cerr != nil {
			zap.L().Warn("closing dependencies after failed start", zap.Error(cerr))
		}
		return fmt.Errorf("init dependencies: %w", err)
	}
	return nil
}

func (a *App) initHTTP() {
	a.httpHandlers = SetupHTTPHandlers(a.config, a.postgresRepo, a.sessionManager)
	a.fiberApp = SetupServer(a.config, a.httpHandlers, a.sessionManager)
}

func (a *App) Fiber() *fiber.App {
	return a.fiberApp
}

func (a *App) closeDependencies() error {
	var errs []error
	if a.sessionManager != nil {
		errs = append(errs, a.sessionManager.Close())
	}
	if a.postgresRepo != nil {
		errs = append(errs, a.postgresRepo.Close())
	}
	return errors.Join(errs...)
}

// Start binds the port, serves until a shutdown signal arrives, ctx is done
// or the listener fails, then drains requests and closes the dependencies.
// The port is bound before waiting for shutdown, so an early signal or a
// cancelled ctx still ends the serve loop.
func (a *App) Start(ctx context.Context) error {
	ln, err := server.Listen(a.config.Server.Port)
	if err != nil {
		return errors.Join(err, a.closeDependencies())
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var serveErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := server.Serve(a.fiberApp, ln); err != nil {
			zap.L().Error("server failed", zap.Error(err))
			serveErr = err
			cancel()
		}
	}()
	zap.L().Info("server starting",
		zap.String("app", a.config.App.Name),
		zap.String("addr", ln.Addr().String()),
	)

	shutdownErr := graceful.WaitForShutdown(a.fiberApp, a.config.Server.ShutdownTimeout, ctx)
	// Shutdown only closes listeners the server already registered.
	_ = ln.Close()
	<-done
	return errors.Join(serveErr, shutdownErr, a.closeDependencies())
}
