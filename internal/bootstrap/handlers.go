package bootstrap

import (
	"time"
	"web-starter/internal/config"
	authHandlers "web-starter/internal/handlers/auth"
	greetingHandlers "web-starter/internal/handlers/greeting"
	authUsecase "web-starter/internal/usecases/auth"
	greetingUsecase "web-starter/internal/usecases/greeting"
)

const healthTimeout = 2 * time.Second

type Handlers struct {
	Hello   *greetingHandlers.HelloHandler
	Echo    *greetingHandlers.EchoHandler
	Health  *greetingHandlers.HealthHandler
	Signup  *authHandlers.SignUpHandler
	Signin  *authHandlers.SignInHandler
	Signout *authHandlers.SignOutHandler
	Me      *authHandlers.MeHandler
}

func SetupHTTPHandlers(cfg *config.Config, postgresRepo PostgresRepository, sessionManager SessionManager) *Handlers {
	secureCookie := cfg.Server.SecureCookie
	checks := map[string]greetingUsecase.Pinger{
		"postgres": postgresRepo,
		"redis":    sessionManager,
	}

	return &Handlers{
		Hello:   greetingHandlers.NewHelloHandler(greetingUsecase.NewHelloUseCase("hello")),
		Echo:    greetingHandlers.NewEchoHandler(),
		Health:  greetingHandlers.NewHealthHandler(greetingUsecase.NewHealthUseCase(checks, healthTimeout), cfg.App.Name, cfg.App.Version),
		Signup:  authHandlers.NewSignUpHandler(authUsecase.NewSignUpUseCase(postgresRepo)),
		Signin:  authHandlers.NewSignInHandler(authUsecase.NewSignInUseCase(postgresRepo, sessionManager, cfg.SessionRedis.TTL), secureCookie),
		Signout: authHandlers.NewSignOutHandler(authUsecase.NewSignOutUseCase(sessionManager), secureCookie),
		Me:      authHandlers.NewMeHandler(authUsecase.NewMeUseCase(postgresRepo)),
	}
}
