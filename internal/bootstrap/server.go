package bootstrap

import (
	"web-starter/handler"
	"web-starter/internal/config"
	authHandlers "web-starter/internal/handlers/auth"
	greetingHandlers "web-starter/internal/handlers/greeting"
	"web-starter/internal/middleware"
	"web-starter/server"

	"github.com/gofiber/fiber/v2"
)

func SetupServer(config *config.Config, httpHandlers *Handlers, sessionManager SessionManager) *fiber.App {
	serverConfig := server.Config{
		Port:         config.Server.Port,
		IdleTimeout:  config.Server.IdleTimeout,
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
		BodyLimit:    config.Server.BodyLimit,
		AppName:      config.App.Name,
	}

	app := server.NewFiberApp(serverConfig)
	authMiddleware := middleware.NewAuthMiddleware(sessionManager)

	app.Get("/health", handler.HandleBasic[greetingHandlers.HealthRequest, greetingHandlers.HealthResponse](httpHandlers.Health))
	app.Get("/hello/:name", handler.HandleBasic[greetingHandlers.HelloRequest, greetingHandlers.HelloResponse](httpHandlers.Hello))
	app.Get("/ws/echo", authMiddleware.Authenticate(), handler.HandleWS[greetingHandlers.EchoRequest, greetingHandlers.EchoResponse](
		httpHandlers.Echo,
		handler.WithReadLimit(int64(config.Server.BodyLimit)),
	))

	auth := app.Group("/auth")
	auth.Post("/signup", handler.HandleBasic[authHandlers.SignUpRequest, authHandlers.SignUpResponse](httpHandlers.Signup))
	auth.Post("/signin", handler.HandleFiber[authHandlers.SignInRequest, authHandlers.SignInResponse](httpHandlers.Signin))
	auth.Post("/signout", authMiddleware.Authenticate(), handler.HandleBasic[authHandlers.SignOutRequest, authHandlers.SignOutResponse](httpHandlers.Signout))
	auth.Get("/me", authMiddleware.Authenticate(), handler.HandleBasic[authHandlers.MeRequest, authHandlers.MeResponse](httpHandlers.Me))

	return app
}
