package initializer

import (
	"fmt"
	"web-starter/infra/session"
	"web-starter/internal/config"

	"go.uber.org/zap"
)

func InitSessionRedis(appConfig *config.Config) (*session.SessionManager, error) {
	address := appConfig.SessionRedis.Addr()
	zap.L().Info("connecting to session redis", zap.String("addr", address))

	sessionManager, err := session.NewSessionManager(address, appConfig.SessionRedis.Password, appConfig.SessionRedis.DB)
	if err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return sessionManager, nil
}
