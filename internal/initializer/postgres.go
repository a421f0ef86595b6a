package initializer

import (
	"fmt"
	"web-starter/infra/postgres"
	"web-starter/internal/config"

	"go.uber.org/zap"
)

func InitDatabase(appConfig *config.Config) (*postgres.Repository, error) {
	zap.L().Info("connecting to postgres",
		zap.String("host", appConfig.Postgres.Host),
		zap.String("port", appConfig.Postgres.Port),
		zap.String("db", appConfig.Postgres.DB),
	)
	repo, err := postgres.NewRepository(appConfig.Postgres.DSN())
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return repo, nil
}
