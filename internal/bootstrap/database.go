package bootstrap

import (
	"web-starter/internal/config"
	"web-starter/internal/initializer"
)

func InitDatabase(config *config.Config) (PostgresRepository, error) {
	repo, err := initializer.InitDatabase(config)
	if err != nil {
		return nil, err
	}
	return repo, nil
}
