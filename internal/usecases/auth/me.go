package usecase

import (
	"context"
	"web-starter/domain"
)

type MeUseCase interface {
	Execute(ctx context.Context, userID string) (*domain.User, error)
}

type meUseCase struct {
	postgresRepository PostgresRepository
}

func NewMeUseCase(repository PostgresRepository) MeUseCase {
	return &meUseCase{postgresRepository: repository}
}

func (u *meUseCase) Execute(ctx context.Context, userID string) (*domain.User, error) {
	return u.postgresRepository.GetUserByID(ctx, userID)
}
