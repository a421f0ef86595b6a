package usecase

import (
	"context"
	"web-starter/domain"

	"go.uber.org/zap"
)

type SignUpUseCase interface {
	Execute(ctx context.Context, user *domain.User) (string, error)
}

type signUpUseCase struct {
	postgresRepository PostgresRepository
}

func NewSignUpUseCase(repository PostgresRepository) SignUpUseCase {
	return &signUpUseCase{
		postgresRepository: repository,
	}
}

func (u *signUpUseCase) Execute(ctx context.Context, user *domain.User) (string, error) {
	userID, err := u.postgresRepository.SignUp(ctx, user)
	if err != nil {
		return "", err
	}
	zap.L().Info("user signed up", zap.String("user_id", userID.String()), zap.String("username", user.Username))
	return userID.String(), nil
}
