package usecase

import (
	"context"
	"time"
	"web-starter/domain"

	"github.com/google/uuid"
)

type SignInResult struct {
	User    *domain.User
	Token   string
	Expires time.Time
}

type SignInUseCase interface {
	Execute(ctx context.Context, identifier, password, device, ip string) (*SignInResult, error)
}

type signInUseCase struct {
	postgresRepository PostgresRepository
	sessionManager     SessionManager
	sessionTTL         time.Duration
}

func NewSignInUseCase(repository PostgresRepository, sessionManager SessionManager, sessionTTL time.Duration) SignInUseCase {
	return &signInUseCase{
		postgresRepository: repository,
		sessionManager:     sessionManager,
		sessionTTL:         sessionTTL,
	}
}

// Execute checks the credentials and opens a session. The cookie carrying
// the token is written by the handler's header hook, not here.
func (u *signInUseCase) Execute(ctx context.Context, identifier, password, device, ip string) (*SignInResult, error) {
	user, err := u.postgresRepository.SignIn(ctx, identifier, password)
	if err != nil {
		return nil, err
	}

	sessionToken := uuid.NewString()
	userData := map[string]string{
		"id":     user.ID,
		"device": device,
		"ip":     ip,
	}
	if err := u.sessionManager.CreateSession(ctx, user.ID, sessionToken, userData, u.sessionTTL); err != nil {
		return nil, err
	}

	return &SignInResult{
		User:    user,
		Token:   sessionToken,
		Expires: time.Now().Add(u.sessionTTL),
	}, nil
}
