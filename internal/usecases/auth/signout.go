package usecase

import "context"

type SignOutUseCase interface {
	Execute(ctx context.Context, userID, token string, everywhere bool) error
}

type signOutUseCase struct {
	sessionManager SessionManager
}

func NewSignOutUseCase(sessionManager SessionManager) SignOutUseCase {
	return &signOutUseCase{sessionManager: sessionManager}
}

func (u *signOutUseCase) Execute(ctx context.Context, userID, token string, everywhere bool) error {
	if everywhere {
		return u.sessionManager.DeleteAllUserSessions(ctx, userID)
	}
	return u.sessionManager.DeleteSession(ctx, token)
}
