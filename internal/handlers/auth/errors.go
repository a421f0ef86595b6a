package handlers

import (
	"errors"
	"net/http"
	"web-starter/domain"
	"web-starter/handler"
)

// mapError turns domain failures into client-facing statuses.
func mapError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return handler.WrapHandlerError(http.StatusConflict, "username or email already exists", err)
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrInvalidCredentials):
		return handler.WrapHandlerError(http.StatusUnauthorized, "invalid credentials", err)
	}
	return err
}
