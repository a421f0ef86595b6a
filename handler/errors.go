package handler

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrBind       = errors.New("request could not be bound")
	ErrValidation = errors.New("request validation failed")
)

// HandlerError lets a handler choose the status code of a failed cycle.
type HandlerError struct {
	StatusCode int
	Message    string
	Err        error
}

func NewHandlerError(statusCode int, message string) *HandlerError {
	return &HandlerError{StatusCode: statusCode, Message: message}
}

// WrapHandlerError keeps err reachable through errors.Is / errors.As.
func WrapHandlerError(statusCode int, message string, err error) *HandlerError {
	return &HandlerError{StatusCode: statusCode, Message: message, Err: err}
}

func (he *HandlerError) Error() string {
	if he.Err != nil {
		return he.Message + ": " + he.Err.Error()
	}
	return he.Message
}

func (he *HandlerError) Unwrap() error {
	return he.Err
}

// StatusCode maps an error returned from a response cycle to an HTTP status.
func StatusCode(err error) int {
	var he *HandlerError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	switch {
	case errors.Is(err, ErrBind):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrValidation):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

// ErrorMessage is the client-facing text for err. Server errors are not
// echoed back.
func ErrorMessage(err error) string {
	code := StatusCode(err)
	if code >= fiber.StatusInternalServerError {
		return http.StatusText(code)
	}
	var he *HandlerError
	if errors.As(err, &he) {
		return he.Message
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}

func respondWithError(c *fiber.Ctx, err error) error {
	return c.Status(StatusCode(err)).JSON(fiber.Map{"error": ErrorMessage(err)})
}

// ErrorHandler is installed as fiber's ErrorHandler so errors escaping
// middleware get the same body as errors from handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return respondWithError(c, err)
}
