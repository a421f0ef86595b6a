package usecase

import (
	"context"
	"fmt"
	"strings"
)

type HelloUseCase interface {
	Execute(ctx context.Context, name string) (string, error)
}

type helloUseCase struct {
	text string
}

func NewHelloUseCase(text string) HelloUseCase {
	return &helloUseCase{
		text: text,
	}
}

func (u *helloUseCase) Execute(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return fmt.Sprintf("%s: %s", u.text, name), nil
}
