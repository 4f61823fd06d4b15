package services

import (
	"context"
	"fmt"

	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
)

type TokenIssuer interface {
	GenerateToken(subject string) (string, error)
}

type AuthService struct {
	owner  *domain.Owner
	tokens TokenIssuer
}

func NewAuthService(owner *domain.Owner, tokens TokenIssuer) *AuthService {
	return &AuthService{
		owner:  owner,
		tokens: tokens,
	}
}

type LoginInput struct {
	Password string
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := s.owner.CheckPassword(input.Password); err != nil {
		return "", err
	}

	token, err := s.tokens.GenerateToken(domain.OwnerSubject)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to issue token: %w", err)
	}
	return token, nil
}
