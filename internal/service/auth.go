package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ajit-max/event/internal/domain"
	"github.com/ajit-max/event/internal/service/ports"
)

const bearerPrefix = "Bearer "

type credentialStore interface {
	CreateUser(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	VerifyPassword(user *domain.User, candidate string) bool
}

type AuthService struct {
	users  credentialStore
	tokens ports.TokenIssuer
}

func NewAuthService(users credentialStore, tokens ports.TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, input domain.CreateUserInput) (*domain.AuthResult, error) {
	user, err := s.users.CreateUser(ctx, input)
	if err != nil {
		return nil, err
	}

	return s.issue(user)
}

// Login не различает неизвестный email и неверный пароль.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.users.VerifyPassword(nil, password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.users.VerifyPassword(user, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *domain.User) (*domain.AuthResult, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	user.PasswordHash = ""
	return &domain.AuthResult{User: user, Token: token}, nil
}

// Authenticate разбирает заголовок Authorization и возвращает текущую личность пользователя.
// Пользователь перечитывается на каждый запрос, удалённый пользователь теряет доступ сразу.
func (s *AuthService) Authenticate(ctx context.Context, header string) (*domain.Identity, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, fmt.Errorf("%w, no token", domain.ErrUnauthorized)
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return nil, fmt.Errorf("%w, no token", domain.ErrUnauthorized)
	}

	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w, token failed", domain.ErrUnauthorized)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w, user not found", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	return user.Identity(), nil
}
