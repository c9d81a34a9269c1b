package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/ajit-max/event/internal/domain"
	"github.com/ajit-max/event/internal/service/ports"
	"github.com/google/uuid"
)

const (
	minPasswordLen = 6
	dummyPassword  = "timing-equalizer"
)

// UserService хранит учётные данные. Хэширование пароля происходит только в SetPassword.
type UserService struct {
	repo   ports.UserRepo
	hasher ports.PasswordHasher

	dummyOnce sync.Once
	dummyHash string
}

func NewUserService(repo ports.UserRepo, hasher ports.PasswordHasher) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
	}
}

func (s *UserService) CreateUser(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if utf8.RuneCountInString(input.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
		Role:  role,
	}
	if err = s.SetPassword(user, input.Password); err != nil {
		return nil, err
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) SetPassword(user *domain.User, plain string) error {
	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	user.PasswordHash = hash
	return nil
}

// VerifyPassword без пользователя или хэша всё равно выполняет сравнение
// с заглушкой, чтобы время ответа не выдавало отсутствие учётной записи.
func (s *UserService) VerifyPassword(user *domain.User, candidate string) bool {
	if user == nil || user.PasswordHash == "" {
		s.hasher.Compare(s.dummy(), candidate)
		return false
	}
	return s.hasher.Compare(user.PasswordHash, candidate)
}

func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		// при ошибке заглушка остаётся пустой, сравнение просто вернёт false
		s.dummyHash, _ = s.hasher.Hash(dummyPassword)
	})
	return s.dummyHash
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetByEmail(ctx, strings.TrimSpace(email))
}

func (s *UserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
