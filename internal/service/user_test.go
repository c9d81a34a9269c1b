package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ajit-max/event/internal/auth"
	"github.com/ajit-max/event/internal/domain"
	"github.com/ajit-max/event/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserService(t *testing.T) (*mocks.MockUserRepo, *UserService) {
	t.Helper()
	repo := mocks.NewMockUserRepo(t)
	return repo, NewUserService(repo, auth.NewPasswordHasher(bcrypt.MinCost))
}

func TestUserService_CreateUser_Success(t *testing.T) {
	repo, svc := newTestUserService(t)

	var stored *domain.User
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u *domain.User) { stored = u }).
		Return(nil)

	user, err := svc.CreateUser(context.Background(), domain.CreateUserInput{
		Name:     "  Alice ",
		Email:    "alice@example.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, domain.RoleAttendee, user.Role)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.True(t, svc.VerifyPassword(stored, "secret1"))
}

func TestUserService_CreateUser_Role(t *testing.T) {
	repo, svc := newTestUserService(t)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.CreateUser(context.Background(), domain.CreateUserInput{
		Name: "Org", Email: "org@example.com", Password: "secret1", Role: "organizer",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleOrganizer, user.Role)
}

func TestUserService_CreateUser_Validation(t *testing.T) {
	_, svc := newTestUserService(t)

	tests := []struct {
		name  string
		input domain.CreateUserInput
	}{
		{"empty name", domain.CreateUserInput{Name: " ", Email: "a@example.com", Password: "secret1"}},
		{"empty email", domain.CreateUserInput{Name: "A", Email: "", Password: "secret1"}},
		{"bad email", domain.CreateUserInput{Name: "A", Email: "not-an-email", Password: "secret1"}},
		{"short password", domain.CreateUserInput{Name: "A", Email: "a@example.com", Password: "12345"}},
		{"unknown role", domain.CreateUserInput{Name: "A", Email: "a@example.com", Password: "secret1", Role: "root"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	repo, svc := newTestUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail).Once()

	first, err := svc.CreateUser(context.Background(), domain.CreateUserInput{
		Name: "First", Email: "dup@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), domain.CreateUserInput{
		Name: "Second", Email: "dup@example.com", Password: "other-secret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.Equal(t, "First", first.Name)
	assert.True(t, svc.VerifyPassword(first, "secret1"))
}

func TestUserService_CreateUser_RepoError(t *testing.T) {
	repo, svc := newTestUserService(t)

	repoErr := errors.New("db error")
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.CreateUser(context.Background(), domain.CreateUserInput{
		Name: "A", Email: "a@example.com", Password: "secret1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestUserService_SetPassword_AlwaysRehashes(t *testing.T) {
	_, svc := newTestUserService(t)

	user := &domain.User{ID: "u1"}
	require.NoError(t, svc.SetPassword(user, "secret1"))
	first := user.PasswordHash

	require.NoError(t, svc.SetPassword(user, "secret1"))
	assert.NotEqual(t, first, user.PasswordHash)
	assert.True(t, svc.VerifyPassword(user, "secret1"))
}

func TestUserService_VerifyPassword_NoHash(t *testing.T) {
	_, svc := newTestUserService(t)

	assert.False(t, svc.VerifyPassword(&domain.User{ID: "u1"}, ""))
	assert.False(t, svc.VerifyPassword(nil, "secret1"))
}

func TestUserService_VerifyPassword_MissingUserStillCompares(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	hasher := mocks.NewMockPasswordHasher(t)
	svc := NewUserService(repo, hasher)

	hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Once()
	hasher.EXPECT().Compare("dummy-hash", "secret1").Return(true).Twice()

	// даже совпадение с заглушкой не даёт true
	assert.False(t, svc.VerifyPassword(nil, "secret1"))
	assert.False(t, svc.VerifyPassword(&domain.User{ID: "u1"}, "secret1"))
}

func TestUserService_CreateUser_LongUnicodePassword(t *testing.T) {
	passwords := []string{
		strings.Repeat("пароль", 7),
		strings.Repeat("🎟️", 19),
		strings.Repeat("密", 100),
	}

	for _, pw := range passwords {
		t.Run(fmt.Sprintf("%d bytes", len(pw)), func(t *testing.T) {
			repo, svc := newTestUserService(t)

			var stored *domain.User
			repo.EXPECT().Create(mock.Anything, mock.Anything).
				Run(func(_ context.Context, u *domain.User) { stored = u }).
				Return(nil)

			_, err := svc.CreateUser(context.Background(), domain.CreateUserInput{
				Name: "Ivan", Email: "ivan@example.com", Password: pw,
			})

			require.NoError(t, err)
			assert.True(t, svc.VerifyPassword(stored, pw))
			assert.False(t, svc.VerifyPassword(stored, pw+"!"))
		})
	}
}

func TestUserService_FindByEmail(t *testing.T) {
	repo, svc := newTestUserService(t)

	expected := &domain.User{ID: "u1", Email: "a@example.com"}
	repo.EXPECT().GetByEmail(mock.Anything, "a@example.com").Return(expected, nil)

	user, err := svc.FindByEmail(context.Background(), " a@example.com ")

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserService_FindByID_NotFound(t *testing.T) {
	repo, svc := newTestUserService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.FindByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_List_Success(t *testing.T) {
	repo, svc := newTestUserService(t)

	users := []*domain.User{{ID: "u1"}, {ID: "u2"}}
	repo.EXPECT().List(mock.Anything).Return(users, nil)

	res, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 2)
}
