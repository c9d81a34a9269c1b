package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ajit-max/event/internal/auth"
	"github.com/ajit-max/event/internal/domain"
	"github.com/ajit-max/event/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-0123456789"

type authFixture struct {
	repo   *mocks.MockUserRepo
	users  *UserService
	tokens *auth.TokenService
	svc    *AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	repo := mocks.NewMockUserRepo(t)
	users := NewUserService(repo, auth.NewPasswordHasher(bcrypt.MinCost))
	tokens := auth.NewTokenService(testSecret, time.Hour)
	return &authFixture{
		repo:   repo,
		users:  users,
		tokens: tokens,
		svc:    NewAuthService(users, tokens),
	}
}

func (f *authFixture) storedUser(t *testing.T, id, email, password string, role domain.Role) *domain.User {
	t.Helper()
	u := &domain.User{ID: id, Name: "User " + id, Email: email, Role: role}
	require.NoError(t, f.users.SetPassword(u, password))
	return u
}

func TestAuthService_Register_Success(t *testing.T) {
	f := newAuthFixture(t)
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	res, err := f.svc.Register(context.Background(), domain.CreateUserInput{
		Name: "Alice", Email: "alice@example.com", Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", res.User.Name)
	assert.Empty(t, res.User.PasswordHash)

	id, err := f.tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, id)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	f := newAuthFixture(t)
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

	_, err := f.svc.Register(context.Background(), domain.CreateUserInput{
		Name: "Alice", Email: "alice@example.com", Password: "secret1",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthFixture(t)
	user := f.storedUser(t, "u1", "alice@example.com", "secret1", domain.RoleAttendee)
	f.repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	res, err := f.svc.Login(context.Background(), "alice@example.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "u1", res.User.ID)
	assert.NotEmpty(t, res.Token)
}

func TestAuthService_Login_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	user := f.storedUser(t, "u1", "alice@example.com", "secret1", domain.RoleAttendee)
	f.repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)
	f.repo.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, domain.ErrUserNotFound)

	_, wrongPassword := f.svc.Login(context.Background(), "alice@example.com", "wrong-password")
	_, unknownEmail := f.svc.Login(context.Background(), "nobody@example.com", "secret1")

	assert.Equal(t, domain.ErrInvalidCredentials, wrongPassword)
	assert.Equal(t, domain.ErrInvalidCredentials, unknownEmail)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_Login_UnknownEmailRunsHashCompare(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	hasher := mocks.NewMockPasswordHasher(t)
	svc := NewAuthService(NewUserService(repo, hasher), auth.NewTokenService(testSecret, time.Hour))

	repo.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, domain.ErrUserNotFound)
	hasher.EXPECT().Hash(mock.Anything).Return("dummy-hash", nil).Once()
	hasher.EXPECT().Compare("dummy-hash", "secret1").Return(false).Once()

	_, err := svc.Login(context.Background(), "nobody@example.com", "secret1")

	assert.Equal(t, domain.ErrInvalidCredentials, err)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	f := newAuthFixture(t)
	dbErr := errors.New("connection refused")
	f.repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, dbErr)

	_, err := f.svc.Login(context.Background(), "alice@example.com", "secret1")

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Authenticate(t *testing.T) {
	f := newAuthFixture(t)
	token, err := f.tokens.Issue("u1")
	require.NoError(t, err)

	user := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleOrganizer}
	f.repo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	identity, err := f.svc.Authenticate(context.Background(), "Bearer "+token)

	require.NoError(t, err)
	assert.Equal(t, &domain.Identity{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleOrganizer}, identity)
}

func TestAuthService_Authenticate_Failures(t *testing.T) {
	f := newAuthFixture(t)

	valid, err := f.tokens.Issue("deleted-user")
	require.NoError(t, err)
	f.repo.EXPECT().GetByID(mock.Anything, "deleted-user").Return(nil, domain.ErrUserNotFound)

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"absent header", "", "not authorized, no token"},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "not authorized, no token"},
		{"empty bearer", "Bearer ", "not authorized, no token"},
		{"garbage token", "Bearer not-a-jwt", "not authorized, token failed"},
		{"revoked user", "Bearer " + valid, "not authorized, user not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Authenticate(context.Background(), tt.header)
			require.ErrorIs(t, err, domain.ErrUnauthorized)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestAuthService_Authenticate_StorageError(t *testing.T) {
	f := newAuthFixture(t)
	token, err := f.tokens.Issue("u1")
	require.NoError(t, err)

	dbErr := errors.New("db down")
	f.repo.EXPECT().GetByID(mock.Anything, "u1").Return(nil, dbErr)

	_, err = f.svc.Authenticate(context.Background(), "Bearer "+token)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Authenticate_TokenIssuerMock(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	tokens := mocks.NewMockTokenIssuer(t)
	svc := NewAuthService(NewUserService(repo, auth.NewPasswordHasher(bcrypt.MinCost)), tokens)

	tokens.EXPECT().Verify("expired").Return("", domain.ErrInvalidToken)

	_, err := svc.Authenticate(context.Background(), "Bearer expired")

	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "not authorized, token failed", err.Error())
}
