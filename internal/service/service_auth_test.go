package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"geonotes/internal/config"
	"geonotes/internal/logger"
	"geonotes/internal/mock"
	"geonotes/internal/store"
	"geonotes/models"
)

func newTestAuthService(userRepository store.UserRepository) AuthService {
	return NewAuthService(userRepository, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "geonotes-test",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			require.Equal(t, "alice", user.Login)
			require.NotEqual(t, "secret", user.PasswordHash, "plain password must never reach the repository")
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))

			user.UserID = 1
			return user, nil
		})

	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), models.Credentials{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
}

func TestAuthService_RegisterUser_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestAuthService(mock.NewMockUserRepository(ctrl))

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Login: "alice"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.Credentials{Password: "secret"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Login: "alice", Password: "secret"})
	require.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().
		FindUserByLogin(gomock.Any(), "alice").
		Return(models.User{UserID: 1, Login: "alice", PasswordHash: string(hash)}, nil)

	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.Credentials{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().
		FindUserByLogin(gomock.Any(), "alice").
		Return(models.User{UserID: 1, Login: "alice", PasswordHash: string(hash)}, nil)

	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), models.Credentials{Login: "alice", Password: "wrong"})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	repo.EXPECT().
		FindUserByLogin(gomock.Any(), "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)

	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.Credentials{Login: "ghost", Password: "secret"})
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestAuthService(mock.NewMockUserRepository(ctrl))
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42, Login: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestAuthService(mock.NewMockUserRepository(ctrl))

	_, err := svc.ParseToken(context.Background(), "not-a-token")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	issuing := newTestAuthService(mock.NewMockUserRepository(ctrl))

	token, err := issuing.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	verifying := NewAuthService(mock.NewMockUserRepository(ctrl), config.App{
		TokenSignKey:  "another-key",
		TokenIssuer:   "geonotes-test",
		TokenDuration: time.Hour,
	}, logger.Nop())

	_, err = verifying.ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	require.False(t, errors.Is(err, ErrWrongPassword))
}
