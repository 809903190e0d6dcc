package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"go-folio/internal/config"
	"go-folio/internal/logger"
	"go-folio/internal/mock"
	"go-folio/internal/store"
	"go-folio/models"
)

func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-folio",
		TokenDuration: time.Hour,
	}, logger.Nop())
	return svc, repo
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	stored := models.User{ID: 1, Username: "admin", PasswordHash: hashFor(t, "admin123")}
	repo.EXPECT().FindUserByUsername(ctx, "admin").Return(stored, nil)

	user, err := svc.Login(ctx, models.Credentials{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "admin", user.Username)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	stored := models.User{ID: 1, Username: "admin", PasswordHash: hashFor(t, "admin123")}
	repo.EXPECT().FindUserByUsername(ctx, "admin").Return(stored, nil)

	_, err := svc.Login(ctx, models.Credentials{Username: "admin", Password: "nope"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrNotFound)

	_, err := svc.Login(ctx, models.Credentials{Username: "ghost", Password: "whatever"})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	_, err := svc.Login(ctx, models.Credentials{Username: "admin"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(ctx, models.Credentials{Password: "admin123"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "admin", u.Username)
			assert.NotEqual(t, "admin123", u.PasswordHash, "password must not be stored in plain text")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("admin123")))
			u.ID = 1
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, models.Credentials{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestAuthService_RegisterUser_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.Credentials{Username: "admin", Password: "admin123"})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestAuthService_RegisterUser_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: 42, Username: "admin"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	issuing := NewAuthService(repo, config.Auth{
		TokenSignKey:  "key-one",
		TokenIssuer:   "go-folio",
		TokenDuration: time.Hour,
	}, logger.Nop())
	verifying := NewAuthService(repo, config.Auth{
		TokenSignKey:  "key-two",
		TokenIssuer:   "go-folio",
		TokenDuration: time.Hour,
	}, logger.Nop())

	ctx := context.Background()
	token, err := issuing.CreateToken(ctx, models.User{ID: 1})
	require.NoError(t, err)

	_, err = verifying.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
