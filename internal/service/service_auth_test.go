package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testServerApp = config.ServerApp{
	TokenSignKey:  "sign-key",
	TokenIssuer:   "note-sync",
	TokenDuration: time.Hour,
	HashKey:       "hash-key",
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository, *mock.MockDocumentService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	documents := mock.NewMockDocumentService(ctrl)
	return NewAuthService(users, documents, testServerApp, logger.Nop()), users, documents
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── RegisterUser ──

func TestAuthService_RegisterUser_CreatesUserAndProfile(t *testing.T) {
	svc, users, documents := newTestAuthService(t)

	var created models.User
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			created = u
			return u, nil
		})
	documents.EXPECT().InsertWithID(gomock.Any(), gomock.Any(), gomock.Any(),
		models.Fields{"name": "", "phoneNumber": "", "profileImageUrl": ""}).
		DoAndReturn(func(_ context.Context, scope models.Scope, id string, _ models.Fields) error {
			assert.Equal(t, models.Profiles.Scope(created.UserID), scope)
			assert.Equal(t, created.UserID, id)
			return nil
		})

	user, err := svc.RegisterUser(context.Background(), models.Credentials{Login: "ann", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "ann", user.Login)
	assert.NotEmpty(t, user.UserID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
	assert.False(t, created.CreatedAt.IsZero())
}

func TestAuthService_RegisterUser_InvalidCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Login: "", Password: "secret123"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Login: "ann", Password: "secret123"})

	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_RegisterUser_ProfileFailure(t *testing.T) {
	svc, users, documents := newTestAuthService(t)
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) { return u, nil })
	documents.EXPECT().InsertWithID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Login: "ann", Password: "secret123"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile creation")
}

// ── Login ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	stored := models.User{UserID: "u1", Login: "ann", PasswordHash: mustHash(t, "secret123")}
	users.EXPECT().FindUserByLogin(gomock.Any(), "ann").Return(stored, nil)

	user, err := svc.Login(context.Background(), models.Credentials{Login: "ann", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	stored := models.User{UserID: "u1", Login: "ann", PasswordHash: mustHash(t, "secret123")}
	users.EXPECT().FindUserByLogin(gomock.Any(), "ann").Return(stored, nil)

	_, err := svc.Login(context.Background(), models.Credentials{Login: "ann", Password: "other-pass"})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	users.EXPECT().FindUserByLogin(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(context.Background(), models.Credentials{Login: "ghost", Password: "secret123"})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	users.EXPECT().FindUserByLogin(gomock.Any(), "ann").Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.Login(context.Background(), models.Credentials{Login: "ann", Password: "secret123"})

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.Credentials{Login: "ann"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Tokens ──

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	token, err := svc.CreateToken(context.Background(), models.User{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", token.Subject)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u1", parsed.Subject)
}

func TestAuthService_CreateToken_EmptySubject(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.CreateToken(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
