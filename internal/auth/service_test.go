package auth

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"starwars-server/internal/shared/database/databasetest"
	"starwars-server/internal/shared/errors"
	"starwars-server/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *TokenManager, *user.Service) {
	t.Helper()
	db := databasetest.New(t, &user.User{})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := user.NewService(user.NewRepository(db, logger), logger)
	tokens := NewTokenManager(testSecret, 24*time.Hour)
	return NewService(users, tokens, bcrypt.MinCost, logger), tokens, users
}

func lukeRegistration() RegisterRequest {
	return RegisterRequest{
		Email:    "luke@rebels.org",
		Password: "usetheforce",
		Names:    "Luke",
		LastName: "Skywalker",
		Age:      19,
	}
}

func TestRegisterReturnsTokenForNewUser(t *testing.T) {
	svc, tokens, users := newTestService(t)
	ctx := context.Background()

	token, err := svc.Register(ctx, lukeRegistration())
	require.NoError(t, err)

	claims, err := tokens.Validate(token)
	require.NoError(t, err)

	stored, err := users.FindByEmail(ctx, "luke@rebels.org")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.NotEqual(t, "usetheforce", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("usetheforce")))
}

func TestRegisterTwiceConflicts(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, lukeRegistration())
	require.NoError(t, err)

	_, err = svc.Register(ctx, lukeRegistration())
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeConflict, errors.GetType(err))
	assert.Equal(t, "Email already in use", errors.ClientMessage(err))
}

func TestRegisterRequiresCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := lukeRegistration()
	req.Password = ""
	_, err := svc.Register(context.Background(), req)
	assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
}

func TestLogin(t *testing.T) {
	svc, tokens, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, lukeRegistration())
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{Email: "luke@rebels.org", Password: "wrong"})
	assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetType(err))

	_, err = svc.Login(ctx, LoginRequest{Email: "vader@empire.gov", Password: "usetheforce"})
	assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetType(err))

	token, err := svc.Login(ctx, LoginRequest{Email: "luke@rebels.org", Password: "usetheforce"})
	require.NoError(t, err)
	_, err = tokens.Validate(token)
	assert.NoError(t, err)
}

func TestRegisterRejectsOverlongPassword(t *testing.T) {
	svc, _, users := newTestService(t)
	ctx := context.Background()

	req := lukeRegistration()
	req.Password = strings.Repeat("x", 73)
	_, err := svc.Register(ctx, req)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
	assert.Contains(t, errors.ClientMessage(err), "72 bytes")

	existing, err := users.FindByEmail(ctx, req.Email)
	require.NoError(t, err)
	assert.Nil(t, existing)

	req.Password = strings.Repeat("x", 72)
	_, err = svc.Register(ctx, req)
	assert.NoError(t, err)
}
