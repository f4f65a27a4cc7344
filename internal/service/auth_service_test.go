package service

import (
	"context"
	"testing"
	"time"

	"walks-api/internal/model"
	"walks-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTokenConfig = TokenConfig{
	Issuer:   "walks-api-test",
	Audience: "walks-api-test-clients",
	Secret:   []byte("test-signing-key"),
	TTL:      15 * time.Minute,
}

func newTestAuthService() (AuthService, repository.UserStore) {
	store := repository.NewInMemoryUserStore(
		model.Role{ID: uuid.New(), Name: model.RoleReader},
		model.Role{ID: uuid.New(), Name: model.RoleWriter},
	)
	return NewAuthService(store, NewTokenIssuer(testTokenConfig), 6), store
}

// racingUserStore reports every username as free but rejects every create as
// a duplicate, standing in for a registration lost to a concurrent writer.
type racingUserStore struct{}

func (s *racingUserStore) CreateWithRoles(ctx context.Context, user *model.User, roleNames []string) error {
	return repository.ErrDuplicateUsername
}

func (s *racingUserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return nil, repository.ErrNotFound
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("password shorter than minimum fails validation", func(t *testing.T) {
		svc, _ := newTestAuthService()

		err := svc.Register(ctx, RegisterRequest{Username: "walker@example.com", Password: "12345"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "password", verr.Fields[0].Field)
	})

	t.Run("minimum length with no character classes succeeds", func(t *testing.T) {
		svc, _ := newTestAuthService()

		err := svc.Register(ctx, RegisterRequest{Username: "walker@example.com", Password: "aaaaaa"})
		assert.NoError(t, err)
	})

	t.Run("duplicate username fails validation", func(t *testing.T) {
		svc, _ := newTestAuthService()
		require.NoError(t, svc.Register(ctx, RegisterRequest{Username: "walker@example.com", Password: "secret1"}))

		err := svc.Register(ctx, RegisterRequest{Username: "walker@example.com", Password: "secret2"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "username", verr.Fields[0].Field)
	})

	t.Run("unknown role fails and leaves no user behind", func(t *testing.T) {
		svc, store := newTestAuthService()

		err := svc.Register(ctx, RegisterRequest{
			Username: "walker@example.com",
			Password: "secret1",
			Roles:    []string{"Admin"},
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "roles", verr.Fields[0].Field)

		_, err = store.GetByUsername(ctx, "walker@example.com")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("duplicate slipping past the pre-check still fails validation", func(t *testing.T) {
		// Simulates two concurrent registrations: the lookup misses but the
		// create hits the unique index.
		store := &racingUserStore{}
		svc := NewAuthService(store, NewTokenIssuer(testTokenConfig), 6)

		err := svc.Register(ctx, RegisterRequest{Username: "walker@example.com", Password: "secret1"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "username", verr.Fields[0].Field)
	})

	t.Run("username doubles as email", func(t *testing.T) {
		svc, store := newTestAuthService()
		require.NoError(t, svc.Register(ctx, RegisterRequest{Username: "walker@example.com", Password: "secret1"}))

		user, err := store.GetByUsername(ctx, "walker@example.com")
		require.NoError(t, err)
		assert.Equal(t, "walker@example.com", user.Email)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T, svc AuthService, roles ...string) {
		t.Helper()
		require.NoError(t, svc.Register(ctx, RegisterRequest{
			Username: "walker@example.com",
			Password: "secret1",
			Roles:    roles,
		}))
	}

	t.Run("unknown user and wrong password yield the same error", func(t *testing.T) {
		svc, _ := newTestAuthService()
		register(t, svc, model.RoleReader)

		_, errUnknown := svc.Login(ctx, LoginRequest{Username: "nobody@example.com", Password: "secret1"})
		_, errWrongPw := svc.Login(ctx, LoginRequest{Username: "walker@example.com", Password: "wrong-pw"})

		require.Error(t, errUnknown)
		require.Error(t, errWrongPw)
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	})

	t.Run("role-less account cannot login even with correct credentials", func(t *testing.T) {
		svc, _ := newTestAuthService()
		register(t, svc) // no roles

		_, err := svc.Login(ctx, LoginRequest{Username: "walker@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("successful login issues a token with identity and role claims", func(t *testing.T) {
		svc, _ := newTestAuthService()
		register(t, svc, model.RoleReader, model.RoleWriter)

		res, err := svc.Login(ctx, LoginRequest{Username: "walker@example.com", Password: "secret1"})
		require.NoError(t, err)
		require.NotEmpty(t, res.Token)

		token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
			return testTokenConfig.Secret, nil
		}, jwt.WithIssuer(testTokenConfig.Issuer), jwt.WithAudience(testTokenConfig.Audience))
		require.NoError(t, err)
		require.True(t, token.Valid)

		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "walker@example.com", claims["sub"])
		assert.ElementsMatch(t, []interface{}{"Reader", "Writer"}, claims["roles"])

		exp, err := claims.GetExpirationTime()
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(testTokenConfig.TTL), exp.Time, 5*time.Second)
	})
}
