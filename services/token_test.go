package services

import (
	"context"
	"testing"
	"time"

	"rentdesk/constants"
	"rentdesk/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/dgrijalva/jwt-go"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuerRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", 5)
	token, claims, err := issuer.GenerateToken(UserInfo{UserId: 7, Role: constants.RoleAdmin})
	require.NoError(t, err)
	assert.NotEmpty(t, claims.Id)

	parsed, err := issuer.ParseToken(token)
	require.NoError(t, err)
	id := parsed.Identity()
	assert.Equal(t, uint(7), id.UserID)
	assert.True(t, id.IsAdmin())
	assert.Equal(t, claims.Id, id.TokenID)
	assert.InDelta(t, (5 * time.Minute).Seconds(), parsed.TTL(time.Now()).Seconds(), 5)
}

func TestTokenIssuerRejectsForeignTokens(t *testing.T) {
	issuer := NewTokenIssuer("secret", 5)

	other, _, err := NewTokenIssuer("other", 5).GenerateToken(UserInfo{UserId: 7, Role: constants.RoleAdmin})
	require.NoError(t, err)
	_, err = issuer.ParseToken(other)
	assert.Equal(t, errors.ErrCodeInvalidToken, errors.CodeOf(err))

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserInfo:       UserInfo{UserId: 7, Role: constants.RoleAdmin},
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Minute).Unix()},
	})
	signed, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = issuer.ParseToken(signed)
	assert.Equal(t, errors.ErrCodeInvalidToken, errors.CodeOf(err))

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Minute).Unix()},
	})
	signed, err = anonymous.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = issuer.ParseToken(signed)
	assert.Equal(t, errors.ErrCodeInvalidToken, errors.CodeOf(err))

	_, err = issuer.ParseToken("not-a-token")
	assert.Equal(t, errors.KindUnauthorized, errors.KindOf(err))
}

func newMiniredisStore(t *testing.T) (*miniredis.Miniredis, *TokenStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, NewTokenStore(rdb, nil)
}

func TestTokenStoreRevokeAndRestore(t *testing.T) {
	ctx := context.Background()
	mr, store := newMiniredisStore(t)
	require.True(t, store.Enabled())

	require.NoError(t, store.Revoke(ctx, "jti-1", 7, time.Minute))
	assert.True(t, store.IsRevoked(ctx, "jti-1"))
	assert.False(t, store.IsRevoked(ctx, "jti-2"))
	assert.True(t, mr.Exists("auth:revoked:jti-1"))

	mr.FastForward(2 * time.Minute)
	assert.False(t, store.IsRevoked(ctx, "jti-1"))

	require.NoError(t, store.Revoke(ctx, "jti-3", 7, time.Minute))
	require.NoError(t, store.Restore(ctx, "jti-3"))
	assert.False(t, store.IsRevoked(ctx, "jti-3"))

	require.NoError(t, store.Revoke(ctx, "jti-4", 7, 0))
	assert.False(t, mr.Exists("auth:revoked:jti-4"))
}

func TestTokenStoreFailsOpen(t *testing.T) {
	ctx := context.Background()
	mr, store := newMiniredisStore(t)
	require.NoError(t, store.Revoke(ctx, "jti-1", 7, time.Minute))
	mr.Close()
	assert.False(t, store.IsRevoked(ctx, "jti-1"))

	var disabled *TokenStore
	assert.False(t, disabled.Enabled())
	assert.NoError(t, disabled.Revoke(ctx, "jti-1", 7, time.Minute))
}

func TestLogoutRevokesToken(t *testing.T) {
	env := newTestEnv(t)
	_, denied := newMiniredisStore(t)
	auth := NewAuthService(env.opts, NewTokenIssuer("test-secret", 60), denied)

	_, err := auth.Register(env.ctx, RegisterInput{Name: "Anh", Email: "anh@example.com", Password: "secret123"})
	require.NoError(t, err)
	res, err := auth.Login(env.ctx, "anh@example.com", "secret123")
	require.NoError(t, err)

	_, err = auth.Authenticate(env.ctx, res.AccessToken)
	require.NoError(t, err)

	require.NoError(t, auth.Logout(env.ctx, res.AccessToken))
	_, err = auth.Authenticate(env.ctx, res.AccessToken)
	assert.Equal(t, errors.ErrCodeInvalidToken, errors.CodeOf(err))

	again, err := auth.Login(env.ctx, "anh@example.com", "secret123")
	require.NoError(t, err)
	_, err = auth.Authenticate(env.ctx, again.AccessToken)
	assert.NoError(t, err)
}
