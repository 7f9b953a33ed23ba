package services

import (
	"fmt"
	"time"

	"rentdesk/errors"
	"rentdesk/types"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

type UserInfo struct {
	UserId uint   `json:"userid"`
	Role   string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// Identity returns the caller carried by the claims.
func (c *Claims) Identity() types.Identity {
	return types.Identity{UserID: c.UserInfo.UserId, Role: c.UserInfo.Role, TokenID: c.Id}
}

// TTL is the remaining lifetime of the token.
func (c *Claims) TTL(now time.Time) time.Duration {
	return time.Unix(c.ExpiresAt, 0).Sub(now)
}

// TokenIssuer signs and verifies HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, expiryMinutes int) *TokenIssuer {
	if expiryMinutes <= 0 {
		expiryMinutes = 60
	}
	return &TokenIssuer{secret: []byte(secret), ttl: time.Duration(expiryMinutes) * time.Minute}
}

func (t *TokenIssuer) GenerateToken(userInfo UserInfo) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(t.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// ParseToken verifies the signature and expiry of tokenString.
func (t *TokenIssuer) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid or expired token", err)
	}
	if claims.UserInfo.UserId == 0 || claims.UserInfo.Role == "" {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "token carries no user", nil)
	}
	return claims, nil
}
