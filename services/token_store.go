package services

import (
	"context"
	"fmt"
	"time"

	"rentdesk/services/logger"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps revoked token ids in Redis until the token expires.
// With a nil client revocation is disabled and every token stays valid.
type TokenStore struct {
	rdb    *redis.Client
	logger logger.Logger
}

type revokedToken struct {
	UserID    uint      `json:"userId"`
	RevokedAt time.Time `json:"revokedAt"`
}

func NewTokenStore(rdb *redis.Client, log logger.Logger) *TokenStore {
	if log == nil {
		log = logger.NewNop()
	}
	return &TokenStore{rdb: rdb, logger: log}
}

func revokedKey(tokenID string) string {
	return fmt.Sprintf("auth:revoked:%s", tokenID)
}

func (s *TokenStore) Enabled() bool {
	return s != nil && s.rdb != nil
}

// Revoke denies tokenID for ttl. Expired tokens need no entry.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string, userID uint, ttl time.Duration) error {
	if !s.Enabled() || tokenID == "" || ttl <= 0 {
		return nil
	}
	return SetToRedis(ctx, s.rdb, revokedKey(tokenID), revokedToken{UserID: userID, RevokedAt: time.Now().UTC()}, ttl)
}

// IsRevoked fails open when Redis is unreachable.
func (s *TokenStore) IsRevoked(ctx context.Context, tokenID string) bool {
	if !s.Enabled() || tokenID == "" {
		return false
	}
	var entry revokedToken
	found, err := GetFromRedis(ctx, s.rdb, revokedKey(tokenID), &entry)
	if err != nil {
		s.logger.Error("check revoked token %s: %v", tokenID, err)
		return false
	}
	return found
}

// Restore lifts a revocation.
func (s *TokenStore) Restore(ctx context.Context, tokenID string) error {
	if !s.Enabled() {
		return nil
	}
	return DeleteFromRedis(ctx, s.rdb, revokedKey(tokenID))
}
