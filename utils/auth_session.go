// File: utils/auth_session.go
package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const authTokenPrefix = "authToken:"

func authTokenKey(userID, tokenHash string) string {
	return fmt.Sprintf("%s%s:%s", authTokenPrefix, userID, tokenHash)
}

// SaveSessionToken records a hashed auth token for a user with a TTL matching
// the JWT expiry. Tokens absent from the cache are treated as revoked.
func SaveSessionToken(client *redis.Client, userID, tokenHash string, ttl time.Duration) error {
	ctx := context.Background()
	if err := client.Set(ctx, authTokenKey(userID, tokenHash), time.Now().Format(time.RFC3339), ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session token: %w", err)
	}
	return nil
}

// SessionTokenValid reports whether the hashed token is still registered for the user.
func SessionTokenValid(client *redis.Client, userID, tokenHash string) (bool, error) {
	ctx := context.Background()
	n, err := client.Exists(ctx, authTokenKey(userID, tokenHash)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session token: %w", err)
	}
	return n > 0, nil
}

// DeleteSessionToken revokes a single session token.
func DeleteSessionToken(client *redis.Client, userID, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, authTokenKey(userID, tokenHash)).Err()
}

// DeleteAllSessionTokens revokes every session token issued to the user.
func DeleteAllSessionTokens(client *redis.Client, userID string) error {
	ctx := context.Background()
	iter := client.Scan(ctx, 0, authTokenPrefix+userID+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to revoke session token: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan session tokens: %w", err)
	}
	return nil
}
