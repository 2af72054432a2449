package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
)

// ErrSessionNotFound is returned when a session is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps server-side login sessions in Redis
type SessionRepository struct {
	client redis.Cmdable
	exp    time.Duration // session lifetime
}

// NewSessionRepository creates a new repository instance with the given session TTL
func NewSessionRepository(client redis.Cmdable, expiration time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Save stores the owner of a session
func (r *SessionRepository) Save(ctx context.Context, sessionID, userID uuid.UUID) error {
	key := sessionKey(sessionID)
	err := r.client.Set(ctx, key, userID.String(), r.exp).Err()

	logger.Log.Infow("redis set",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// GetUserID returns the owner of a live session
func (r *SessionRepository) GetUserID(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error) {
	key := sessionKey(sessionID)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Infow("redis get",
		"key", key,
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrSessionNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("malformed session value for %s: %w", key, err)
	}
	return userID, nil
}

// Delete removes a session. Deleting an unknown session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	key := sessionKey(sessionID)
	n, err := r.client.Del(ctx, key).Result()

	logger.Log.Infow("redis del",
		"key", key,
		"result", n,
		"error", err,
	)

	return err
}
