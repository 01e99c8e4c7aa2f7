package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	onlineSetKey = "presence:online"
	onlineSetTTL = 24 * time.Hour
	mirrorOpTTL  = 2 * time.Second
)

// PresenceMirror copies online/offline transitions into a Redis set so
// the job-board backend can read who is reachable for calls. It is
// observability only: the in-memory directory stays authoritative, and
// every write here is fire-and-forget with a short deadline.
type PresenceMirror struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewPresenceMirror(rdb *redis.Client, log *zap.Logger) *PresenceMirror {
	return &PresenceMirror{rdb: rdb, log: log}
}

func (m *PresenceMirror) UserOnline(userID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mirrorOpTTL)
		defer cancel()
		if err := m.rdb.SAdd(ctx, onlineSetKey, userID).Err(); err != nil {
			m.log.Debug("presence mirror add failed", zap.String("user_id", userID), zap.Error(err))
			return
		}
		// TTL keeps the set from leaking entries across crashed processes.
		_ = m.rdb.Expire(ctx, onlineSetKey, onlineSetTTL).Err()
	}()
}

func (m *PresenceMirror) UserOffline(userID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mirrorOpTTL)
		defer cancel()
		if err := m.rdb.SRem(ctx, onlineSetKey, userID).Err(); err != nil {
			m.log.Debug("presence mirror remove failed", zap.String("user_id", userID), zap.Error(err))
		}
	}()
}
