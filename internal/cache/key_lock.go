package cache

import (
	"context"
	"fmt"
	"time"

	"go-gin-event-room/internal/model"
	"go-gin-event-room/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ReleaseFunc 釋放已取得的鎖，可重複呼叫
type ReleaseFunc func()

type KeyLocker interface {
	// 嘗試取得複合鍵的短期鎖；已被佔用時回傳 false
	Acquire(ctx context.Context, key model.EventRoomKey) (ReleaseFunc, bool, error)
}

type RedisKeyLockerImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisKeyLocker(client *redis.Client, ttl time.Duration) KeyLocker {
	return &RedisKeyLockerImpl{
		client: client,
		ttl:    ttl,
	}
}

// 鎖 key
func (l *RedisKeyLockerImpl) getLockKey(key model.EventRoomKey) string {
	return fmt.Sprintf("event_room:%s:%s:lock", key.EventID, key.RoomID)
}

// 只刪除自己持有的鎖 (使用Lua腳本確保原子性)
const releaseScript = `
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`

func (l *RedisKeyLockerImpl) Acquire(ctx context.Context, key model.EventRoomKey) (ReleaseFunc, bool, error) {
	lockKey := l.getLockKey(key)
	token := uuid.New().String()

	ok, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("acquire lock %s: %w", lockKey, err)
	}
	if !ok {
		return nil, false, nil
	}

	released := false
	release := func() {
		if released {
			return
		}
		released = true
		// 請求的 ctx 可能已取消，釋放一定要執行
		if err := l.client.Eval(context.Background(), releaseScript, []string{lockKey}, token).Err(); err != nil {
			logger.WithComponent("cache").Warn("release lock failed", zap.String("key", lockKey), zap.Error(err))
		}
	}
	return release, true, nil
}
