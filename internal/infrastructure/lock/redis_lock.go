package lock

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"pagalotodo/internal/usecase/interfaces"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const DefaultCloseLockKey = "pagalotodo:accounting-close:lock"

var ErrLockNotHeld = errors.New("lock not held by token")

// Holder is the value stored under the lock key.
type Holder struct {
	Token      string    `json:"token"`
	Host       string    `json:"host"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// RedisLock is a single-flight lock shared by every API and CLI instance.
// The key expires after ttl so a crashed holder cannot block closes forever.
type RedisLock struct {
	rdb *redis.Client
	key string
	ttl time.Duration
	now func() time.Time
}

var _ interfaces.ICloseLock = (*RedisLock)(nil)

func NewRedisLock(rdb *redis.Client, key string, ttl time.Duration) *RedisLock {
	return &RedisLock{rdb: rdb, key: key, ttl: ttl, now: time.Now}
}

func (l *RedisLock) Acquire(ctx context.Context) (string, error) {
	host, _ := os.Hostname()
	holder := Holder{Token: uuid.NewString(), Host: host, AcquiredAt: l.now().UTC()}
	payload, err := sonic.ConfigFastest.Marshal(holder)
	if err != nil {
		return "", err
	}

	ok, err := l.rdb.SetNX(ctx, l.key, payload, l.ttl).Result()
	if err != nil {
		return "", fmt.Errorf("acquire close lock: %w", err)
	}
	if !ok {
		if current, err := l.Holder(ctx); err == nil {
			log.Printf("[lock] close in progress host=%s since=%s", current.Host, current.AcquiredAt.Format(time.RFC3339))
		}
		return "", interfaces.ErrCloseInProgress
	}
	log.Printf("[lock] acquired key=%s ttl=%s", l.key, l.ttl)
	return holder.Token, nil
}

// Release deletes the key only while it still carries token.
func (l *RedisLock) Release(ctx context.Context, token string) error {
	err := l.rdb.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, l.key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrLockNotHeld
		}
		if err != nil {
			return err
		}
		var current Holder
		if err := sonic.ConfigFastest.Unmarshal(raw, &current); err != nil {
			return err
		}
		if current.Token != token {
			return ErrLockNotHeld
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, l.key)
			return nil
		})
		return err
	}, l.key)
	if err != nil {
		return fmt.Errorf("release close lock: %w", err)
	}
	log.Printf("[lock] released key=%s", l.key)
	return nil
}

// Holder returns the current lock holder, or redis.Nil when the lock is free.
func (l *RedisLock) Holder(ctx context.Context) (Holder, error) {
	raw, err := l.rdb.Get(ctx, l.key).Bytes()
	if err != nil {
		return Holder{}, err
	}
	var h Holder
	if err := sonic.ConfigFastest.Unmarshal(raw, &h); err != nil {
		return Holder{}, err
	}
	return h, nil
}
