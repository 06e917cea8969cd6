package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const slotLockPrefix = "slot_lock:"

// slotLockTTL bounds how long a crashed holder can keep a slot locked.
const slotLockTTL = 10 * time.Second

// SlotLock serializes the check-then-write window of booking creation and
// rescheduling per (date, time, setup group). Two concurrent requests for the
// same slot contend on the same key; the loser waits or gives up, so both can
// never pass the availability check together.
type SlotLock struct {
	Client *redis.Client
}

// NewSlotLock returns a SlotLock backed by the given Redis client.
func NewSlotLock(client *redis.Client) *SlotLock {
	return &SlotLock{Client: client}
}

func slotLockKey(date, slot, group string) string {
	return fmt.Sprintf("%s%s:%s:%s", slotLockPrefix, date, slot, group)
}

// Acquire takes the lock for the given slot, retrying briefly on contention.
// It returns an unlock token, or an error if the lock could not be obtained
// before ctx expired.
func (l *SlotLock) Acquire(ctx context.Context, date, slot, group string) (string, error) {
	key := slotLockKey(date, slot, group)
	token := uuid.New().String()

	for {
		ok, err := l.Client.SetNX(ctx, key, token, slotLockTTL).Result()
		if err != nil {
			return "", fmt.Errorf("failed to acquire slot lock %s: %w", key, err)
		}
		if ok {
			return token, nil
		}
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("slot lock %s: %w", key, ctx.Err())
		case <-time.After(50 * time.Millisecond):
		}
	}
}

// Release frees the lock if this holder still owns it. A lock taken over by
// another holder after TTL expiry is left untouched.
func (l *SlotLock) Release(ctx context.Context, date, slot, group, token string) error {
	key := slotLockKey(date, slot, group)
	val, err := l.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil // already expired
	}
	if err != nil {
		return err
	}
	if val == token {
		return l.Client.Del(ctx, key).Err()
	}
	return nil
}
