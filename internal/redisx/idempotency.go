package redisx

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Idempotency remembers which order an Idempotency-Key created.
type Idempotency struct {
	RDB *redis.Client
}

func (i *Idempotency) Lookup(ctx context.Context, key string) (int64, bool, error) {
	s, err := i.RDB.Get(ctx, fmt.Sprintf(KeyIdemOrderCreate, key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("idempotency key %s: %w", key, err)
	}
	return id, true, nil
}

// Remember stores key -> orderID unless the key is already taken.
func (i *Idempotency) Remember(ctx context.Context, key string, orderID int64) error {
	return i.RDB.SetNX(ctx, fmt.Sprintf(KeyIdemOrderCreate, key), orderID, TTLIdempotency).Err()
}
