package cart

import (
	"context"
	"errors"
	"time"

	"github.com/oceanlink/bulkcart-backend/pkg/redis"
)

type redisPersister struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPersister stores cart snapshots in Redis under the namespaced
// session key, expiring after ttl of inactivity.
func NewRedisPersister(client *redis.Client, ttl time.Duration) Persister {
	return &redisPersister{client: client, ttl: ttl}
}

func (p *redisPersister) Save(ctx context.Context, sessionID string, payload []byte) error {
	return p.client.Set(ctx, p.client.CartKey(sessionID), string(payload), p.ttl)
}

func (p *redisPersister) Load(ctx context.Context, sessionID string) ([]byte, bool, error) {
	value, err := p.client.Get(ctx, p.client.CartKey(sessionID))
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (p *redisPersister) Delete(ctx context.Context, sessionID string) error {
	return p.client.Del(ctx, p.client.CartKey(sessionID))
}
