package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/avstrong/diamond/internal/booking"
	"github.com/avstrong/diamond/internal/logger"
)

const defaultTTL = 24 * time.Hour

type Config struct {
	L *logger.Logger
	// TTL bounds how long an idempotency key keeps its draft.
	TTL time.Duration
}

// DB keeps reservation drafts for the lifetime of the process.
type DB struct {
	mu     sync.Mutex
	l      *logger.Logger
	drafts *cache.Cache
}

func New(conf Config) *DB {
	ttl := conf.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	//nolint:exhaustruct
	return &DB{
		l:      conf.L,
		drafts: cache.New(ttl, ttl/2), //nolint:gomnd
	}
}

// GetOrSaveDraft returns the draft held by the context's idempotency key. On
// a miss it stores the result of build. build runs under the store lock, so
// concurrent calls with one key get the same draft.
func (db *DB) GetOrSaveDraft(ctx context.Context, build func() (*booking.Draft, error)) (*booking.Draft, error) {
	key, ok := booking.IdempotencyKeyFromContext(ctx)
	if !ok {
		return nil, booking.ErrIdempotencyKey
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if stored, found := db.drafts.Get(key); found {
		return stored.(*booking.Draft), nil //nolint:forcetypeassert
	}

	draft, err := build()
	if err != nil {
		return nil, fmt.Errorf("build draft for key %s: %w", key, err)
	}

	db.drafts.SetDefault(key, draft)
	db.l.LogDebug("Draft %v stored under idempotency key %v", draft.ID, key)

	return draft, nil
}

func (db *DB) Len() int {
	return db.drafts.ItemCount()
}
