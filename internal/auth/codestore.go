package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/brightofhouse/site/internal/db"
	"github.com/redis/go-redis/v9"
)

// CodeStore holds pending login codes. Several codes may be live at once.
// Consume succeeds at most once per code.
type CodeStore interface {
	Save(ctx context.Context, code string, ttl time.Duration) error
	Consume(ctx context.Context, code string) (bool, error)
}

type MemoryCodeStore struct {
	mu    sync.Mutex
	codes map[string]time.Time
	now   func() time.Time
}

func NewMemoryCodeStore() *MemoryCodeStore {
	return &MemoryCodeStore{codes: make(map[string]time.Time), now: time.Now}
}

func (m *MemoryCodeStore) Save(_ context.Context, code string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for k, exp := range m.codes {
		if !exp.After(now) {
			delete(m.codes, k)
		}
	}
	m.codes[HashCode(code)] = now.Add(ttl)
	return nil
}

func (m *MemoryCodeStore) Consume(_ context.Context, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := HashCode(code)
	exp, ok := m.codes[key]
	if !ok {
		return false, nil
	}
	delete(m.codes, key)
	return exp.After(m.now()), nil
}

const redisCodePrefix = "site:auth:code:"

// RedisCodeStore keeps codes as expiring keys. Consume uses GETDEL, so two
// concurrent verifies of one code cannot both win.
type RedisCodeStore struct {
	client *redis.Client
}

func NewRedisCodeStore(client *redis.Client) *RedisCodeStore {
	return &RedisCodeStore{client: client}
}

func (r *RedisCodeStore) Save(ctx context.Context, code string, ttl time.Duration) error {
	return r.client.Set(ctx, redisCodePrefix+HashCode(code), "1", ttl).Err()
}

func (r *RedisCodeStore) Consume(ctx context.Context, code string) (bool, error) {
	err := r.client.GetDel(ctx, redisCodePrefix+HashCode(code)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

type CodeQueries interface {
	CreateAdminCode(ctx context.Context, arg db.CreateAdminCodeParams) error
	ConsumeAdminCode(ctx context.Context, codeHash string) (db.AdminCode, error)
	DeleteExpiredAdminCodes(ctx context.Context) error
}

// PostgresCodeStore uses the admin_codes table. Expired rows are pruned on
// every Save.
type PostgresCodeStore struct {
	q   CodeQueries
	now func() time.Time
}

func NewPostgresCodeStore(q CodeQueries) *PostgresCodeStore {
	return &PostgresCodeStore{q: q, now: time.Now}
}

func (p *PostgresCodeStore) Save(ctx context.Context, code string, ttl time.Duration) error {
	if err := p.q.DeleteExpiredAdminCodes(ctx); err != nil {
		return err
	}
	return p.q.CreateAdminCode(ctx, db.CreateAdminCodeParams{
		CodeHash:  HashCode(code),
		ExpiresAt: db.Timestamptz(p.now().Add(ttl)),
	})
}

func (p *PostgresCodeStore) Consume(ctx context.Context, code string) (bool, error) {
	_, err := p.q.ConsumeAdminCode(ctx, HashCode(code))
	if db.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
