package database

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/singleflight"
)

// TokenSource supplies the identity token used as the per-connection
// database password.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// PoolProvider creates the pgx pool lazily, at most once across concurrent
// invocations. A failed initialization is not cached: the next caller
// retries. Every new connection authenticates with a fresh infra token.

type PoolProvider struct {
	url    string
	tokens TokenSource

	group singleflight.Group

	mu   sync.RWMutex
	pool *pgxpool.Pool
}

func NewPoolProvider(url string, tokens TokenSource) *PoolProvider {
	return &PoolProvider{url: url, tokens: tokens}
}

func (p *PoolProvider) Get(ctx context.Context) (*pgxpool.Pool, error) {
	p.mu.RLock()
	pool := p.pool
	p.mu.RUnlock()
	if pool != nil {
		return pool, nil
	}

	v, err, _ := p.group.Do("pool", func() (interface{}, error) {
		p.mu.RLock()
		existing := p.pool
		p.mu.RUnlock()
		if existing != nil {
			return existing, nil
		}

		pool, err := p.connect(ctx)
		if err != nil {
			return nil, err
		}
		p.mu.Lock()
		p.pool = pool
		p.mu.Unlock()
		return pool, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*pgxpool.Pool), nil
}

func (p *PoolProvider) connect(ctx context.Context) (*pgxpool.Pool, error) {
	log.Printf("[database] initializing connection pool")
	cfg, err := pgxpool.ParseConfig(p.url)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 10
	cfg.HealthCheckPeriod = 30 * time.Second
	cfg.BeforeConnect = func(ctx context.Context, cc *pgx.ConnConfig) error {
		tok, err := p.tokens.Token(ctx)
		if err != nil {
			return err
		}
		cc.Password = tok
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Printf("[database] pool ping failed err=%v", err)
		return nil, err
	}
	log.Printf("[database] connection pool ready")
	return pool, nil
}

func (p *PoolProvider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
}
