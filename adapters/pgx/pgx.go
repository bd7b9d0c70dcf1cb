package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cybernetic-labs/cyberauth/core"
)

// Adapter backs the key-value port with a two-column postgres table:
//
//	CREATE TABLE IF NOT EXISTS public.kv (
//	    key   text PRIMARY KEY,
//	    value text NOT NULL
//	);
//
// Each Set is an upsert of the full value. No row versioning: the engine's
// last-writer-wins contract carries through unchanged.
type Adapter struct {
	pool *pgxpool.Pool
}

var _ core.KeyValueStore = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}

func (a *Adapter) Get(key string) (string, error) {
	ctx := context.Background()
	q := `SELECT value FROM public.kv WHERE key = $1`

	var value string
	err := a.pool.QueryRow(ctx, q, key).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", core.ErrKeyNotFound
		}
		return "", err
	}
	return value, nil
}

func (a *Adapter) Set(key, value string) error {
	ctx := context.Background()
	q := `INSERT INTO public.kv (key, value) VALUES ($1, $2)
	      ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`

	_, err := a.pool.Exec(ctx, q, key, value)
	return err
}

func (a *Adapter) Remove(key string) error {
	ctx := context.Background()

	_, err := a.pool.Exec(ctx, `DELETE FROM public.kv WHERE key = $1`, key)
	return err
}
