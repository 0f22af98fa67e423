package database

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

// Sessions hands out one pooled connection per unit of work
type Sessions struct {
	pool *pgxpool.Pool
}

func NewSessions(pool *pgxpool.Pool) *Sessions {
	return &Sessions{pool: pool}
}

//With acquires a connection, runs fn on it and always hands the connection back to the pool
func (s *Sessions) With(ctx context.Context, fn func(conn *pgxpool.Conn) error) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to acquire database session")
	}
	defer conn.Release()
	return fn(conn)
}

//Ping checks that a session can be opened and the server answers
func (s *Sessions) Ping(ctx context.Context) error {
	return s.With(ctx, func(conn *pgxpool.Conn) error {
		return conn.Conn().Ping(ctx)
	})
}
