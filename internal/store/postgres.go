// Package store persists generated ad scripts when a database is configured.
// The pipeline itself never depends on it; history is best-effort.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/promoforge/adscript/internal/utils"
)

// Record is one generated script kept in history.
type Record struct {
	ID          string
	NewsText    string
	Headline    string
	VideoScript string
	Model       string
	CreatedAt   time.Time
}

type Client struct {
	dsn  string
	pool *pgxpool.Pool
}

func NewClient(ctx context.Context, dsn string) (*Client, error) {
	client := &Client{dsn: dsn}

	pool, err := client.createConnectionPool(ctx)
	if err != nil {
		return nil, err
	}
	client.pool = pool

	if err := client.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	utils.Zlog.Info("Connected to PostgreSQL script history store")
	return client, nil
}

func (c *Client) createConnectionPool(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(c.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Postgres DSN: %w", err)
	}

	cfg.MaxConns = 4
	cfg.MinConns = 1
	cfg.HealthCheckPeriod = 30 * time.Second
	cfg.MaxConnLifetime = 60 * time.Minute
	cfg.MaxConnIdleTime = 15 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping Postgres: %w", err)
	}

	return pool, nil
}

func (c *Client) ensureSchema(ctx context.Context) error {
	_, err := c.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS ad_scripts (
			id           UUID PRIMARY KEY,
			news_text    TEXT NOT NULL,
			headline     TEXT NOT NULL,
			video_script TEXT NOT NULL,
			model        TEXT NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure ad_scripts table: %w", err)
	}
	return nil
}

// Save inserts one generated script.
func (c *Client) Save(ctx context.Context, rec Record) error {
	_, err := c.pool.Exec(ctx,
		`INSERT INTO ad_scripts (id, news_text, headline, video_script, model, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.NewsText, rec.Headline, rec.VideoScript, rec.Model, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert ad script: %w", err)
	}
	return nil
}

// Recent returns the newest records, newest first.
func (c *Client) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := c.pool.Query(ctx,
		`SELECT id, news_text, headline, video_script, model, created_at
		 FROM ad_scripts ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query ad scripts: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.NewsText, &rec.Headline, &rec.VideoScript, &rec.Model, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ad script row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Ping reports store connectivity for health checks.
func (c *Client) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

func (c *Client) Close() error {
	if c.pool != nil {
		c.pool.Close()
	}
	return nil
}
