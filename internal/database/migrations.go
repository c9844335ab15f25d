package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type migration struct {
	version string
	sql     string
}

// Migrations are embedded in the binary so a deployment is a single
// artifact. Versions are applied in order and recorded in
// schema_migrations; already-applied versions are skipped.
var migrations = []migration{
	{
		version: "001_players",
		sql: `
			CREATE TABLE IF NOT EXISTS players (
				id UUID PRIMARY KEY,
				username VARCHAR(32) NOT NULL UNIQUE,
				email VARCHAR(255) NOT NULL UNIQUE,
				password_hash VARCHAR(255) NOT NULL,
				prestige DOUBLE PRECISION NOT NULL DEFAULT 0,
				is_banned BOOLEAN NOT NULL DEFAULT FALSE,
				last_login_at TIMESTAMPTZ,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_players_prestige ON players (prestige DESC);
		`,
	},
	{
		version: "002_refresh_tokens",
		sql: `
			CREATE TABLE IF NOT EXISTS refresh_tokens (
				id BIGSERIAL PRIMARY KEY,
				player_id UUID NOT NULL REFERENCES players(id) ON DELETE CASCADE,
				token_hash VARCHAR(64) NOT NULL,
				revoked BOOLEAN NOT NULL DEFAULT FALSE,
				expires_at TIMESTAMPTZ NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_refresh_tokens_hash ON refresh_tokens (token_hash);
			CREATE INDEX IF NOT EXISTS idx_refresh_tokens_player ON refresh_tokens (player_id);
		`,
	},
	{
		version: "003_game_saves",
		sql: `
			CREATE TABLE IF NOT EXISTS game_saves (
				player_id UUID PRIMARY KEY REFERENCES players(id) ON DELETE CASCADE,
				seed BIGINT NOT NULL,
				state BYTEA NOT NULL,
				state_hash BYTEA NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`,
	},
}

func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	for _, m := range migrations {
		var count int
		if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM schema_migrations WHERE version = $1", m.version).Scan(&count); err != nil {
			return fmt.Errorf("check migration %s: %w", m.version, err)
		}
		if count > 0 {
			continue
		}

		tx, err := pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin tx for %s: %w", m.version, err)
		}

		if _, err := tx.Exec(ctx, m.sql); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("execute migration %s: %w", m.version, err)
		}

		if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", m.version); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("record migration %s: %w", m.version, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit migration %s: %w", m.version, err)
		}

		log.Printf("Applied migration: %s", m.version)
	}

	return nil
}
