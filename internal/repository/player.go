package repository

import (
	"context"
	"fmt"

	"github.com/goblue0808/Genesis-Frontier/internal/catalog"
	"github.com/goblue0808/Genesis-Frontier/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlayerRepository struct {
	pool *pgxpool.Pool
}

func NewPlayerRepository(pool *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{pool: pool}
}

func (r *PlayerRepository) Create(ctx context.Context, username, email, passwordHash string) (*model.Player, error) {
	p := &model.Player{}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO players (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
		RETURNING id, username, email, password_hash, prestige, is_banned, last_login_at, created_at, updated_at
	`, uuid.New().String(), username, email, passwordHash).Scan(
		&p.ID, &p.Username, &p.Email, &p.PasswordHash, &p.Prestige, &p.IsBanned, &p.LastLoginAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("duplicate key")
		}
		return nil, err
	}
	return p, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*model.Player, error) {
	p := &model.Player{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, email, password_hash, prestige, is_banned, last_login_at, created_at, updated_at
		FROM players WHERE id = $1
	`, id).Scan(
		&p.ID, &p.Username, &p.Email, &p.PasswordHash, &p.Prestige, &p.IsBanned, &p.LastLoginAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PlayerRepository) GetByUsername(ctx context.Context, username string) (*model.Player, error) {
	p := &model.Player{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, email, password_hash, prestige, is_banned, last_login_at, created_at, updated_at
		FROM players WHERE username = $1
	`, username).Scan(
		&p.ID, &p.Username, &p.Email, &p.PasswordHash, &p.Prestige, &p.IsBanned, &p.LastLoginAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PlayerRepository) UpdateLoginTime(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE players SET last_login_at = NOW(), updated_at = NOW() WHERE id = $1`, id)
	return err
}

// UpdatePrestige mirrors the empire's prestige onto the player row so the
// leaderboard never needs to decode save blobs.
func (r *PlayerRepository) UpdatePrestige(ctx context.Context, id string, prestige float64) error {
	_, err := r.pool.Exec(ctx, `UPDATE players SET prestige = $2, updated_at = NOW() WHERE id = $1`, id, prestige)
	return err
}

func (r *PlayerRepository) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT username, prestige FROM players
		WHERE is_banned = FALSE
		ORDER BY prestige DESC, username ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LeaderboardEntry
	for rows.Next() {
		var e model.LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.Prestige); err != nil {
			return nil, err
		}
		e.Rank = catalog.RankForPrestige(e.Prestige)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PlayerRepository) CountTotal(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM players`).Scan(&count)
	return count, err
}
