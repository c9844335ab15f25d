package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pierrec/lz4/v4"
	"lukechampine.com/blake3"
)

var (
	ErrNoSave      = errors.New("no save for player")
	ErrCorruptSave = errors.New("save blob failed integrity check")
)

// GameSaveRepository stores one state blob per player. Blobs are
// lz4-compressed JSON; the hash is blake3 over the uncompressed bytes, so
// a blob that decompresses but was truncated or bit-flipped still fails
// verification.
type GameSaveRepository struct {
	pool *pgxpool.Pool
}

func NewGameSaveRepository(pool *pgxpool.Pool) *GameSaveRepository {
	return &GameSaveRepository{pool: pool}
}

func (r *GameSaveRepository) Save(ctx context.Context, playerID string, seed int64, state []byte) error {
	blob, hash, err := encodeState(state)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO game_saves (player_id, seed, state, state_hash, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (player_id) DO UPDATE SET
			seed = EXCLUDED.seed,
			state = EXCLUDED.state,
			state_hash = EXCLUDED.state_hash,
			updated_at = NOW()
	`, playerID, seed, blob, hash)
	return err
}

func (r *GameSaveRepository) Load(ctx context.Context, playerID string) ([]byte, int64, error) {
	var blob, hash []byte
	var seed int64
	err := r.pool.QueryRow(ctx, `
		SELECT state, state_hash, seed FROM game_saves WHERE player_id = $1
	`, playerID).Scan(&blob, &hash, &seed)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, 0, ErrNoSave
		}
		return nil, 0, err
	}

	state, err := decodeState(blob, hash)
	if err != nil {
		return nil, seed, err
	}
	return state, seed, nil
}

func (r *GameSaveRepository) Delete(ctx context.Context, playerID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM game_saves WHERE player_id = $1`, playerID)
	return err
}

func encodeState(raw []byte) (blob, hash []byte, err error) {
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, nil, err
	}
	sum := blake3.Sum256(raw)
	return buf.Bytes(), sum[:], nil
}

func decodeState(blob, hash []byte) ([]byte, error) {
	zr := lz4.NewReader(bytes.NewReader(blob))
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, ErrCorruptSave
	}
	sum := blake3.Sum256(raw)
	if !bytes.Equal(sum[:], hash) {
		return nil, ErrCorruptSave
	}
	return raw, nil
}
