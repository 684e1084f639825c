package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_file_system/internal/service"
)

// PostgresSlot хранит снимок коллекции одной строкой таблицы record_slots
type PostgresSlot struct {
	db  *pgxpool.Pool
	key string
}

func NewPostgresSlot(db *pgxpool.Pool, key string) service.SnapshotRepository {
	return &PostgresSlot{
		db:  db,
		key: key,
	}
}

// Load возвращает сохраненный снимок или nil, если его еще нет
func (r *PostgresSlot) Load(ctx context.Context) ([]byte, error) {
	query := `SELECT payload FROM record_slots WHERE key = $1;`

	var payload []byte
	err := r.db.QueryRow(ctx, query, r.key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load snapshot %q: %w", r.key, err)
	}
	return payload, nil
}

// Save перезаписывает снимок целиком
func (r *PostgresSlot) Save(ctx context.Context, payload []byte) error {
	query := `
		INSERT INTO record_slots (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, r.key, payload); err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", r.key, err)
	}
	return nil
}
