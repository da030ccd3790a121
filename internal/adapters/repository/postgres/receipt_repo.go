package postgres

import (
	"PocketFormsBot/internal/domain/repository"
	"PocketFormsBot/internal/domain/schema"
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReceiptRepo is the bot-local log of submitted responses. The backend owns
// the responses themselves; this table only remembers who filled what, to
// badge the forms list and stop repeat fills.
type ReceiptRepo struct {
	pool *pgxpool.Pool
}

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

func NewReceiptRepo(pool *pgxpool.Pool) *ReceiptRepo {
	return &ReceiptRepo{pool: pool}
}

func (r *ReceiptRepo) Migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS form_receipts (
			id UUID PRIMARY KEY,
			user_id BIGINT NOT NULL,
			form_id TEXT NOT NULL,
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE(user_id, form_id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_form_receipts_user ON form_receipts(user_id);`,
	}
	for _, q := range queries {
		if _, err := r.pool.Exec(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (r *ReceiptRepo) Create(ctx context.Context, receipt schema.Receipt) error {
	if receipt.ID == uuid.Nil {
		receipt.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO form_receipts (id, user_id, form_id, submitted_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, form_id) DO NOTHING`,
		receipt.ID, receipt.UserID, receipt.FormID, receipt.SubmittedAt)
	return err
}

func (r *ReceiptRepo) FilledFormIDs(ctx context.Context, userID int64) (map[string]struct{}, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT form_id FROM form_receipts WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	filled := make(map[string]struct{})
	for rows.Next() {
		var formID string
		if err := rows.Scan(&formID); err != nil {
			return nil, err
		}
		filled[formID] = struct{}{}
	}
	return filled, rows.Err()
}

func (r *ReceiptRepo) HasFilled(ctx context.Context, userID int64, formID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM form_receipts WHERE user_id = $1 AND form_id = $2)`,
		userID, formID).Scan(&exists)
	return exists, err
}
