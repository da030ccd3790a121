package repository

import (
	"PocketFormsBot/internal/domain/schema"
	"context"
)

type ReceiptRepository interface {
	Create(ctx context.Context, receipt schema.Receipt) error
	FilledFormIDs(ctx context.Context, userID int64) (map[string]struct{}, error)
	HasFilled(ctx context.Context, userID int64, formID string) (bool, error)
}
