package repository

import (
	"PocketFormsBot/internal/domain/schema"
	"context"
)

type FlowStateRepository interface {
	Get(ctx context.Context, userID int64) (schema.FlowState, bool, error)
	Set(ctx context.Context, userID int64, state schema.FlowState) error
	Delete(ctx context.Context, userID int64) error
}
