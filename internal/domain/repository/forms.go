package repository

import (
	"PocketFormsBot/internal/domain/schema"
	"context"
)

// ImageSource resolves an image reference to its bytes. References are
// opaque handles handed out by the image gateway; the only operations on
// them are "read bytes for upload" and deriving a filename.
type ImageSource interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// ImageGateway is the picker side: it turns a platform file ID into a
// stable reference that an ImageSource can later resolve.
type ImageGateway interface {
	ImageSource
	Ref(ctx context.Context, fileID string) (string, error)
}

// FormsBackend is the external HTTP API that owns all persistence and
// business logic. The bot is a thin client around these six operations.
type FormsBackend interface {
	Login(ctx context.Context, email, password string) (schema.User, error)
	Signup(ctx context.Context, email, password string) error
	CreateForm(ctx context.Context, draft schema.FormDraft, images ImageSource) error
	ListForms(ctx context.Context) ([]schema.FormSummary, error)
	GetForm(ctx context.Context, formID string) (schema.FormRecord, error)
	SubmitResponse(ctx context.Context, formID string, answers map[string]string) error
}
