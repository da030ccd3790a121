package forms

import (
	"PocketFormsBot/internal/domain/repository"
	"PocketFormsBot/internal/domain/schema"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"PocketFormsBot/internal/logz"
)

type Service struct {
	backend  repository.FormsBackend
	receipts repository.ReceiptRepository
}

func New(backend repository.FormsBackend, receipts repository.ReceiptRepository) *Service {
	return &Service{backend: backend, receipts: receipts}
}

// Publish serializes the draft and creates the form on the backend. Image
// bytes are pulled through the given source at upload time.
func (s *Service) Publish(ctx context.Context, draft schema.FormDraft, images repository.ImageSource) error {
	return s.backend.CreateForm(ctx, draft, images)
}

type ListResult struct {
	Forms  []schema.FormSummary
	Filled map[string]struct{}
}

// List fetches the published forms and marks the ones this user has already
// filled. The receipt log is best effort: if it fails, the list still shows,
// just without badges.
func (s *Service) List(ctx context.Context, userID int64) (ListResult, error) {
	summaries, err := s.backend.ListForms(ctx)
	if err != nil {
		return ListResult{}, err
	}
	filled, err := s.receipts.FilledFormIDs(ctx, userID)
	if err != nil {
		logz.Log.Warn("load filled form ids", zap.Int64("user_id", userID), zap.Error(err))
		filled = map[string]struct{}{}
	}
	return ListResult{Forms: summaries, Filled: filled}, nil
}

func (s *Service) Get(ctx context.Context, formID string) (schema.FormRecord, error) {
	return s.backend.GetForm(ctx, formID)
}

// Submit posts the answers, keyed by question position, then records a
// receipt. A receipt failure is logged and swallowed: the backend already
// accepted the response.
func (s *Service) Submit(ctx context.Context, userID int64, formID string, answers map[string]string) error {
	if err := s.backend.SubmitResponse(ctx, formID, answers); err != nil {
		return err
	}
	receipt := schema.Receipt{
		ID:          uuid.New(),
		UserID:      userID,
		FormID:      formID,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.receipts.Create(ctx, receipt); err != nil {
		logz.Log.Warn("record receipt", zap.String("form_id", formID), zap.Error(err))
	}
	return nil
}

func (s *Service) HasFilled(ctx context.Context, userID int64, formID string) bool {
	filled, err := s.receipts.HasFilled(ctx, userID, formID)
	if err != nil {
		logz.Log.Warn("check receipt", zap.String("form_id", formID), zap.Error(err))
		return false
	}
	return filled
}
