package builder

import (
	"PocketFormsBot/internal/domain/repository"
	"PocketFormsBot/internal/domain/schema"
	"context"
)

// Service owns the per-user flow state: one flow at a time, mutated through
// load–mutate–save by the single handler goroutine serving that chat.
type Service struct {
	repo repository.FlowStateRepository
}

func New(repo repository.FlowStateRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) StartBuild(ctx context.Context, userID int64) error {
	return s.repo.Set(ctx, userID, schema.FlowState{Mode: schema.FlowModeBuild, Step: schema.FlowStepTitle})
}

func (s *Service) StartFill(ctx context.Context, userID int64, form schema.FormRecord) error {
	return s.repo.Set(ctx, userID, schema.FlowState{
		Mode:    schema.FlowModeFill,
		Step:    schema.FlowStepAnswer,
		FormID:  form.ID,
		Form:    &form,
		Answers: map[string]string{},
	})
}

func (s *Service) StartLogin(ctx context.Context, userID int64) error {
	return s.repo.Set(ctx, userID, schema.FlowState{Mode: schema.FlowModeLogin, Step: schema.FlowStepEmail})
}

func (s *Service) StartSignup(ctx context.Context, userID int64) error {
	return s.repo.Set(ctx, userID, schema.FlowState{Mode: schema.FlowModeSignup, Step: schema.FlowStepEmail})
}

func (s *Service) Get(ctx context.Context, userID int64) (schema.FlowState, bool, error) {
	return s.repo.Get(ctx, userID)
}

func (s *Service) Save(ctx context.Context, userID int64, state schema.FlowState) error {
	return s.repo.Set(ctx, userID, state)
}

func (s *Service) Cancel(ctx context.Context, userID int64) error {
	return s.repo.Delete(ctx, userID)
}
