package memstate

import (
	"PocketFormsBot/internal/domain/schema"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowStateRoundTrip(t *testing.T) {
	repo := NewFlowStateRepo()
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	state := schema.FlowState{Mode: schema.FlowModeBuild, Step: schema.FlowStepTitle}
	state.Draft.SetTitle("Feedback")
	require.NoError(t, repo.Set(ctx, 1, state))

	got, ok, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Feedback", got.Draft.Title)
	assert.Equal(t, schema.FlowStepTitle, got.Step)

	require.NoError(t, repo.Delete(ctx, 1))
	_, ok, err = repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFlowStatePerUserIsolation(t *testing.T) {
	repo := NewFlowStateRepo()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, 1, schema.FlowState{Mode: schema.FlowModeBuild}))
	require.NoError(t, repo.Set(ctx, 2, schema.FlowState{Mode: schema.FlowModeFill}))

	a, ok, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	b, ok, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, schema.FlowModeBuild, a.Mode)
	assert.Equal(t, schema.FlowModeFill, b.Mode)
}
