package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PocketFormsBot/internal/domain/errorz"
)

func TestBeginQuestionOnlyOneInProgress(t *testing.T) {
	d := &FormDraft{}
	d.BeginQuestion(KindText)
	d.SetQuestionText("first")

	d.BeginQuestion(KindCheckbox)

	require.NotNil(t, d.Current)
	assert.Equal(t, KindText, d.Current.Kind)
	assert.Equal(t, "first", d.Current.Text)
}

func TestCommitQuestionRequiresTextAndKind(t *testing.T) {
	d := &FormDraft{}

	assert.False(t, d.CommitQuestion(), "no question in progress")

	d.BeginQuestion(KindText)
	assert.False(t, d.CommitQuestion(), "empty text")
	assert.Empty(t, d.Questions)
	require.NotNil(t, d.Current, "failed commit keeps the editing slot")

	d.SetQuestionText("How was it?")
	assert.True(t, d.CommitQuestion())
	require.Len(t, d.Questions, 1)
	assert.Nil(t, d.Current)
	assert.Equal(t, "How was it?", d.Questions[0].Text)
}

func TestCommitSnapshotsOptions(t *testing.T) {
	d := &FormDraft{}
	d.BeginQuestion(KindCheckbox)
	d.SetQuestionText("Pick one")
	d.AddOption()
	require.NoError(t, d.SetOptionLabel(0, "Yes"))
	require.True(t, d.CommitQuestion())

	// Mutating a later question must not reach back into the committed one.
	d.BeginQuestion(KindCheckbox)
	d.SetQuestionText("Another")
	d.AddOption()
	require.NoError(t, d.SetOptionLabel(0, "Other"))

	assert.Equal(t, "Yes", d.Questions[0].Options[0].Label)
}

func TestAddOptionOnlyForChoiceKinds(t *testing.T) {
	d := &FormDraft{}
	d.AddOption()
	assert.Nil(t, d.Current)

	d.BeginQuestion(KindText)
	d.AddOption()
	assert.Empty(t, d.Current.Options)

	d2 := &FormDraft{}
	d2.BeginQuestion(KindGrid)
	d2.AddOption()
	d2.AddOption()
	assert.Len(t, d2.Current.Options, 2)
}

func TestRemoveOptionKeepsOrderAndLabels(t *testing.T) {
	d := &FormDraft{}
	d.BeginQuestion(KindCheckbox)
	d.SetQuestionText("q")
	for i, label := range []string{"a", "b", "c", "d"} {
		d.AddOption()
		require.NoError(t, d.SetOptionLabel(i, label))
	}
	require.True(t, d.CommitQuestion())

	require.NoError(t, d.RemoveOption(0, 1))

	labels := make([]string, 0, len(d.Questions[0].Options))
	for _, opt := range d.Questions[0].Options {
		labels = append(labels, opt.Label)
	}
	assert.Equal(t, []string{"a", "c", "d"}, labels)
}

func TestRemoveQuestionShiftsIndices(t *testing.T) {
	d := &FormDraft{}
	for _, text := range []string{"one", "two", "three"} {
		d.BeginQuestion(KindText)
		d.SetQuestionText(text)
		require.True(t, d.CommitQuestion())
	}

	require.NoError(t, d.RemoveQuestion(0))

	require.Len(t, d.Questions, 2)
	assert.Equal(t, "two", d.Questions[0].Text)
	assert.Equal(t, "three", d.Questions[1].Text)
}

func TestIndexErrors(t *testing.T) {
	d := &FormDraft{}
	assert.ErrorIs(t, d.RemoveQuestion(0), errorz.ErrIndexOutOfRange)
	assert.ErrorIs(t, d.SetOptionLabel(0, "x"), errorz.ErrIndexOutOfRange)

	d.BeginQuestion(KindCheckbox)
	d.AddOption()
	assert.ErrorIs(t, d.SetOptionLabel(1, "x"), errorz.ErrIndexOutOfRange)
	assert.ErrorIs(t, d.AttachOptionImage(-1, "ref"), errorz.ErrIndexOutOfRange)
}

func TestSetHeaderImageClearsWithEmptyRef(t *testing.T) {
	d := &FormDraft{}
	d.SetHeaderImage("photos/header.png")
	assert.Equal(t, "photos/header.png", d.HeaderImageRef)
	d.SetHeaderImage("")
	assert.Empty(t, d.HeaderImageRef)
}
