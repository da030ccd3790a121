package backendapi

import (
	"PocketFormsBot/internal/domain/schema"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecordNameVariants(t *testing.T) {
	rec, err := decodeRecord([]byte(`{"_id":"abc","formName":"Old Style","questions":[]}`))
	require.NoError(t, err)
	assert.Equal(t, "abc", rec.ID)
	assert.Equal(t, "Old Style", rec.Title)

	rec, err = decodeRecord([]byte(`{"id":"def","title":"New Style","formName":"Ignored"}`))
	require.NoError(t, err)
	assert.Equal(t, "def", rec.ID)
	assert.Equal(t, "New Style", rec.Title, "title wins when both are present")

	rec, err = decodeRecord([]byte(`{"id":"ghi"}`))
	require.NoError(t, err)
	assert.Equal(t, "", rec.Title, "missing both name fields yields empty string")
}

func TestDecodeRecordQuestions(t *testing.T) {
	data := []byte(`{
		"_id": "f1",
		"formName": "Survey",
		"questions": [
			{"question": "Your name?", "type": "text"},
			{"text": "Pick one", "type": "radio", "options": ["Yes", "No"]},
			{"question": "Rate us", "type": "grid", "options": [
				{"label": "Good", "imageUrl": "http://x/good.png"},
				{"text": "Bad"}
			]},
			{"question": "Mystery", "type": "slider"}
		]
	}`)

	rec, err := decodeRecord(data)
	require.NoError(t, err)
	require.Len(t, rec.Questions, 4)

	assert.Equal(t, "Your name?", rec.Questions[0].Text)
	assert.Equal(t, schema.KindText, rec.Questions[0].Kind)
	assert.Empty(t, rec.Questions[0].Options, "missing options on a text question is not an error")

	assert.Equal(t, "Pick one", rec.Questions[1].Text)
	assert.Equal(t, schema.KindCheckbox, rec.Questions[1].Kind, "radio normalizes to checkbox")
	require.Len(t, rec.Questions[1].Options, 2)
	assert.Equal(t, "Yes", rec.Questions[1].Options[0].Label)
	assert.Equal(t, "No", rec.Questions[1].Options[1].Label)

	assert.Equal(t, schema.KindGrid, rec.Questions[2].Kind)
	require.Len(t, rec.Questions[2].Options, 2)
	assert.Equal(t, "Good", rec.Questions[2].Options[0].Label)
	assert.Equal(t, "http://x/good.png", rec.Questions[2].Options[0].ImageURL)
	assert.Equal(t, "Bad", rec.Questions[2].Options[1].Label)

	assert.Equal(t, schema.KindText, rec.Questions[3].Kind, "unknown kinds degrade to text")
}

func TestDecodeRecordRoundTripOrdering(t *testing.T) {
	data := []byte(`{"id":"f2","title":"Ordered","questions":[
		{"question":"q0","type":"text"},
		{"question":"q1","type":"checkbox","options":["a","b","c"]},
		{"question":"q2","type":"text"}
	]}`)

	rec, err := decodeRecord(data)
	require.NoError(t, err)
	require.Len(t, rec.Questions, 3)
	for i, want := range []string{"q0", "q1", "q2"} {
		assert.Equal(t, want, rec.Questions[i].Text)
	}
	labels := []string{}
	for _, o := range rec.Questions[1].Options {
		labels = append(labels, o.Label)
	}
	assert.Equal(t, []string{"a", "b", "c"}, labels)
}

func TestDecodeSummaries(t *testing.T) {
	data := []byte(`[
		{"_id": "m1", "formName": "First"},
		{"id": "m2", "title": "Second"},
		{"_id": "m3"}
	]`)

	summaries, err := decodeSummaries(data)
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, schema.FormSummary{ID: "m1", Title: "First"}, summaries[0])
	assert.Equal(t, schema.FormSummary{ID: "m2", Title: "Second"}, summaries[1])
	assert.Equal(t, schema.FormSummary{ID: "m3", Title: ""}, summaries[2])
}
