package backendapi

import (
	"PocketFormsBot/internal/domain/errorz"
	"PocketFormsBot/internal/domain/schema"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImages map[string][]byte

func (f fakeImages) Fetch(_ context.Context, ref string) ([]byte, error) {
	data, ok := f[ref]
	if !ok {
		return nil, fmt.Errorf("no image %s", ref)
	}
	return data, nil
}

type payloadPart struct {
	name     string
	filename string
	ctype    string
	value    string
}

func readParts(t *testing.T, draft schema.FormDraft, images fakeImages) []payloadPart {
	t.Helper()
	buf, contentType, err := encodeDraft(context.Background(), draft, images)
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	mr := multipart.NewReader(buf, params["boundary"])
	var parts []payloadPart
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		value, err := io.ReadAll(p)
		require.NoError(t, err)
		parts = append(parts, payloadPart{
			name:     p.FormName(),
			filename: p.FileName(),
			ctype:    p.Header.Get("Content-Type"),
			value:    string(value),
		})
	}
	return parts
}

func fieldValues(parts []payloadPart) map[string]string {
	fields := make(map[string]string)
	for _, p := range parts {
		if p.filename == "" {
			fields[p.name] = p.value
		}
	}
	return fields
}

func binaryParts(parts []payloadPart) []payloadPart {
	var bins []payloadPart
	for _, p := range parts {
		if p.filename != "" {
			bins = append(bins, p)
		}
	}
	return bins
}

func TestEncodeSingleTextQuestion(t *testing.T) {
	draft := schema.FormDraft{Title: "Feedback"}
	draft.BeginQuestion(schema.KindText)
	draft.SetQuestionText("How was it?")
	require.True(t, draft.CommitQuestion())

	parts := readParts(t, draft, fakeImages{})

	fields := fieldValues(parts)
	assert.Equal(t, "Feedback", fields["formName"])
	assert.Equal(t, "How was it?", fields["questions[0][question]"])
	assert.Equal(t, "text", fields["questions[0][type]"])
	assert.Len(t, fields, 3, "no option fields for a text question")
	assert.Empty(t, binaryParts(parts))
}

func TestEncodeCheckboxWithOptionImage(t *testing.T) {
	draft := schema.FormDraft{Title: "Poll"}
	draft.BeginQuestion(schema.KindCheckbox)
	draft.SetQuestionText("Did you like it?")
	draft.AddOption()
	require.NoError(t, draft.SetOptionLabel(0, "Yes"))
	require.NoError(t, draft.AttachOptionImage(0, "photos/photo.jpg"))
	draft.AddOption()
	require.NoError(t, draft.SetOptionLabel(1, "No"))
	require.True(t, draft.CommitQuestion())

	parts := readParts(t, draft, fakeImages{"photos/photo.jpg": []byte("jpegdata")})

	fields := fieldValues(parts)
	assert.Equal(t, "Yes", fields["questions[0][options][0]"])
	assert.Equal(t, "No", fields["questions[0][options][1]"])

	bins := binaryParts(parts)
	require.Len(t, bins, 1)
	assert.Equal(t, "optionImages", bins[0].name)
	assert.Equal(t, "photo.jpg", bins[0].filename)
	assert.Equal(t, "image/jpg", bins[0].ctype)
	assert.Equal(t, "jpegdata", bins[0].value)
}

func TestEncodeFieldNumberingUnaffectedByImages(t *testing.T) {
	draft := schema.FormDraft{Title: "Mixed"}

	draft.BeginQuestion(schema.KindText)
	draft.SetQuestionText("with image")
	draft.AttachQuestionImage("photos/a.png")
	require.True(t, draft.CommitQuestion())

	draft.BeginQuestion(schema.KindText)
	draft.SetQuestionText("without image")
	require.True(t, draft.CommitQuestion())

	draft.BeginQuestion(schema.KindGrid)
	draft.SetQuestionText("grid one")
	draft.AddOption()
	require.NoError(t, draft.SetOptionLabel(0, "cell"))
	require.True(t, draft.CommitQuestion())

	parts := readParts(t, draft, fakeImages{"photos/a.png": []byte("png")})

	fields := fieldValues(parts)
	assert.Equal(t, "with image", fields["questions[0][question]"])
	assert.Equal(t, "without image", fields["questions[1][question]"])
	assert.Equal(t, "grid one", fields["questions[2][question]"])
	assert.Equal(t, "grid", fields["questions[2][type]"])
	assert.Equal(t, "cell", fields["questions[2][options][0]"])

	bins := binaryParts(parts)
	require.Len(t, bins, 1)
	assert.Equal(t, "questionImage", bins[0].name)
	assert.Equal(t, "image/png", bins[0].ctype)
}

func TestEncodeSkipsUnknownMediaType(t *testing.T) {
	draft := schema.FormDraft{Title: "T", HeaderImageRef: "photos/noextension"}
	draft.BeginQuestion(schema.KindText)
	draft.SetQuestionText("q")
	require.True(t, draft.CommitQuestion())

	// The unresolvable header image is skipped, not fetched.
	parts := readParts(t, draft, fakeImages{})

	assert.Empty(t, binaryParts(parts))
	fields := fieldValues(parts)
	assert.Equal(t, "q", fields["questions[0][question]"])
}

func TestRefMediaType(t *testing.T) {
	cases := []struct {
		ref  string
		want string
		err  error
	}{
		{ref: "photos/photo.jpg", want: "image/jpg"},
		{ref: "photos/pic.png", want: "image/png"},
		{ref: "a/b/c.jpeg", want: "image/jpeg"},
		{ref: "photos/noext", err: errorz.ErrUnknownMediaType},
		{ref: "photos/trailing.", err: errorz.ErrUnknownMediaType},
	}
	for _, tc := range cases {
		got, err := refMediaType(tc.ref)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, tc.ref)
			continue
		}
		require.NoError(t, err, tc.ref)
		assert.Equal(t, tc.want, got, tc.ref)
	}
}
