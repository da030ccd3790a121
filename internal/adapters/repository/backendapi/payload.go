package backendapi

import (
	"PocketFormsBot/internal/domain/errorz"
	"PocketFormsBot/internal/domain/repository"
	"PocketFormsBot/internal/domain/schema"
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"go.uber.org/zap"

	"PocketFormsBot/internal/logz"
)

// encodeDraft builds the multipart create-form payload. The backend
// reconstructs the form from positional field names, so question and option
// fields must appear in draft order:
//
//	formName
//	questions[i][question], questions[i][type], questions[i][options][j]
//
// Binary parts ride under headerImage / questionImage / optionImages. An
// absent image simply has no part; field numbering never shifts around it.
func encodeDraft(ctx context.Context, draft schema.FormDraft, images repository.ImageSource) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	if err := w.WriteField("formName", draft.Title); err != nil {
		return nil, "", err
	}
	if err := writeImagePart(ctx, w, "headerImage", draft.HeaderImageRef, images); err != nil {
		return nil, "", err
	}

	for i, q := range draft.Questions {
		if err := w.WriteField(fmt.Sprintf("questions[%d][question]", i), q.Text); err != nil {
			return nil, "", err
		}
		if err := w.WriteField(fmt.Sprintf("questions[%d][type]", i), string(q.Kind)); err != nil {
			return nil, "", err
		}
		for j, opt := range q.Options {
			if err := w.WriteField(fmt.Sprintf("questions[%d][options][%d]", i, j), opt.Label); err != nil {
				return nil, "", err
			}
		}

		if err := writeImagePart(ctx, w, "questionImage", q.ImageRef, images); err != nil {
			return nil, "", err
		}
		for _, opt := range q.Options {
			if err := writeImagePart(ctx, w, "optionImages", opt.ImageRef, images); err != nil {
				return nil, "", err
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// writeImagePart resolves ref and appends a binary part. A ref whose
// filename has no usable extension is skipped with a warning rather than
// failing the whole publish.
func writeImagePart(ctx context.Context, w *multipart.Writer, field, ref string, images repository.ImageSource) error {
	if ref == "" {
		return nil
	}
	name := refFileName(ref)
	mediaType, err := refMediaType(ref)
	if err != nil {
		if errors.Is(err, errorz.ErrUnknownMediaType) {
			logz.Log.Warn("skip image with unknown media type", zap.String("file", name))
			return nil
		}
		return err
	}

	data, err := images.Fetch(ctx, ref)
	if err != nil {
		return fmt.Errorf("fetch image %s: %w", name, err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, name))
	header.Set("Content-Type", mediaType)
	part, err := w.CreatePart(header)
	if err != nil {
		return err
	}
	_, err = part.Write(data)
	return err
}

func refFileName(ref string) string {
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}

// refMediaType derives the declared media type from the filename suffix, the
// way the backend expects it: "photo.jpg" becomes "image/jpg", not
// "image/jpeg". No extension means the type cannot be declared.
func refMediaType(ref string) (string, error) {
	name := refFileName(ref)
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return "", errorz.ErrUnknownMediaType
	}
	return "image/" + name[idx+1:], nil
}
