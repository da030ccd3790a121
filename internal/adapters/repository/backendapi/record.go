package backendapi

import (
	"PocketFormsBot/internal/domain/schema"
	"encoding/json"
	"fmt"
)

// The backend's field names drifted over its life: forms carry `formName` or
// `title`, questions carry `question` or `text`, ids come back as `_id` or
// `id`, and options are either bare strings or {label, imageUrl} objects.
// Decoding accepts every variant and prefers whichever is present.

type wireForm struct {
	ID          string         `json:"_id"`
	AltID       string         `json:"id"`
	Title       string         `json:"title"`
	FormName    string         `json:"formName"`
	HeaderImage string         `json:"headerImage"`
	HeaderURL   string         `json:"headerImageUrl"`
	Questions   []wireQuestion `json:"questions"`
}

type wireQuestion struct {
	Question string       `json:"question"`
	Text     string       `json:"text"`
	Type     string       `json:"type"`
	Image    string       `json:"questionImage"`
	ImageURL string       `json:"imageUrl"`
	Options  []wireOption `json:"options"`
}

type wireOption struct {
	Label    string
	ImageURL string
}

func (o *wireOption) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		o.Label = s
		return nil
	}
	var obj struct {
		Label    string `json:"label"`
		Text     string `json:"text"`
		Image    string `json:"image"`
		ImageURL string `json:"imageUrl"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	o.Label = firstNonEmpty(obj.Label, obj.Text)
	o.ImageURL = firstNonEmpty(obj.ImageURL, obj.Image)
	return nil
}

type wireSummary struct {
	ID       string `json:"_id"`
	AltID    string `json:"id"`
	Title    string `json:"title"`
	FormName string `json:"formName"`
}

func decodeRecord(data []byte) (schema.FormRecord, error) {
	var wf wireForm
	if err := json.Unmarshal(data, &wf); err != nil {
		return schema.FormRecord{}, fmt.Errorf("decode form: %w", err)
	}

	record := schema.FormRecord{
		ID:             firstNonEmpty(wf.ID, wf.AltID),
		Title:          firstNonEmpty(wf.Title, wf.FormName),
		HeaderImageURL: firstNonEmpty(wf.HeaderURL, wf.HeaderImage),
		Questions:      make([]schema.QuestionRecord, 0, len(wf.Questions)),
	}
	for _, wq := range wf.Questions {
		q := schema.QuestionRecord{
			Text:     firstNonEmpty(wq.Question, wq.Text),
			Kind:     normalizeKind(wq.Type),
			ImageURL: firstNonEmpty(wq.ImageURL, wq.Image),
			Options:  make([]schema.OptionRecord, 0, len(wq.Options)),
		}
		for _, wo := range wq.Options {
			q.Options = append(q.Options, schema.OptionRecord{Label: wo.Label, ImageURL: wo.ImageURL})
		}
		record.Questions = append(record.Questions, q)
	}
	return record, nil
}

func decodeSummaries(data []byte) ([]schema.FormSummary, error) {
	var ws []wireSummary
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("decode form list: %w", err)
	}
	summaries := make([]schema.FormSummary, 0, len(ws))
	for _, w := range ws {
		summaries = append(summaries, schema.FormSummary{
			ID:    firstNonEmpty(w.ID, w.AltID),
			Title: firstNonEmpty(w.Title, w.FormName),
		})
	}
	return summaries, nil
}

// normalizeKind maps wire strings into the closed kind set. Historical
// records say "radio" for what the UI always treated as a single-select
// checkbox list; anything unrecognized degrades to a text question instead
// of failing the fetch.
func normalizeKind(s string) schema.QuestionKind {
	switch s {
	case "text":
		return schema.KindText
	case "checkbox", "radio":
		return schema.KindCheckbox
	case "grid":
		return schema.KindGrid
	default:
		return schema.KindText
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
