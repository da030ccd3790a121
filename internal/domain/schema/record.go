package schema

// FormRecord is a backend-assigned form as returned by the read endpoints.
// Immutable once fetched; question and option order is the display and
// submission order.
type FormRecord struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	HeaderImageURL string           `json:"header_image_url,omitempty"`
	Questions      []QuestionRecord `json:"questions"`
}

type QuestionRecord struct {
	Text     string         `json:"text"`
	Kind     QuestionKind   `json:"kind"`
	ImageURL string         `json:"image_url,omitempty"`
	Options  []OptionRecord `json:"options"`
}

type OptionRecord struct {
	Label    string `json:"label"`
	ImageURL string `json:"image_url,omitempty"`
}

type FormSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
