package schema

import "PocketFormsBot/internal/domain/errorz"

type QuestionKind string

const (
	KindText     QuestionKind = "text"
	KindCheckbox QuestionKind = "checkbox"
	KindGrid     QuestionKind = "grid"
)

type OptionDraft struct {
	Label    string `json:"label"`
	ImageRef string `json:"image_ref,omitempty"`
}

type QuestionDraft struct {
	Kind     QuestionKind  `json:"kind"`
	Text     string        `json:"text"`
	ImageRef string        `json:"image_ref,omitempty"`
	Options  []OptionDraft `json:"options,omitempty"`
}

// FormDraft is the in-memory form being authored. Committed questions live
// in Questions; the question currently being edited lives in Current until
// CommitQuestion moves it over. Position is the only identity a question or
// option has while drafting.
type FormDraft struct {
	Title          string          `json:"title"`
	HeaderImageRef string          `json:"header_image_ref,omitempty"`
	Questions      []QuestionDraft `json:"questions"`
	Current        *QuestionDraft  `json:"current,omitempty"`
}

func (d *FormDraft) SetTitle(title string) {
	d.Title = title
}

// SetHeaderImage replaces the header image reference. An empty ref clears it.
func (d *FormDraft) SetHeaderImage(ref string) {
	d.HeaderImageRef = ref
}

// BeginQuestion starts a new in-progress question. A no-op while another
// question is still being edited: only one at a time.
func (d *FormDraft) BeginQuestion(kind QuestionKind) {
	if d.Current != nil {
		return
	}
	d.Current = &QuestionDraft{Kind: kind}
}

func (d *FormDraft) SetQuestionText(text string) {
	if d.Current == nil {
		return
	}
	d.Current.Text = text
}

func (d *FormDraft) AttachQuestionImage(ref string) {
	if d.Current == nil {
		return
	}
	d.Current.ImageRef = ref
}

// AddOption appends an empty option to the in-progress question. Only
// checkbox and grid questions carry options; for anything else this is a
// no-op.
func (d *FormDraft) AddOption() {
	if d.Current == nil {
		return
	}
	if d.Current.Kind != KindCheckbox && d.Current.Kind != KindGrid {
		return
	}
	d.Current.Options = append(d.Current.Options, OptionDraft{})
}

func (d *FormDraft) SetOptionLabel(index int, label string) error {
	if d.Current == nil || index < 0 || index >= len(d.Current.Options) {
		return errorz.ErrIndexOutOfRange
	}
	d.Current.Options[index].Label = label
	return nil
}

func (d *FormDraft) AttachOptionImage(index int, ref string) error {
	if d.Current == nil || index < 0 || index >= len(d.Current.Options) {
		return errorz.ErrIndexOutOfRange
	}
	d.Current.Options[index].ImageRef = ref
	return nil
}

// CommitQuestion appends a snapshot of the in-progress question and clears
// the editing slot. A question needs non-empty text and a kind before it may
// be committed; otherwise nothing changes. Reports whether the append
// happened.
func (d *FormDraft) CommitQuestion() bool {
	if d.Current == nil || d.Current.Text == "" || d.Current.Kind == "" {
		return false
	}
	q := *d.Current
	q.Options = append([]OptionDraft(nil), d.Current.Options...)
	d.Questions = append(d.Questions, q)
	d.Current = nil
	return true
}

func (d *FormDraft) RemoveQuestion(index int) error {
	if index < 0 || index >= len(d.Questions) {
		return errorz.ErrIndexOutOfRange
	}
	d.Questions = append(d.Questions[:index], d.Questions[index+1:]...)
	return nil
}

func (d *FormDraft) RemoveOption(qIndex, oIndex int) error {
	if qIndex < 0 || qIndex >= len(d.Questions) {
		return errorz.ErrIndexOutOfRange
	}
	q := &d.Questions[qIndex]
	if oIndex < 0 || oIndex >= len(q.Options) {
		return errorz.ErrIndexOutOfRange
	}
	q.Options = append(q.Options[:oIndex], q.Options[oIndex+1:]...)
	return nil
}
