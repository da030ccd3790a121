package schema

type FlowMode string

type FlowStep string

const (
	FlowModeBuild  FlowMode = "build"
	FlowModeFill   FlowMode = "fill"
	FlowModeLogin  FlowMode = "login"
	FlowModeSignup FlowMode = "signup"
)

const (
	FlowStepTitle         FlowStep = "title"
	FlowStepBuilderMenu   FlowStep = "builder_menu"
	FlowStepKind          FlowStep = "kind"
	FlowStepQuestionText  FlowStep = "question_text"
	FlowStepQuestionMenu  FlowStep = "question_menu"
	FlowStepOptionLabel   FlowStep = "option_label"
	FlowStepHeaderImage   FlowStep = "header_image"
	FlowStepQuestionImage FlowStep = "question_image"
	FlowStepOptionImage   FlowStep = "option_image"
	FlowStepAnswer        FlowStep = "answer"
	FlowStepConfirm       FlowStep = "confirm"
	FlowStepEmail         FlowStep = "email"
	FlowStepPassword      FlowStep = "password"
)

// FlowState is everything a chat's current flow needs to survive between
// updates: the draft being built, or the form being filled and the answers
// so far, or the half-entered credentials. One state per user, JSON-encoded
// by the state repository.
type FlowState struct {
	Mode FlowMode `json:"mode"`
	Step FlowStep `json:"step"`

	Draft       FormDraft `json:"draft"`
	OptionIndex int       `json:"option_index"`

	FormID        string            `json:"form_id,omitempty"`
	Form          *FormRecord       `json:"form,omitempty"`
	QuestionIndex int               `json:"question_index"`
	Answers       map[string]string `json:"answers,omitempty"`

	Email string `json:"email,omitempty"`
}
