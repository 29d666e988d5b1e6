package game

// PromptKind says what a pending prompt's answer will be used for.
type PromptKind int

const (
	PromptImport PromptKind = iota + 1
	PromptEditSetting
)

// Prompt asks the frontend for one line of text. Clicks and menu keys are
// ignored until it is resolved or cancelled.
type Prompt struct {
	Kind    PromptKind
	Title   string
	Key     string // setting name for PromptEditSetting
	Initial string
}
