package models

// PromptResult is the structured reply produced by the remote model for one
// assistant turn. Exactly one of OptimizedPrompt / ClarifyingQuestions is
// meaningful, gated by IsClarificationNeeded. The client does not enforce the
// mutual exclusivity locally; the response schema constrains the remote side.
type PromptResult struct {
	IsClarificationNeeded bool     `json:"isClarificationNeeded"`
	ClarifyingQuestions   []string `json:"clarifyingQuestions,omitempty"`
	OptimizedPrompt       string   `json:"optimizedPrompt,omitempty"`
	Logic                 string   `json:"logic"`
	ModelTip              string   `json:"modelTip"`
}

// NeedsClarification reports whether this result asks the user follow-up
// questions instead of delivering a prompt.
func (r *PromptResult) NeedsClarification() bool {
	return r.IsClarificationNeeded
}

// Questions returns the clarifying questions, in order. Only meaningful when
// NeedsClarification is true.
func (r *PromptResult) Questions() []string {
	return r.ClarifyingQuestions
}

// Prompt returns the architected prompt. Only meaningful when
// NeedsClarification is false.
func (r *PromptResult) Prompt() string {
	return r.OptimizedPrompt
}
