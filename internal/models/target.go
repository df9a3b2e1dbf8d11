package models

// TargetModel is the user-selected hint for which downstream LLM the
// generated prompt should be phrased for.
type TargetModel string

// Available target labels
const (
	TargetGeneral TargetModel = "GENERAL"
	TargetGPT4    TargetModel = "GPT4"
	TargetClaude  TargetModel = "CLAUDE"
	TargetGemini  TargetModel = "GEMINI"
)

// DefaultTarget is used when the user has not picked a label.
const DefaultTarget = TargetGeneral

// AllTargets returns every selectable target label, in display order.
func AllTargets() []TargetModel {
	return []TargetModel{TargetGeneral, TargetGPT4, TargetClaude, TargetGemini}
}

// TargetFromName resolves a label by name, case-insensitively, with a few
// common aliases. The boolean reports whether the name was recognized.
func TargetFromName(name string) (TargetModel, bool) {
	switch normalizeTargetName(name) {
	case "GENERAL", "ANY", "DEFAULT":
		return TargetGeneral, true
	case "GPT4", "GPT-4", "GPT4O", "OPENAI":
		return TargetGPT4, true
	case "CLAUDE", "ANTHROPIC":
		return TargetClaude, true
	case "GEMINI", "GOOGLE":
		return TargetGemini, true
	default:
		return DefaultTarget, false
	}
}

func normalizeTargetName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			out = append(out, r-('a'-'A'))
		case r == ' ' || r == '\t':
			// skip
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

// DisplayName returns the label as shown in the UI.
func (t TargetModel) DisplayName() string {
	switch t {
	case TargetGPT4:
		return "GPT-4"
	case TargetClaude:
		return "Claude"
	case TargetGemini:
		return "Gemini"
	default:
		return "General"
	}
}

// Description returns a one-line description for selection menus.
func (t TargetModel) Description() string {
	switch t {
	case TargetGPT4:
		return "Phrase for OpenAI GPT-4 class models"
	case TargetClaude:
		return "Phrase for Anthropic Claude, XML-tagged sections"
	case TargetGemini:
		return "Phrase for Google Gemini models"
	default:
		return "Model-agnostic phrasing"
	}
}
