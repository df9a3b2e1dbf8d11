package api

import "google.golang.org/genai"

// Response field names, shared by the schema and the parser.
const (
	fieldClarificationNeeded = "isClarificationNeeded"
	fieldQuestions           = "clarifyingQuestions"
	fieldOptimizedPrompt     = "optimizedPrompt"
	fieldLogic               = "logic"
	fieldModelTip            = "modelTip"
)

// ResponseSchema is the structured-output constraint imposed on the remote
// model so its reply can be parsed as data rather than free text.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			fieldClarificationNeeded: {
				Type:        genai.TypeBoolean,
				Description: "True when clarifying questions are required before a prompt can be architected.",
			},
			fieldQuestions: {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Ordered clarifying questions. Present when clarification is needed.",
			},
			fieldOptimizedPrompt: {
				Type:        genai.TypeString,
				Description: "The architected prompt. Present when no clarification is needed.",
			},
			fieldLogic: {
				Type:        genai.TypeString,
				Description: "Rationale for the prompt design decisions.",
			},
			fieldModelTip: {
				Type:        genai.TypeString,
				Description: "One practical tip for running the prompt on the target model.",
			},
		},
		Required: []string{fieldClarificationNeeded, fieldLogic, fieldModelTip},
	}
}
