package api

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	apierrors "github.com/osoares/promptforge/internal/errors"
	"github.com/osoares/promptforge/internal/models"
)

// ParsePromptResult parses the remote payload as a PromptResult. The required
// fields are pre-checked with gjson so a malformed payload fails with the
// distinguishable ErrInvalidResponse instead of a half-filled struct. No
// mutual-exclusivity check is applied between optimizedPrompt and
// clarifyingQuestions: the schema constrains the remote side.
func ParsePromptResult(payload string) (*models.PromptResult, error) {
	if !gjson.Valid(payload) {
		return nil, fmt.Errorf("%w: payload is not valid JSON", apierrors.ErrInvalidResponse)
	}

	root := gjson.Parse(payload)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: payload is not a JSON object", apierrors.ErrInvalidResponse)
	}

	needed := root.Get(fieldClarificationNeeded)
	if !needed.Exists() || !needed.IsBool() {
		return nil, fmt.Errorf("%w: missing boolean %q", apierrors.ErrInvalidResponse, fieldClarificationNeeded)
	}

	for _, field := range []string{fieldLogic, fieldModelTip} {
		value := root.Get(field)
		if !value.Exists() || value.Type != gjson.String {
			return nil, fmt.Errorf("%w: missing string %q", apierrors.ErrInvalidResponse, field)
		}
	}

	if questions := root.Get(fieldQuestions); questions.Exists() && !questions.IsArray() {
		return nil, fmt.Errorf("%w: %q is not an array", apierrors.ErrInvalidResponse, fieldQuestions)
	}

	var result models.PromptResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", apierrors.ErrInvalidResponse, err)
	}

	return &result, nil
}
