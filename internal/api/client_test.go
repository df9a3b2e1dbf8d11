package api

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"

	apierrors "github.com/osoares/promptforge/internal/errors"
	"github.com/osoares/promptforge/internal/models"
)

func TestNewClientDefaults(t *testing.T) {
	client := NewClient()
	if client.modelName != DefaultModelName {
		t.Errorf("model name = %q, want %q", client.modelName, DefaultModelName)
	}

	client = NewClient(WithModelName("gemini-2.5-pro"))
	if client.modelName != "gemini-2.5-pro" {
		t.Errorf("model name = %q", client.modelName)
	}

	// Empty override keeps the default.
	client = NewClient(WithModelName(""))
	if client.modelName != DefaultModelName {
		t.Errorf("empty model override should keep default, got %q", client.modelName)
	}
}

func TestGenerateEmptyText(t *testing.T) {
	client := NewClient()
	if _, err := client.Generate(context.Background(), "   ", models.DefaultTarget, nil); err == nil {
		t.Error("expected error for empty text")
	}
}

func TestGenerateMissingAPIKey(t *testing.T) {
	client := NewClient(WithAPIKeyFunc(func() string { return "" }))

	_, err := client.Generate(context.Background(), "a goal", models.DefaultTarget, nil)
	if !errors.Is(err, apierrors.ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{
			name: "single part",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []*genai.Part{{Text: `{"a":1}`}}},
				}},
			},
			want: `{"a":1}`,
		},
		{
			name: "thought parts skipped",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []*genai.Part{
						{Text: "pondering", Thought: true},
						{Text: "payload"},
					}},
				}},
			},
			want: "payload",
		},
		{
			name: "nil content",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			want: "",
		},
		{
			name: "no candidates",
			resp: &genai.GenerateContentResponse{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := responseText(tt.resp); got != tt.want {
				t.Errorf("responseText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMockClientRecordsCalls(t *testing.T) {
	mock := &MockClient{GenerateVal: &models.PromptResult{Logic: "l", ModelTip: "t"}}

	history := []models.Turn{{Role: models.RoleUser, Text: "hi"}}
	result, err := mock.Generate(context.Background(), "goal", models.TargetGemini, history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != mock.GenerateVal {
		t.Error("mock should return the configured value")
	}
	if mock.GenerateCalled != 1 {
		t.Errorf("calls = %d", mock.GenerateCalled)
	}
	if mock.LastText != "goal" || mock.LastTarget != models.TargetGemini || len(mock.LastHistory) != 1 {
		t.Error("mock did not record the call arguments")
	}
}
