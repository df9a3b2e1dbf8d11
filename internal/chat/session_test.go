package chat

import (
	"errors"
	"strings"
	"testing"

	"github.com/osoares/promptforge/internal/models"
)

func TestBeginSubmitBlankInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tabs and newlines", "\t\n  \r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(models.DefaultTarget)

			req, ok := s.BeginSubmit(tt.input)
			if ok {
				t.Error("expected BeginSubmit to refuse blank input")
			}
			if req != nil {
				t.Error("expected nil request for blank input")
			}
			if len(s.Messages()) != 0 {
				t.Errorf("expected no messages, got %d", len(s.Messages()))
			}
			if s.Generating() {
				t.Error("blank submit must not set the in-flight flag")
			}
		})
	}
}

func TestBeginSubmitWhileGenerating(t *testing.T) {
	s := NewSession(models.DefaultTarget)

	if _, ok := s.BeginSubmit("first goal"); !ok {
		t.Fatal("first submit should start")
	}

	req, ok := s.BeginSubmit("second goal")
	if ok || req != nil {
		t.Error("submit while in flight must be a silent no-op")
	}
	if got := len(s.Messages()); got != 1 {
		t.Errorf("expected exactly 1 message, got %d", got)
	}
}

func TestBeginSubmitAppendsUserMessage(t *testing.T) {
	s := NewSession(models.TargetClaude)

	req, ok := s.BeginSubmit("  Write a haiku about Go  ")
	if !ok {
		t.Fatal("submit should start")
	}

	msgs := s.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Role != models.RoleUser {
		t.Errorf("expected user role, got %q", msgs[0].Role)
	}
	if msgs[0].Content != "Write a haiku about Go" {
		t.Errorf("expected trimmed content, got %q", msgs[0].Content)
	}
	if msgs[0].ID == "" {
		t.Error("message must get a unique id")
	}
	if msgs[0].Timestamp.IsZero() {
		t.Error("message must get a timestamp")
	}
	if req.Text != "Write a haiku about Go" {
		t.Errorf("request text = %q", req.Text)
	}
	if req.Target != models.TargetClaude {
		t.Errorf("request target = %q", req.Target)
	}
	if !s.Generating() {
		t.Error("in-flight flag must be set")
	}
}

// The history snapshot is taken before the new user message is appended: the
// new text travels as the current turn and is deliberately absent from the
// history. This preserves the snapshot-timing behavior of the original
// client; changing it would alter what the remote model sees.
func TestBeginSubmitHistoryExcludesCurrentTurn(t *testing.T) {
	s := NewSession(models.DefaultTarget)

	req, _ := s.BeginSubmit("first")
	if len(req.History) != 0 {
		t.Fatalf("first turn must see empty history, got %d turns", len(req.History))
	}
	s.FinishSubmit(&models.PromptResult{Logic: "l", ModelTip: "t"})

	req, _ = s.BeginSubmit("second")
	if len(req.History) != 2 {
		t.Fatalf("second turn must see 2 prior turns, got %d", len(req.History))
	}
	if req.History[0].Role != models.RoleUser || req.History[0].Text != "first" {
		t.Errorf("unexpected first history turn: %+v", req.History[0])
	}
	if req.History[1].Role != models.RoleAssistant {
		t.Errorf("unexpected second history turn: %+v", req.History[1])
	}
	for _, turn := range req.History {
		if turn.Text == "second" {
			t.Error("current turn leaked into the history snapshot")
		}
	}
}

func TestFinishSubmitAcknowledgment(t *testing.T) {
	tests := []struct {
		name    string
		result  *models.PromptResult
		wantAck string
	}{
		{
			name:    "prompt ready",
			result:  &models.PromptResult{OptimizedPrompt: "do it", Logic: "l", ModelTip: "t"},
			wantAck: AckPromptReady,
		},
		{
			name: "clarification needed",
			result: &models.PromptResult{
				IsClarificationNeeded: true,
				ClarifyingQuestions:   []string{"Who is the audience?", "What tone?"},
				Logic:                 "l",
				ModelTip:              "t",
			},
			wantAck: AckClarification,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(models.DefaultTarget)
			s.BeginSubmit("goal")

			msg := s.FinishSubmit(tt.result)

			msgs := s.Messages()
			if len(msgs) != 2 {
				t.Fatalf("expected exactly 2 messages, got %d", len(msgs))
			}
			if msg.Role != models.RoleAssistant {
				t.Errorf("expected assistant role, got %q", msg.Role)
			}
			if msg.Content != tt.wantAck {
				t.Errorf("ack = %q, want %q", msg.Content, tt.wantAck)
			}
			if msg.Result != tt.result {
				t.Error("result must be attached to the assistant message")
			}
			if s.Generating() {
				t.Error("in-flight flag must be cleared")
			}
		})
	}
}

func TestFailSubmit(t *testing.T) {
	s := NewSession(models.DefaultTarget)
	s.BeginSubmit("goal")

	msg := s.FailSubmit(errors.New("network down"))

	msgs := s.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected exactly 2 messages, got %d", len(msgs))
	}
	if msg.Content != AckFailure {
		t.Errorf("failure ack = %q", msg.Content)
	}
	if msg.Result != nil {
		t.Error("failed turn must not carry a result")
	}
	if s.Generating() {
		t.Error("in-flight flag must be cleared after failure")
	}

	// The conversation stays usable after a failure.
	if _, ok := s.BeginSubmit("retry"); !ok {
		t.Error("session must accept new submits after a failure")
	}
}

func TestClearRequiresConfirmation(t *testing.T) {
	s := NewSession(models.DefaultTarget)
	s.BeginSubmit("goal")
	s.FinishSubmit(&models.PromptResult{Logic: "l", ModelTip: "t"})

	s.RequestClear()
	if !s.ClearPending() {
		t.Fatal("clear should be pending")
	}
	if len(s.Messages()) != 2 {
		t.Error("requesting a clear must not touch the list")
	}

	s.CancelClear()
	if s.ClearPending() {
		t.Error("cancel should disarm the pending clear")
	}
	if len(s.Messages()) != 2 {
		t.Error("cancelled clear must leave the list unchanged")
	}

	s.RequestClear()
	s.ConfirmClear()
	if len(s.Messages()) != 0 {
		t.Error("confirmed clear must empty the list")
	}
	if s.ClearPending() {
		t.Error("confirmation should disarm the pending clear")
	}
}

func TestConfirmClearWithoutRequestIsNoop(t *testing.T) {
	s := NewSession(models.DefaultTarget)
	s.BeginSubmit("goal")
	s.FinishSubmit(&models.PromptResult{OptimizedPrompt: "p", Logic: "l", ModelTip: "t"})

	s.ConfirmClear()
	if len(s.Messages()) != 2 {
		t.Error("confirm without a pending request must not clear")
	}
}

func TestRequestClearOnEmptySession(t *testing.T) {
	s := NewSession(models.DefaultTarget)
	s.RequestClear()
	if s.ClearPending() {
		t.Error("nothing to clear, confirmation should not arm")
	}
}

func TestSetTargetAppliesToNextSubmit(t *testing.T) {
	s := NewSession(models.TargetGeneral)

	s.SetTarget(models.TargetGPT4)
	req, _ := s.BeginSubmit("goal")
	if req.Target != models.TargetGPT4 {
		t.Errorf("request target = %q, want GPT4", req.Target)
	}

	// Changing the target mid-flight affects only later submits.
	s.SetTarget(models.TargetGemini)
	if req.Target != models.TargetGPT4 {
		t.Error("in-flight request must keep its captured target")
	}
}

func TestCopiedIndicator(t *testing.T) {
	s := NewSession(models.DefaultTarget)

	s.MarkCopied("msg-1")
	if s.CopiedID() != "msg-1" {
		t.Errorf("copied id = %q", s.CopiedID())
	}

	s.ExpireCopied("msg-1")
	if s.CopiedID() != "" {
		t.Error("expiry should clear the current indicator")
	}
}

func TestCopiedIndicatorSuperseded(t *testing.T) {
	s := NewSession(models.DefaultTarget)

	s.MarkCopied("msg-1")
	s.MarkCopied("msg-2")

	// The timer for the first copy fires after the second copy took over:
	// it must not reset the newer indicator.
	s.ExpireCopied("msg-1")
	if s.CopiedID() != "msg-2" {
		t.Errorf("stale expiry reset the indicator, copied id = %q", s.CopiedID())
	}

	s.ExpireCopied("msg-2")
	if s.CopiedID() != "" {
		t.Error("current expiry should clear the indicator")
	}
}

func TestMessageIDsUnique(t *testing.T) {
	s := NewSession(models.DefaultTarget)
	seen := make(map[string]bool)

	for i := 0; i < 10; i++ {
		req, ok := s.BeginSubmit(strings.Repeat("x", i+1))
		if !ok {
			t.Fatalf("submit %d refused", i)
		}
		if seen[req.MessageID] {
			t.Fatalf("duplicate message id %q", req.MessageID)
		}
		seen[req.MessageID] = true
		s.FinishSubmit(&models.PromptResult{OptimizedPrompt: "p", Logic: "l", ModelTip: "t"})
	}

	for _, msg := range s.Messages() {
		if msg.ID == "" {
			t.Error("empty message id")
		}
	}
}
