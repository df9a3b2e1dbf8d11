// Package chat owns the conversational state machine: the ordered message
// list, the in-flight flag, the selected target label, and the small pieces
// of UI state (pending clear confirmation, copied-message indicator) that
// must survive re-renders.
package chat

import (
	"strings"
	"time"

	"github.com/osoares/promptforge/internal/models"
)

// Fixed acknowledgment strings for assistant turns.
const (
	AckPromptReady   = "I've architected a world-class prompt based on your requirements."
	AckClarification = "I need a bit more information to architect the perfect prompt. Could you help me with the following?"
	AckFailure       = "Sorry, something went wrong while architecting your prompt. Please try again."
)

// CopiedDisplayWindow is how long the "copied" indicator stays visible.
const CopiedDisplayWindow = 2 * time.Second

// SubmitRequest carries everything the generation client needs for one turn.
// History is the snapshot taken before the user message was appended: the new
// text travels as the current turn, not as part of the history.
type SubmitRequest struct {
	MessageID string
	Text      string
	Target    models.TargetModel
	History   []models.Turn
}

// Session is the conversation controller. It is not safe for concurrent use;
// all transitions happen on the UI event loop.
type Session struct {
	messages     []models.Message
	target       models.TargetModel
	generating   bool
	pendingClear bool
	copiedID     string
}

// NewSession creates an empty session with the given target label.
func NewSession(target models.TargetModel) *Session {
	return &Session{target: target}
}

// Messages returns the ordered message list.
func (s *Session) Messages() []models.Message {
	return s.messages
}

// Generating reports whether a request is in flight.
func (s *Session) Generating() bool {
	return s.generating
}

// Target returns the currently selected target label.
func (s *Session) Target() models.TargetModel {
	return s.target
}

// SetTarget replaces the selected target label. Takes effect on the next
// submit.
func (s *Session) SetTarget(target models.TargetModel) {
	s.target = target
}

// BeginSubmit starts a turn. Blank input (after trimming) and submits while a
// request is in flight are silent no-ops returning false: no message is
// appended and no request is produced. Otherwise the user message is appended,
// the in-flight flag is set, and the returned request holds the trimmed text,
// the current target, and the pre-append history snapshot.
func (s *Session) BeginSubmit(text string) (*SubmitRequest, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || s.generating {
		return nil, false
	}

	// Snapshot before appending: the new message is the current turn.
	history := models.ProjectTurns(s.messages)

	msg := models.NewUserMessage(trimmed)
	s.messages = append(s.messages, msg)
	s.generating = true

	return &SubmitRequest{
		MessageID: msg.ID,
		Text:      trimmed,
		Target:    s.target,
		History:   history,
	}, true
}

// FinishSubmit completes the in-flight turn with a successful result. Exactly
// one assistant message is appended; its content is chosen solely by
// IsClarificationNeeded. The in-flight flag is always cleared.
func (s *Session) FinishSubmit(result *models.PromptResult) models.Message {
	content := AckPromptReady
	if result != nil && result.IsClarificationNeeded {
		content = AckClarification
	}
	msg := models.NewAssistantMessage(content, result)
	s.messages = append(s.messages, msg)
	s.generating = false
	return msg
}

// FailSubmit completes the in-flight turn with a failure. All failure
// categories collapse into one fixed assistant message with no result. The
// in-flight flag is always cleared.
func (s *Session) FailSubmit(err error) models.Message {
	_ = err // shown only in the status line, never in the transcript
	msg := models.NewAssistantMessage(AckFailure, nil)
	s.messages = append(s.messages, msg)
	s.generating = false
	return msg
}

// RequestClear arms the two-step history clearing. The list is untouched
// until ConfirmClear.
func (s *Session) RequestClear() {
	if len(s.messages) == 0 {
		return
	}
	s.pendingClear = true
}

// ClearPending reports whether a clear confirmation is awaited.
func (s *Session) ClearPending() bool {
	return s.pendingClear
}

// ConfirmClear empties the message list unconditionally. No undo.
func (s *Session) ConfirmClear() {
	if !s.pendingClear {
		return
	}
	s.messages = nil
	s.pendingClear = false
	s.copiedID = ""
}

// CancelClear dismisses the pending confirmation, leaving the list unchanged.
func (s *Session) CancelClear() {
	s.pendingClear = false
}

// MarkCopied records id as the message whose text was just copied. A newer
// copy simply overwrites the tracked id.
func (s *Session) MarkCopied(id string) {
	s.copiedID = id
}

// ExpireCopied clears the indicator, but only if id is still the current one:
// an expiry racing a newer copy must not reset the newer indicator.
func (s *Session) ExpireCopied(id string) {
	if s.copiedID == id {
		s.copiedID = ""
	}
}

// CopiedID returns the id of the message currently flagged as copied, or "".
func (s *Session) CopiedID() string {
	return s.copiedID
}
