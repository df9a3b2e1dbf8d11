package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/osoares/promptforge/internal/api"
	"github.com/osoares/promptforge/internal/chat"
	"github.com/osoares/promptforge/internal/models"
)

// Animation tick message
type animationTickMsg time.Time

// Message types for the TUI
type (
	resultMsg struct {
		result *models.PromptResult
	}
	errMsg struct {
		err error
	}
	// copiedExpiredMsg clears the copied indicator for one message id
	copiedExpiredMsg struct {
		id string
	}
)

// Model represents the TUI state. The conversational state itself lives in
// the chat.Session; the Model owns presentation and drives the session from
// bubbletea events.
type Model struct {
	session   *chat.Session
	generator api.Generator
	modelName string

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	ready          bool
	err            error
	animationFrame int

	// Target selection overlay state
	selectingTarget bool
	targetCursor    int

	// Dimensions
	width  int
	height int
}

// NewModel creates a new chat TUI model.
func NewModel(generator api.Generator, session *chat.Session, modelName string) Model {
	ta := textarea.New()
	ta.Placeholder = "Describe what you want a prompt for..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		session:   session,
		generator: generator,
		modelName: modelName,
		textarea:  ta,
		spinner:   s,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	// The generation outcome must land no matter which overlay is open,
	// or the in-flight flag would never clear.
	switch msg := msg.(type) {
	case resultMsg:
		m.session.FinishSubmit(msg.result)
		m.updateViewport()
		m.viewport.GotoBottom()
		return m, nil

	case errMsg:
		m.err = msg.err
		m.session.FailSubmit(msg.err)
		m.updateViewport()
		m.viewport.GotoBottom()
		return m, nil
	}

	if m.selectingTarget {
		return m.updateTargetSelection(msg)
	}
	if m.session.ClearPending() {
		return m.updateClearConfirmation(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if !m.session.Generating() {
				return m, tea.Quit
			}

		case "ctrl+t":
			if !m.session.Generating() {
				m.openTargetSelector()
			}
			return m, nil

		case "ctrl+l":
			if !m.session.Generating() {
				m.session.RequestClear()
			}
			return m, nil

		case "ctrl+y":
			return m.copyLatestPrompt()

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			switch input {
			case "exit", "quit", "/exit", "/quit":
				return m, tea.Quit
			case "/target", "/model":
				m.textarea.Reset()
				m.openTargetSelector()
				return m, nil
			case "/clear":
				m.textarea.Reset()
				m.session.RequestClear()
				return m, nil
			}

			req, ok := m.session.BeginSubmit(input)
			if ok {
				m.err = nil
				m.animationFrame = 0
				m.textarea.Reset()
				m.updateViewport()
				m.viewport.GotoBottom()

				return m, tea.Batch(
					m.generate(req),
					m.spinner.Tick,
					animationTick(),
				)
			}
		}

	case copiedExpiredMsg:
		m.session.ExpireCopied(msg.id)
		m.updateViewport()

	case spinner.TickMsg:
		if m.session.Generating() {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		if m.session.Generating() {
			m.animationFrame++
			cmds = append(cmds, animationTick())
		}
	}

	// Only pass KeyMsg to the textarea to prevent escape sequence leaks
	if !m.session.Generating() {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// resize recomputes the layout for new terminal dimensions. Called from every
// update path so an overlay being open cannot leave the layout stale.
func (m *Model) resize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	headerHeight := 4
	inputHeight := 6
	statusHeight := 1
	padding := 2

	vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
	if vpHeight < 5 {
		vpHeight = 5
	}

	contentWidth := m.width - 4

	if !m.ready {
		m.viewport = viewport.New(contentWidth, vpHeight)
		m.textarea.SetWidth(contentWidth - 4)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = vpHeight
		m.textarea.SetWidth(contentWidth - 4)
	}
	m.updateViewport()
}

// generate creates a command that runs the generation call off the event
// loop. The session was already transitioned by BeginSubmit.
func (m Model) generate(req *chat.SubmitRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := m.generator.Generate(context.Background(), req.Text, req.Target, req.History)
		if err != nil {
			return errMsg{err: err}
		}
		return resultMsg{result: result}
	}
}

// copyLatestPrompt copies the most recent architected prompt to the system
// clipboard and flashes the copied indicator for that message.
func (m Model) copyLatestPrompt() (tea.Model, tea.Cmd) {
	msgs := m.session.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		result := msgs[i].Result
		if result == nil || result.NeedsClarification() {
			continue
		}
		id := msgs[i].ID
		if err := clipboard.WriteAll(result.Prompt()); err != nil {
			m.err = err
			return m, nil
		}
		m.session.MarkCopied(id)
		m.updateViewport()
		return m, tea.Tick(chat.CopiedDisplayWindow, func(time.Time) tea.Msg {
			return copiedExpiredMsg{id: id}
		})
	}
	return m, nil
}

// updateClearConfirmation handles keys while the clear confirmation is armed.
func (m Model) updateClearConfirmation(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "y", "Y", "enter":
			m.session.ConfirmClear()
			m.updateViewport()
		case "n", "N", "esc":
			m.session.CancelClear()
		}
	}
	return m, nil
}

// openTargetSelector opens the target-model overlay with the cursor on the
// current selection.
func (m *Model) openTargetSelector() {
	m.selectingTarget = true
	m.targetCursor = 0
	for i, target := range models.AllTargets() {
		if target == m.session.Target() {
			m.targetCursor = i
			break
		}
	}
}

// Run starts the chat TUI.
func Run(generator api.Generator, session *chat.Session, modelName string) error {
	m := NewModel(generator, session, modelName)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
