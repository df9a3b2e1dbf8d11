package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apierrors "github.com/osoares/promptforge/internal/errors"
	"github.com/osoares/promptforge/internal/models"
	"github.com/osoares/promptforge/internal/render"
)

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	if m.selectingTarget {
		return m.renderTargetSelector()
	}
	if m.session.ClearPending() {
		return m.renderClearConfirmation()
	}

	var sections []string
	contentWidth := m.width - 4

	// Header
	headerParts := []string{
		titleStyle.Render("⚒ promptforge"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.modelName),
		hintStyle.Render("  •  "),
		subtitleStyle.Render("target: " + m.session.Target().DisplayName()),
	}
	headerContent := lipgloss.JoinHorizontal(lipgloss.Center, headerParts...)
	header := headerStyle.Width(contentWidth).Render(headerContent)
	sections = append(sections, header)

	// Messages area
	var messagesContent string
	if len(m.session.Messages()) == 0 {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}

	messagesPanel := messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent)
	sections = append(sections, messagesPanel)

	// Input area
	var inputContent string
	if m.session.Generating() {
		inputContent = m.renderLoadingAnimation()
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}

	inputPanel := inputPanelStyle.Width(contentWidth).Render(inputContent)
	sections = append(sections, inputPanel)

	// Status bar
	sections = append(sections, m.renderStatusBar(contentWidth))

	// Error display
	if m.err != nil {
		sections = append(sections, m.formatError(m.err))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWelcome renders the welcome screen when no messages exist.
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	icon := welcomeIconStyle.Width(width).Render("⚒")
	title := welcomeTitleStyle.Width(width).Render("Welcome to promptforge")
	subtitle := welcomeStyle.Width(width).Render("Describe your goal and get a world-class prompt back")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		icon,
		"",
		title,
		"",
		subtitle,
		"",
	)

	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderLoadingAnimation renders the animated loading indicator.
func (m Model) renderLoadingAnimation() string {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}
	barChars := []string{"█", "█", "█", "█", "█", "█", "█", "█", "▓", "▒", "░"}

	frame := m.animationFrame

	spinIdx := frame % len(chars)
	spinColor := gradientColors[frame%len(gradientColors)]
	spin := lipgloss.NewStyle().Foreground(spinColor).Bold(true).Render(chars[spinIdx])

	barWidth := 20
	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		colorIdx := (i + frame) % len(gradientColors)
		charIdx := (i + frame/2) % len(barChars)

		style := lipgloss.NewStyle().Foreground(gradientColors[colorIdx])
		bar.WriteString(style.Render(barChars[charIdx]))
	}

	dots := ""
	numDots := (frame / 3) % 4
	for i := 0; i < numDots; i++ {
		dotColor := gradientColors[(frame+i)%len(gradientColors)]
		dots += lipgloss.NewStyle().Foreground(dotColor).Render("●")
	}
	for i := numDots; i < 3; i++ {
		dots += lipgloss.NewStyle().Foreground(colorTextMute).Render("○")
	}

	text := lipgloss.NewStyle().Foreground(colorText).Render(" Architecting your prompt ")

	return fmt.Sprintf("%s %s %s %s", spin, bar.String(), text, dots)
}

// renderStatusBar renders the bottom status bar with shortcuts.
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Ctrl+T", "Target"},
		{"Ctrl+Y", "Copy prompt"},
		{"Ctrl+L", "Clear"},
		{"Esc", "Quit"},
	}

	var items []string
	for _, s := range shortcuts {
		item := lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		)
		items = append(items, item)
	}

	bar := strings.Join(items, "  │  ")
	if m.session.CopiedID() != "" {
		bar += "  │  " + copiedStyle.Render("✓ Copied to clipboard")
	}
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content with styled messages.
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, msg := range m.session.Messages() {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.Role == models.RoleUser {
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Content)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("⚒ Architect")
			if m.session.CopiedID() == msg.ID {
				label += "  " + copiedStyle.Render("✓ copied")
			}
			body := renderAssistantBody(msg, bubbleWidth-4)
			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(body)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// renderAssistantBody renders the acknowledgment plus the attached result:
// numbered clarifying questions in order, or the architected prompt followed
// by its rationale and target tip.
func renderAssistantBody(msg models.Message, width int) string {
	var sb strings.Builder
	sb.WriteString(msg.Content)

	result := msg.Result
	if result == nil {
		return sb.String()
	}

	if result.NeedsClarification() {
		sb.WriteString("\n")
		for i, question := range result.Questions() {
			sb.WriteString("\n")
			sb.WriteString(questionStyle.Render(fmt.Sprintf("%d. %s", i+1, question)))
		}
		return sb.String()
	}

	sb.WriteString("\n\n")
	sb.WriteString(sectionLabelStyle.Render("Optimized prompt"))
	sb.WriteString("\n")
	rendered, err := render.MarkdownWithWidth(result.Prompt(), width)
	if err != nil {
		rendered = result.Prompt()
	}
	sb.WriteString(strings.TrimRight(rendered, "\n"))

	if result.Logic != "" {
		sb.WriteString("\n\n")
		sb.WriteString(sectionLabelStyle.Render("Why this works"))
		sb.WriteString("\n")
		sb.WriteString(result.Logic)
	}

	if result.ModelTip != "" {
		sb.WriteString("\n\n")
		sb.WriteString(sectionLabelStyle.Render("Model tip"))
		sb.WriteString("\n")
		sb.WriteString(result.ModelTip)
	}

	return sb.String()
}

// renderClearConfirmation renders the two-step clear-history confirmation.
func (m Model) renderClearConfirmation() string {
	count := len(m.session.Messages())
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		overlayTitleStyle.Render("Clear conversation?"),
		"",
		fmt.Sprintf("This removes all %d messages. There is no undo.", count),
		"",
		statusKeyStyle.Render("y")+statusDescStyle.Render(" clear")+"   "+
			statusKeyStyle.Render("n")+statusDescStyle.Render(" keep"),
	)
	box := confirmStyle.Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// formatError formats an error with a hint for display under the status bar.
func (m Model) formatError(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("⚠ Error: %v", err)))

	hint := lipgloss.NewStyle().Foreground(colorPrimary).PaddingLeft(2)
	switch {
	case apierrors.IsAuthError(err):
		sb.WriteString("\n")
		sb.WriteString(hint.Render("💡 Set GEMINI_API_KEY in your environment or .env file"))
	case apierrors.IsRateLimitError(err):
		sb.WriteString("\n")
		sb.WriteString(hint.Render("💡 Quota exhausted. Try again later"))
	case apierrors.IsInvalidResponse(err):
		sb.WriteString("\n")
		sb.WriteString(hint.Render("💡 The model returned an unexpected shape. Try again"))
	case apierrors.IsNetworkError(err):
		sb.WriteString("\n")
		sb.WriteString(hint.Render("💡 Check your internet connection"))
	case apierrors.IsTimeoutError(err):
		sb.WriteString("\n")
		sb.WriteString(hint.Render("💡 Request timed out. Try again"))
	}

	return sb.String()
}
