package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/osoares/promptforge/internal/models"
)

// updateTargetSelection handles updates while the target overlay is open.
func (m Model) updateTargetSelection(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)

	case tea.KeyMsg:
		targets := models.AllTargets()

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			m.selectingTarget = false

		case "up", "k":
			m.targetCursor--
			if m.targetCursor < 0 {
				m.targetCursor = len(targets) - 1
			}

		case "down", "j":
			m.targetCursor++
			if m.targetCursor >= len(targets) {
				m.targetCursor = 0
			}

		case "enter":
			if m.targetCursor >= 0 && m.targetCursor < len(targets) {
				m.session.SetTarget(targets[m.targetCursor])
			}
			m.selectingTarget = false
		}
	}

	return m, nil
}

// renderTargetSelector renders the target-model selection overlay.
func (m Model) renderTargetSelector() string {
	width := m.width - 8
	if width < 40 {
		width = 40
	}

	var content strings.Builder

	title := overlayTitleStyle.Render("◎ Target model")
	title += hintStyle.Render(fmt.Sprintf("  (current: %s)", m.session.Target().DisplayName()))
	content.WriteString(title)
	content.WriteString("\n\n")

	for i, target := range models.AllTargets() {
		cursor := "  "
		nameStyle := menuItemStyle
		if i == m.targetCursor {
			cursor = menuCursorStyle.Render("▸ ")
			nameStyle = menuSelectedStyle
		}

		marker := "  "
		if target == m.session.Target() {
			marker = copiedStyle.Render("● ")
		}

		line := fmt.Sprintf("%s%s%s", cursor, marker, nameStyle.Render(target.DisplayName()))
		line += hintStyle.Render(" - " + target.Description())
		content.WriteString(line)
		content.WriteString("\n")
	}

	content.WriteString("\n")

	shortcuts := []string{
		statusKeyStyle.Render("↑↓") + statusDescStyle.Render(" Navigate"),
		statusKeyStyle.Render("Enter") + statusDescStyle.Render(" Select"),
		statusKeyStyle.Render("Esc") + statusDescStyle.Render(" Cancel"),
	}
	content.WriteString(strings.Join(shortcuts, "  │  "))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2).
		Width(width)

	return boxStyle.Render(content.String())
}
