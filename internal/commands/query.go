package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/osoares/promptforge/internal/api"
	"github.com/osoares/promptforge/internal/config"
	apierrors "github.com/osoares/promptforge/internal/errors"
	"github.com/osoares/promptforge/internal/logger"
	"github.com/osoares/promptforge/internal/models"
	"github.com/osoares/promptforge/internal/render"
)

var (
	sectionStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)

	promptBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Foreground(colorText).
			Padding(0, 1).
			MarginTop(1).
			MarginBottom(1)

	questionLineStyle = lipgloss.NewStyle().
				Foreground(colorText).
				PaddingLeft(2)
)

// runQuery architects a single prompt outside the TUI: one turn, empty
// history.
func runQuery(goal string) error {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return fmt.Errorf("goal cannot be empty")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warn("config unreadable, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	// Raw output mode when stdout is not a terminal
	rawOutput := !term.IsTerminal(int(os.Stdout.Fd()))

	target := getTarget()
	client := api.NewClient(api.WithModelName(getModelName()))

	var spin *spinner
	if !rawOutput {
		spin = newSpinner("Architecting your prompt")
		spin.start()
	}

	result, err := client.Generate(context.Background(), goal, target, nil)
	if err != nil {
		if !rawOutput {
			spin.stopWithError()
		}
		return formatQueryError(err)
	}
	if !rawOutput {
		spin.stopWithSuccess("Prompt architected")
	}

	if result.NeedsClarification() {
		return printClarification(result, rawOutput)
	}
	return printPrompt(result, target, cfg, rawOutput)
}

// printClarification prints the clarifying questions, numbered, in order.
func printClarification(result *models.PromptResult, rawOutput bool) error {
	if rawOutput {
		for i, question := range result.Questions() {
			fmt.Printf("%d. %s\n", i+1, question)
		}
		return nil
	}

	fmt.Fprintln(os.Stderr)
	fmt.Println(sectionStyle.Render("More information needed"))
	for i, question := range result.Questions() {
		fmt.Println(questionLineStyle.Render(fmt.Sprintf("%d. %s", i+1, question)))
	}
	fmt.Fprintln(os.Stderr)
	hint := lipgloss.NewStyle().Foreground(colorTextDim).Render(
		"Answer these in a follow-up, or use 'promptforge chat' to continue the conversation.")
	fmt.Fprintln(os.Stderr, hint)
	return nil
}

// printPrompt prints the architected prompt plus rationale and tip, honoring
// the output and clipboard flags.
func printPrompt(result *models.PromptResult, target models.TargetModel, cfg config.Config, rawOutput bool) error {
	text := result.Prompt()

	if rawOutput {
		if outputFlag != "" {
			return os.WriteFile(outputFlag, []byte(text), 0o644)
		}
		fmt.Print(text)
		return nil
	}

	fmt.Fprintln(os.Stderr)

	if copyFlag || cfg.CopyToClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			warn := lipgloss.NewStyle().Foreground(colorError).Render(
				fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err))
			fmt.Fprintln(os.Stderr, warn)
		} else {
			ok := lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard")
			fmt.Fprintln(os.Stderr, ok)
		}
	}

	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		saved := lipgloss.NewStyle().Foreground(colorSuccess).Render(
			fmt.Sprintf("✓ Prompt saved to %s", outputFlag))
		fmt.Fprintln(os.Stderr, saved)
		return nil
	}

	width := terminalWidth()

	fmt.Println(sectionStyle.Render(fmt.Sprintf("Optimized prompt (%s)", target.DisplayName())))
	rendered, err := render.Markdown(text, render.OptionsFromStyle(cfg.MarkdownStyle).WithWidth(width-6))
	if err != nil {
		rendered = text
	}
	fmt.Println(promptBoxStyle.Width(width - 4).Render(strings.TrimRight(rendered, "\n")))

	if result.Logic != "" {
		fmt.Println(sectionStyle.Render("Why this works"))
		fmt.Println(questionLineStyle.Render(result.Logic))
		fmt.Println()
	}

	if result.ModelTip != "" {
		fmt.Println(sectionStyle.Render("Model tip"))
		fmt.Println(questionLineStyle.Render(result.ModelTip))
	}

	return nil
}

// formatQueryError wraps err with a user-facing hint.
func formatQueryError(err error) error {
	switch {
	case apierrors.IsAuthError(err):
		return fmt.Errorf("%w\nSet GEMINI_API_KEY in your environment or a .env file", err)
	case apierrors.IsRateLimitError(err):
		return fmt.Errorf("%w\nQuota exhausted, try again later", err)
	case apierrors.IsInvalidResponse(err):
		return fmt.Errorf("%w\nThe model returned an unexpected shape, try again", err)
	default:
		return err
	}
}

// getModelName resolves the Gemini model name from the flag.
func getModelName() string {
	if modelFlag != "" {
		return modelFlag
	}
	return api.DefaultModelName
}

// terminalWidth returns a clamped stdout width for formatting.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	if width < 40 {
		return 40
	}
	if width > 120 {
		return 120
	}
	return width
}
