package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/osoares/promptforge/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		keyStyle := lipgloss.NewStyle().Foreground(colorPrimary)
		dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

		fmt.Println(dimStyle.Render("Config file: " + path))
		fmt.Println()
		fmt.Printf("%s %s\n", keyStyle.Render("default_target:   "), cfg.DefaultTarget)
		fmt.Printf("%s %s\n", keyStyle.Render("markdown_style:   "), cfg.MarkdownStyle)
		fmt.Printf("%s %t\n", keyStyle.Render("copy_to_clipboard:"), cfg.CopyToClipboard)
		fmt.Printf("%s %t\n", keyStyle.Render("verbose:          "), cfg.Verbose)
		fmt.Println()

		if config.APIKey() != "" {
			fmt.Println(lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ " + config.APIKeyEnv + " is set"))
		} else {
			fmt.Println(lipgloss.NewStyle().Foreground(colorError).Render("✗ " + config.APIKeyEnv + " is not set"))
		}
		return nil
	},
}
