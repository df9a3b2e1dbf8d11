package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/osoares/promptforge/internal/models"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the available target model labels",
	RunE: func(cmd *cobra.Command, args []string) error {
		current := getTarget()

		nameStyle := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
		descStyle := lipgloss.NewStyle().Foreground(colorTextDim)
		markStyle := lipgloss.NewStyle().Foreground(colorSuccess)

		for _, target := range models.AllTargets() {
			marker := "  "
			if target == current {
				marker = markStyle.Render("● ")
			}
			fmt.Printf("%s%s  %s\n",
				marker,
				nameStyle.Render(fmt.Sprintf("%-8s", string(target))),
				descStyle.Render(target.Description()),
			)
		}
		return nil
	},
}
