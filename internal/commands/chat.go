package commands

import (
	"github.com/spf13/cobra"

	"github.com/osoares/promptforge/internal/api"
	"github.com/osoares/promptforge/internal/chat"
	"github.com/osoares/promptforge/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive prompt-architecting session",
	Long: `Start an interactive session with the prompt architect.

The conversation keeps context across turns, so you can answer
clarifying questions and iterate on the generated prompt. History
lives in memory only and is gone when the session ends.
Type 'exit', 'quit', or press Ctrl+C to end the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	modelName := getModelName()
	client := api.NewClient(api.WithModelName(modelName))
	session := chat.NewSession(getTarget())

	return tui.Run(client, session, modelName)
}
