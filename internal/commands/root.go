// Package commands provides the CLI commands for promptforge.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/osoares/promptforge/internal/config"
	"github.com/osoares/promptforge/internal/logger"
	"github.com/osoares/promptforge/internal/models"
)

var (
	// Global flags
	targetFlag  string
	modelFlag   string
	outputFlag  string
	fileFlag    string
	copyFlag    bool
	verboseFlag bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "promptforge [goal]",
	Short: "Architect world-class LLM prompts from plain-language goals",
	Long: `promptforge turns a plain-language goal into an engineered prompt
optimized for your target model, using the Gemini API as the prompt
architect. Requires GEMINI_API_KEY in the environment or a .env file.

Examples:
  promptforge chat                       Start an interactive session
  promptforge "Summarize legal contracts"
  promptforge -t claude "Write release notes from a changelog"
  promptforge -f goal.md -o prompt.md    Read goal from file, save prompt
  cat goal.md | promptforge              Read goal from stdin`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadDotenv()
		if verboseFlag {
			logger.SetVerbose()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("promptforge %s (built %s)\n", Version, BuildTime)
			return nil
		}

		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data))
		}

		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data))
		}

		if len(args) > 0 {
			return runQuery(args[0])
		}

		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&targetFlag, "target", "t", "", "Target model label (general, gpt4, claude, gemini)")
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Gemini model to use (e.g. gemini-2.5-flash)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save the architected prompt to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read the goal from file")
	rootCmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the architected prompt to the clipboard")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(configCmd)
}

// getTarget resolves the target label from flag or config.
func getTarget() models.TargetModel {
	if targetFlag != "" {
		if target, ok := models.TargetFromName(targetFlag); ok {
			return target
		}
		fmt.Fprintf(os.Stderr, "Warning: unknown target %q, using %s\n", targetFlag, models.DefaultTarget)
		return models.DefaultTarget
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return models.DefaultTarget
	}
	return cfg.Target()
}
