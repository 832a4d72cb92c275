package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tuxtrain/tuxtrain/internal/trainer"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the trainer with plain line-oriented output",
	Long: `Run the same level loop without the interactive interface: levels are
printed to stdout and answers read line by line from stdin. Suited to dumb
terminals and scripted sessions.`,
	Example: `
# Plain mode
tuxtrain run

# Scripted session
printf 'pwd\nls\nexit\n' | tuxtrain run
  `,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, cleanup, err := setupSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		return trainer.New(sess, os.Stdin, os.Stdout).Run(cmd.Context())
	},
}
