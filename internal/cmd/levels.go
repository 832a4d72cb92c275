package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the loaded curriculum",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, levels, err := loadConfigAndLevels(cmd)
		if err != nil {
			return err
		}

		solutions, _ := cmd.Flags().GetBool("solutions")
		for _, lvl := range levels {
			fmt.Fprintf(cmd.OutOrStdout(), "%3d. %s\n", lvl.Number, lvl.DisplayTitle())
			if solutions {
				fmt.Fprintf(cmd.OutOrStdout(), "     expected: %s\n", lvl.ExpectedCommand)
			}
		}
		return nil
	},
}

func init() {
	levelsCmd.Flags().Bool("solutions", false, "Include the expected command for each level (spoilers)")
}
