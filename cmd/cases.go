package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "List the configured process files.",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := schedulerConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(c.Cases) == 0 {
			fmt.Fprintln(out, "no cases configured")
			return nil
		}
		for i, path := range c.Cases {
			fmt.Fprintf(out, "%d. %s\n", i+1, path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(casesCmd)
}
