package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"carddex/internal/desirability"
)

func newDesirabilityCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "desirability <old-database> <new-database>",
		Short: "Carry desirability scores from an old database into a new one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			summary, err := desirability.Merge(args[0], args[1], outputPath, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Updated %d of %d cards\n", summary.Updated, summary.Total)
			if len(summary.Missing) > 0 {
				rows := make([][]string, 0, len(summary.Missing))
				for _, missing := range summary.Missing {
					rows = append(rows, []string{missing.Key, missing.Name, strconv.Itoa(missing.Desirability)})
				}
				fmt.Fprintln(out, "Scored cards missing from the new database:")
				fmt.Fprintln(out, renderTable(
					[]string{"Key", "Name", "Desirability"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight},
					isTerminal(out),
				))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the merged database here instead of overwriting the new database")
	return cmd
}
