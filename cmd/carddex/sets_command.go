package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"carddex/internal/sets"
)

func newSetsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "sets",
		Short:       "List the configured card sets",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			library := sets.Default()
			rows := make([][]string, 0, library.Len())
			for _, set := range library.All() {
				packs := make([]string, 0, len(set.Packs))
				for _, pack := range set.Packs {
					packs = append(packs, pack.Slug)
				}
				rows = append(rows, []string{
					set.Name,
					set.ExpansionID,
					set.SetInitials(),
					strconv.Itoa(len(set.Packs)),
					strings.Join(packs, ", "),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Set", "Expansion", "Initials", "Packs", "Pack Slugs"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
				isTerminal(out),
			))
			return nil
		},
	}
}
