package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"carddex/internal/support"
)

func newSupportCommand(ctx *commandContext) *cobra.Command {
	var supportValue string
	var keyword string
	var endpoint string

	cmd := &cobra.Command{
		Use:         "support",
		Short:       "Submit a support message to the gift endpoint",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(supportValue) == "" {
				return errors.New("--support is required")
			}
			if strings.TrimSpace(keyword) == "" {
				return errors.New("--keyword is required")
			}

			client := support.New(endpoint)
			resp, err := client.Post(cmd.Context(), supportValue, keyword)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Status: %d\n", resp.StatusCode)
			if strings.TrimSpace(resp.Body) != "" {
				fmt.Fprintln(out, resp.Body)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&supportValue, "support", "s", "", "Support value to submit")
	cmd.Flags().StringVarP(&keyword, "keyword", "k", "", "Keyword to submit")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Override the gift support endpoint")
	return cmd
}
