package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecentCmd(opts *cliOptions) *cobra.Command {
	var clearAll bool
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show or clear the recently used tools of --client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.application(cmd.Context())
			if err != nil {
				return err
			}
			if clearAll {
				if err := a.Recent.Clear(cmd.Context(), opts.clientID); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "cleared")
				return nil
			}

			ids, err := a.Recent.List(cmd.Context(), opts.clientID)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), ids)
			}
			for _, id := range ids {
				if t, ok := a.Catalog.Tool(id); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t.ID, t.Title)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&clearAll, "clear", false, "forget every recent tool")
	return cmd
}
