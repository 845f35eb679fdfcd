package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"aitools/backend/internal/catalog"
)

func newToolsCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Browse the tool catalog",
	}
	cmd.AddCommand(
		newToolsListCmd(opts),
		newToolsSearchCmd(opts),
		newToolsShowCmd(opts),
	)
	return cmd
}

func newToolsListCmd(opts *cliOptions) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tools, optionally within one category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.application(cmd.Context())
			if err != nil {
				return err
			}
			tools := a.Catalog.Tools()
			if category != "" && category != catalog.AllCategories {
				if _, ok := a.Catalog.Category(category); !ok {
					return fmt.Errorf("unknown category %q", category)
				}
				tools = a.Catalog.ToolsIn(category)
			}
			return printTools(cmd, opts, tools)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "category id")
	return cmd
}

func newToolsSearchCmd(opts *cliOptions) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search tool titles, descriptions and keywords",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.application(cmd.Context())
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return printTools(cmd, opts, a.Catalog.Search(query, category))
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "restrict to a category id")
	return cmd
}

func newToolsShowCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <tool-id>",
		Short: "Show one tool with its FAQs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.application(cmd.Context())
			if err != nil {
				return err
			}
			tool, err := a.Catalog.MustTool(args[0])
			if err != nil {
				return err
			}
			faqs := a.FAQs.ForTool(tool.ID)
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"tool": tool,
					"faqs": faqs,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", tool.Title, tool.ID)
			fmt.Fprintf(out, "%s\n\n", tool.Description)
			fmt.Fprintf(out, "category: %s\n", tool.Category)
			fmt.Fprintf(out, "url:      %s\n", a.Site.PageURL(tool.URL))
			if len(tool.Keywords) > 0 {
				fmt.Fprintf(out, "keywords: %s\n", strings.Join(tool.Keywords, ", "))
			}
			for _, f := range tool.Features {
				fmt.Fprintf(out, "  - %s\n", f)
			}
			for _, f := range faqs {
				fmt.Fprintf(out, "\nQ: %s\nA: %s\n", f.Question, f.Answer)
			}
			return nil
		},
	}
}

func printTools(cmd *cobra.Command, opts *cliOptions, tools []catalog.Tool) error {
	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), tools)
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, t := range tools {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Category, t.Title)
	}
	return w.Flush()
}

func newCatalogCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog maintenance",
	}

	validate := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a catalog file (default: the embedded one) for duplicate ids and urls or unknown categories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cat *catalog.Catalog
				err error
			)
			if len(args) == 1 {
				cat, err = catalog.LoadFile(args[0])
			} else {
				cat, err = catalog.Default()
			}
			if err != nil {
				return err
			}
			if err := cat.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d categories, %d tools\n", len(cat.Categories()), len(cat.Tools()))
			return nil
		},
	}

	cmd.AddCommand(validate)
	return cmd
}

func newActionsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List generation actions and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.application(cmd.Context())
			if err != nil {
				return err
			}
			infos := a.Dispatcher.Actions()
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), infos)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, info := range infos {
				params := make([]string, 0, len(info.Params))
				for _, p := range info.Params {
					name := p.Name
					if !p.Required {
						name += "?"
					}
					params = append(params, name)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", info.Name, info.Mode, strings.Join(params, " "))
			}
			return w.Flush()
		},
	}
}
