package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newSitemapCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sitemap",
		Short: "Print sitemap.xml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.application(cmd.Context())
			if err != nil {
				return err
			}
			data, err := a.Site.Sitemap(a.Catalog, time.Now())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newRobotsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "robots",
		Short: "Print robots.txt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.application(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), a.Site.Robots())
			return nil
		},
	}
}

func newIndexNowCmd(opts *cliOptions) *cobra.Command {
	var host string
	cmd := &cobra.Command{
		Use:   "indexnow <url>...",
		Short: "Submit changed URLs to IndexNow",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.application(cmd.Context())
			if err != nil {
				return err
			}
			if host == "" {
				host = a.Config.SiteHost()
			}
			if strings.TrimSpace(host) == "" {
				return fmt.Errorf("--host is required when SITE_URL has no host")
			}

			result := a.IndexNow.Submit(cmd.Context(), host, args)
			if opts.jsonOutput {
				if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else if result.OK {
				fmt.Fprintf(cmd.OutOrStdout(), "submitted %d url(s), status %d\n", len(args), result.Status)
			}
			if !result.OK {
				msg := result.Error
				if msg == "" {
					msg = fmt.Sprintf("indexnow returned status %d", result.Status)
				}
				return exitFailure(msg)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "host to submit for (default: host of SITE_URL)")
	return cmd
}
