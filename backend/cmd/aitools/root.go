package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aitools/backend/internal/app"
	"aitools/backend/pkg/config"
	"aitools/backend/pkg/logger"
)

type cliOptions struct {
	jsonOutput bool
	verbose    bool
	clientID   string
	logger     *zap.Logger

	// build constructs the application on first use
	build func(ctx context.Context, log *zap.Logger) (*app.App, error)
	app   *app.App
}

func defaultOptions() *cliOptions {
	return &cliOptions{
		clientID: "cli",
		logger:   zap.NewNop(),
		build:    buildFromEnv,
	}
}

// execute runs one command line. The app is closed afterwards whether or not the
// command failed; cobra skips post-run hooks on error.
func execute(ctx context.Context, opts *cliOptions, root *cobra.Command) error {
	defer opts.close()
	return root.ExecuteContext(ctx)
}

func newRootCommandWith(opts *cliOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "aitools",
		Short:         "Browse the AI tools catalog and run generation actions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if opts.verbose {
				l, err := logger.New("development")
				if err != nil {
					return err
				}
				opts.logger = l
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output JSON")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")
	root.PersistentFlags().StringVar(&opts.clientID, "client", opts.clientID, "client id for recently used tools")

	root.AddCommand(
		newToolsCmd(opts),
		newCatalogCmd(opts),
		newActionsCmd(opts),
		newRunCmd(opts),
		newGenerateCmd(opts),
		newImageCmd(opts),
		newChatCmd(opts),
		newSitemapCmd(opts),
		newRobotsCmd(opts),
		newRecentCmd(opts),
		newIndexNowCmd(opts),
	)
	return root
}

// application builds the app once per invocation
func (o *cliOptions) application(ctx context.Context) (*app.App, error) {
	if o.app != nil {
		return o.app, nil
	}
	a, err := o.build(ctx, o.logger)
	if err != nil {
		return nil, err
	}
	o.app = a
	return a, nil
}

func (o *cliOptions) close() {
	if o.app != nil {
		if err := o.app.Close(); err != nil {
			o.logger.Warn("Failed to close application", zap.Error(err))
		}
		o.app = nil
	}
	_ = o.logger.Sync()
}

func buildFromEnv(ctx context.Context, log *zap.Logger) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return app.New(ctx, cfg, log)
}

func writeJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
