package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"aitools/backend/internal/actions"
	"aitools/backend/internal/normalize"
)

func newRunCmd(opts *cliOptions) *cobra.Command {
	var pairs []string
	cmd := &cobra.Command{
		Use:   "run <action>",
		Short: "Run a named action, e.g. run tweets -p topic=golang -p count=3",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(pairs)
			if err != nil {
				return err
			}
			a, err := opts.application(cmd.Context())
			if err != nil {
				return err
			}
			env, err := a.Dispatcher.Dispatch(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}

			// Length-oriented actions get word figures next to the text
			var original string
			switch args[0] {
			case "summarize", "expand", "simplify", "paraphrase":
				original, _ = params["text"].(string)
			}
			return printEnvelope(cmd.OutOrStdout(), opts, env, original)
		},
	}
	cmd.Flags().StringArrayVarP(&pairs, "param", "p", nil, "action parameter as key=value (repeatable)")
	return cmd
}

func newGenerateCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <tool-id> <input>",
		Short: "Run any catalog tool through its category template",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.application(cmd.Context())
			if err != nil {
				return err
			}
			toolID := args[0]
			env, err := a.Dispatcher.Generate(cmd.Context(), toolID, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			if env.Success {
				if _, err := a.Recent.Record(cmd.Context(), opts.clientID, toolID); err != nil {
					opts.logger.Sugar().Warnw("Failed to record recent tool", "tool", toolID, "error", err)
				}
			}
			return printEnvelope(cmd.OutOrStdout(), opts, env, "")
		},
	}
}

type imageArgs struct {
	count    int
	seed     int64
	size     string
	model    string
	logo     bool
	enhance  bool
	download string
}

func newImageCmd(opts *cliOptions) *cobra.Command {
	args := &imageArgs{}
	cmd := &cobra.Command{
		Use:   "image <prompt>",
		Short: "Build image URLs for a prompt and optionally download them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			a, err := opts.application(cmd.Context())
			if err != nil {
				return err
			}

			params := map[string]any{
				"prompt":  strings.Join(positional, " "),
				"size":    args.size,
				"model":   args.model,
				"enhance": args.enhance,
			}
			if cmd.Flags().Changed("count") {
				params["count"] = args.count
			}
			if cmd.Flags().Changed("seed") {
				params["seed"] = args.seed
			}
			name := "image"
			if args.logo {
				name = "logo-image"
			}

			env, err := a.Dispatcher.Dispatch(cmd.Context(), name, params)
			if err != nil {
				return err
			}
			if err := printEnvelope(cmd.OutOrStdout(), opts, env, ""); err != nil {
				return err
			}
			if args.download == "" {
				return nil
			}

			images, _ := env.Result.([]actions.Image)
			return downloadImages(cmd, a.Pollinations, args.download, images)
		},
	}
	cmd.Flags().IntVarP(&args.count, "count", "n", 1, "number of variations (1-6)")
	cmd.Flags().Int64Var(&args.seed, "seed", 0, "first seed; later variations use seed+1, seed+2, ...")
	cmd.Flags().StringVar(&args.size, "size", "", "size preset (logo, favicon, banner, square, portrait, landscape, hd)")
	cmd.Flags().StringVar(&args.model, "model", "", "image model (flux, turbo)")
	cmd.Flags().BoolVar(&args.logo, "logo", false, "use the logo preset and prompt")
	cmd.Flags().BoolVar(&args.enhance, "enhance", false, "let the provider enhance the prompt")
	cmd.Flags().StringVar(&args.download, "download", "", "directory to save the images into")
	return cmd
}

type imageDownloader interface {
	DownloadImage(ctx context.Context, imageURL string) ([]byte, string, error)
}

// downloadImages fetches every image concurrently. The first failure cancels the rest.
func downloadImages(cmd *cobra.Command, client imageDownloader, dir string, images []actions.Image) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(3)
	paths := make([]string, len(images))
	for i, img := range images {
		i, img := i, img
		g.Go(func() error {
			data, contentType, err := client.DownloadImage(ctx, img.URL)
			if err != nil {
				return fmt.Errorf("image %d: %w", i+1, err)
			}
			path := filepath.Join(dir, fmt.Sprintf("image-%d%s", img.Seed, extensionFor(contentType)))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, p := range paths {
		fmt.Fprintf(cmd.ErrOrStderr(), "saved %s\n", p)
	}
	return nil
}

func extensionFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/png"):
		return ".png"
	case strings.HasPrefix(contentType, "image/jpeg"):
		return ".jpg"
	case strings.HasPrefix(contentType, "image/webp"):
		return ".webp"
	default:
		return ".img"
	}
}

// parseParams turns key=value pairs into action params. Values stay strings;
// the action decodes them into its own types.
func parseParams(pairs []string) (map[string]any, error) {
	params := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid param %q: want key=value", pair)
		}
		params[key] = value
	}
	return params, nil
}

func printEnvelope(out io.Writer, opts *cliOptions, env actions.Envelope[any], original string) error {
	if opts.jsonOutput {
		if err := writeJSON(out, env); err != nil {
			return err
		}
		if !env.Success {
			return exitError{code: 2, silent: true}
		}
		return nil
	}
	if !env.Success {
		return exitFailure(env.Error)
	}

	switch r := env.Result.(type) {
	case string:
		fmt.Fprintln(out, r)
		if original != "" {
			m := normalize.Measure(original, r)
			fmt.Fprintf(out, "\n%d words, %d characters, %d%% shorter\n", m.Words, m.Characters, m.CompressionRatio)
		}
	case []string:
		for i, item := range r {
			fmt.Fprintf(out, "%d. %s\n", i+1, item)
		}
	case []actions.Image:
		for _, img := range r {
			fmt.Fprintf(out, "%d\t%s\n", img.Seed, img.URL)
		}
	default:
		if err := writeJSON(out, r); err != nil {
			return err
		}
	}

	if env.Confidence != "" && env.Confidence != normalize.ConfidenceParsed {
		fmt.Fprintf(out, "(confidence: %s)\n", env.Confidence)
	}
	return nil
}
