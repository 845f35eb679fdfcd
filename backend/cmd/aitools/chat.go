package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"aitools/backend/internal/actions"
	"aitools/backend/internal/state"
)

func newChatCmd(opts *cliOptions) *cobra.Command {
	var persona string
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat. /clear resets the conversation, /exit quits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.application(cmd.Context())
			if err != nil {
				return err
			}
			return chatLoop(cmd, a.Dispatcher, persona)
		},
	}
	cmd.Flags().StringVar(&persona, "persona", "", "talk to a persona, e.g. "+strings.Join(actions.Personas(), ", "))
	return cmd
}

func chatLoop(cmd *cobra.Command, d *actions.Dispatcher, persona string) error {
	out := cmd.OutOrStdout()
	conv := state.NewConversation()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/exit", "/quit":
			return nil
		case "/clear":
			conv.Clear()
			fmt.Fprintln(out, "(conversation cleared)")
			continue
		}

		name := "chat"
		params := map[string]any{
			"message": line,
			"history": historyParam(conv.Messages()),
		}
		if persona != "" {
			name = "persona-chat"
			params["persona"] = persona
		}

		env, err := d.Dispatch(cmd.Context(), name, params)
		if err != nil {
			return err
		}
		if !env.Success {
			// The failed turn is not added to the history
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", env.Error)
			continue
		}

		reply, _ := env.Result.(string)
		conv.Append(state.RoleUser, line)
		conv.Append(state.RoleAssistant, reply)
		fmt.Fprintln(out, reply)
	}
}

// historyParam encodes messages the way an API client sends them
func historyParam(msgs []state.Message) []map[string]any {
	out := make([]map[string]any, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, map[string]any{
			"id":        m.ID,
			"content":   m.Content,
			"role":      string(m.Role),
			"timestamp": m.Timestamp.Format(time.RFC3339),
		})
	}
	return out
}
