package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/soyeahso/botline/internal/classify"
	"github.com/soyeahso/botline/internal/config"
	"github.com/soyeahso/botline/internal/directline"
	"github.com/soyeahso/botline/internal/markup"
	"github.com/soyeahso/botline/internal/prompt"
	"github.com/soyeahso/botline/internal/session"
	"github.com/spf13/cobra"
)

// freeTextHint is the default shown on free-text prompts.
const freeTextHint = "type 'quit' to exit or type 'kembali' to back"

func newChatCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open an interactive conversation with the agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(paths.Config)
			if err != nil {
				return err
			}

			issues := config.Validate(&cfg)
			if len(issues) > 0 {
				for _, issue := range issues {
					log.Error().Str("path", issue.Path).Msg(issue.Message)
				}
				return fmt.Errorf("config validation failed with %d issue(s)", len(issues))
			}

			// Styled output degrades to plain text off-terminal.
			if plain || !isatty.IsTerminal(os.Stdout.Fd()) {
				color.NoColor = true
			}

			client := directline.NewClient(cfg.Service, log)
			opener := func(streamURL string) (session.FrameSource, error) {
				return directline.OpenStream(cfg.Service, streamURL, log)
			}

			ctrl := session.New(
				session.Config{
					Classifier: classify.Classifier{
						BotID:     cfg.Service.BotID,
						BackLabel: cfg.Chat.BackLabel,
						QuitLabel: cfg.Chat.QuitLabel,
						TextHint:  freeTextHint,
					},
					Styler:    markup.Style,
					Keepalive: time.Duration(cfg.Chat.KeepaliveSeconds) * time.Second,
				},
				client,
				opener,
				prompt.NewTerminal(),
				cmd.OutOrStdout(),
				log,
			)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return ctrl.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "disable ANSI styling")

	return cmd
}
