package cli

import (
	"fmt"

	"github.com/soyeahso/botline/internal/config"
	"github.com/soyeahso/botline/internal/version"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show botline status and configuration summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Botline %s (commit %s)\n\n", version.Version, version.Commit)

			fmt.Printf("Config:  %s\n", paths.Config)
			fmt.Printf("Logs:    %s\n", paths.Logs)
			fmt.Println()

			cfg, err := config.Load(paths.Config)
			if err != nil {
				fmt.Printf("Config:  error loading: %v\n", err)
				return nil
			}

			fmt.Printf("Service: %s\n", cfg.Service.BaseURL)
			fmt.Printf("Bot:     %s\n", cfg.Service.BotID)
			fmt.Printf("Locale:  %s (%s)\n", cfg.Service.Locale, cfg.Service.Timezone)
			token := "(not set)"
			if cfg.Service.Token != "" {
				token = "(set)"
			}
			fmt.Printf("Token:   %s\n", token)
			fmt.Printf("Chat:    keepalive=%ds back=%q quit=%q\n",
				cfg.Chat.KeepaliveSeconds, cfg.Chat.BackLabel, cfg.Chat.QuitLabel)

			issues := config.Validate(&cfg)
			if len(issues) > 0 {
				fmt.Printf("\nValidation issues (%d):\n", len(issues))
				for _, issue := range issues {
					fmt.Printf("  - %s: %s\n", issue.Path, issue.Message)
				}
			}

			return nil
		},
	}

	return cmd
}
