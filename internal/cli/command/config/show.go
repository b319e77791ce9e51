package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/ReadyMate/internal/config"
	"github.com/Tomas-vilte/ReadyMate/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Println(t.GetMessage("current_config", 0, nil))
			fmt.Printf("  language:         %s\n", cfg.Language)
			fmt.Printf("  default_policies: %s\n", formatPolicies(cfg.DefaultPolicies))
			fmt.Printf("  min_level:        %d\n", cfg.MinLevel)
			fmt.Printf("  min_pass_rate:    %.2f\n", cfg.MinPassRate)
			fmt.Printf("  gemini_api_key:   %s\n", maskSecret(cfg.GeminiAPIKey))
			fmt.Printf("  github_token:     %s\n", maskSecret(cfg.GitHubToken))
			if cfg.GitHubOwner != "" {
				fmt.Printf("  github_repo:      %s/%s\n", cfg.GitHubOwner, cfg.GitHubRepo)
			}
			fmt.Printf("  config_file:      %s\n", cfg.PathFile)
			return nil
		},
	}
}

func formatPolicies(refs []string) string {
	if len(refs) == 0 {
		return "(none)"
	}
	return strings.Join(refs, ", ")
}

func maskSecret(value string) string {
	if value == "" {
		return "(not set)"
	}
	if len(value) <= 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}
