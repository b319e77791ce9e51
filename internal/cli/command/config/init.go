package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/ReadyMate/internal/config"
	"github.com/Tomas-vilte/ReadyMate/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newInitCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config_init_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "gemini-api-key",
				Usage: t.GetMessage("config_gemini_key_flag_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  "github-token",
				Usage: t.GetMessage("config_github_token_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			if key := command.String("gemini-api-key"); key != "" {
				cfg.GeminiAPIKey = key
			}
			if token := command.String("github-token"); token != "" {
				cfg.GitHubToken = token
			}

			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Println(t.GetMessage("config_initialized", 0, map[string]interface{}{"Path": cfg.PathFile}))
			return nil
		},
	}
}
