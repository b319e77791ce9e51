package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/ReadyMate/internal/config"
	"github.com/Tomas-vilte/ReadyMate/internal/i18n"
	"github.com/Tomas-vilte/ReadyMate/internal/policy"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetPoliciesCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-policies",
		Usage: t.GetMessage("config_set_policies_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "policies",
				Usage:    t.GetMessage("check_policies_flag_usage", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			refs := policy.SplitRefs(command.String("policies"))

			// Validar cada referencia antes de persistirla para no dejar una
			// configuración que rompa todos los checks siguientes.
			loader := policy.NewLoader(policy.BuiltinPacks())
			if _, err := loader.LoadAll(refs, policy.TrustFull); err != nil {
				return err
			}

			cfg.DefaultPolicies = refs
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Println(t.GetMessage("config_updated", 0, nil))
			return nil
		},
	}
}
