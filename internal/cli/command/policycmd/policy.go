package policycmd

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/ReadyMate/internal/config"
	"github.com/Tomas-vilte/ReadyMate/internal/i18n"
	"github.com/Tomas-vilte/ReadyMate/internal/policy"
	"github.com/Tomas-vilte/ReadyMate/internal/registry"
	"github.com/urfave/cli/v3"
)

type PolicyCommandFactory struct {
	loader *policy.Loader
}

func NewPolicyCommandFactory(loader *policy.Loader) *PolicyCommandFactory {
	return &PolicyCommandFactory{loader: loader}
}

func (f *PolicyCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "policy",
		Usage: t.GetMessage("policy_command_usage", 0, nil),
		Commands: []*cli.Command{
			f.newValidateCommand(t),
			f.newShowCommand(t, config),
		},
	}
}

// newValidateCommand valida una referencia sin evaluar nada: carga, aplica las
// reglas estructurales y reporta ok o el primer error.
func (f *PolicyCommandFactory) newValidateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     t.GetMessage("policy_validate_usage", 0, nil),
		ArgsUsage: "<ref>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "trusted-packs",
				Value: true,
				Usage: t.GetMessage("check_trusted_packs_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			ref := command.Args().First()
			if ref == "" {
				return fmt.Errorf("falta la referencia de política: ready-mate policy validate <ref>")
			}

			mode := policy.TrustFull
			if !command.Bool("trusted-packs") {
				mode = policy.TrustDataOnly
			}

			p, err := f.loader.Load(ref, mode)
			if err != nil {
				return err
			}

			source := ref
			if _, isPack := policy.BuiltinPacks()[ref]; isPack {
				source = "pack"
			}
			fmt.Println(t.GetMessage("policy_validate_ok", 0, map[string]interface{}{
				"Name":   p.Name,
				"Source": source,
			}))
			return nil
		},
	}
}

// newShowCommand imprime la cadena resuelta (criterios, extras y umbral) sin
// ejecutar ningún check.
func (f *PolicyCommandFactory) newShowCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("policy_show_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "policies",
				Usage: t.GetMessage("check_policies_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "trusted-packs",
				Value: true,
				Usage: t.GetMessage("check_trusted_packs_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			refs := policy.SplitRefs(command.String("policies"))
			if !command.IsSet("policies") {
				refs = config.DefaultPolicies
			}

			mode := policy.TrustFull
			if !command.Bool("trusted-packs") {
				mode = policy.TrustDataOnly
			}

			policies, err := f.loader.LoadAll(refs, mode)
			if err != nil {
				return err
			}

			baseCriteria, baseExtras := registry.Builtin()
			chain := policy.Resolve(baseCriteria, baseExtras, policies)

			fmt.Println(t.GetMessage("policy_show_header", 0, nil))
			if len(chain.Chain) > 0 {
				fmt.Printf("%s\n", t.GetMessage("report_applied_policies", 0, map[string]interface{}{
					"Chain": joinChain(chain.Chain),
				}))
			} else {
				fmt.Println(t.GetMessage("report_no_policies", 0, nil))
			}
			fmt.Printf("passRate: %.2f\n\n", chain.Thresholds.PassRate)

			for _, c := range chain.Criteria {
				fmt.Printf("  %-22s L%d %-12s %-4s impacto=%-6s esfuerzo=%-6s %s\n",
					c.ID, c.Level, c.Pillar, c.Scope, c.Impact, c.Effort, c.Title)
			}
			if len(chain.Extras) > 0 {
				fmt.Println()
				for _, e := range chain.Extras {
					fmt.Printf("  %-22s extra %s\n", e.ID, e.Title)
				}
			}
			return nil
		},
	}
}

func joinChain(chain []string) string {
	out := ""
	for i, name := range chain {
		if i > 0 {
			out += " → "
		}
		out += name
	}
	return out
}
