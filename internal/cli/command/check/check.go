package check

import (
	"context"
	"fmt"
	"os"
	"time"

	cfg "github.com/Tomas-vilte/ReadyMate/internal/config"
	"github.com/Tomas-vilte/ReadyMate/internal/domain/ports"
	"github.com/Tomas-vilte/ReadyMate/internal/engine"
	"github.com/Tomas-vilte/ReadyMate/internal/i18n"
	"github.com/Tomas-vilte/ReadyMate/internal/logger"
	"github.com/Tomas-vilte/ReadyMate/internal/policy"
	"github.com/Tomas-vilte/ReadyMate/internal/registry"
	"github.com/Tomas-vilte/ReadyMate/internal/render"
	"github.com/urfave/cli/v3"
)

// exitCodeGate es el código de salida cuando el reporte se generó bien pero
// no alcanza los pisos exigidos por --min-level o --min-pass-rate.
const exitCodeGate = 2

type CheckCommandFactory struct {
	builder ports.ContextBuilder
	loader  *policy.Loader
}

func NewCheckCommandFactory(builder ports.ContextBuilder, loader *policy.Loader) *CheckCommandFactory {
	return &CheckCommandFactory{
		builder: builder,
		loader:  loader,
	}
}

func (f *CheckCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "check",
		Aliases: []string{"ch"},
		Usage:   t.GetMessage("check_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Value:   ".",
				Usage:   t.GetMessage("check_path_flag_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  "policies",
				Usage: t.GetMessage("check_policies_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: t.GetMessage("check_json_flag_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  "save",
				Usage: t.GetMessage("check_save_flag_usage", 0, nil),
			},
			&cli.IntFlag{
				Name:  "min-level",
				Usage: t.GetMessage("check_min_level_flag_usage", 0, nil),
			},
			&cli.FloatFlag{
				Name:  "min-pass-rate",
				Usage: t.GetMessage("check_min_pass_rate_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "trusted-packs",
				Value: true,
				Usage: t.GetMessage("check_trusted_packs_flag_usage", 0, nil),
			},
		},
		Action: f.createAction(t, config),
	}
}

func (f *CheckCommandFactory) createAction(t *i18n.Translations, config *cfg.Config) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		path := command.String("path")

		refs := policy.SplitRefs(command.String("policies"))
		if !command.IsSet("policies") {
			refs = config.DefaultPolicies
		}

		// --trusted-packs=false degrada todas las referencias a dataOnly: los
		// packs de código quedan prohibidos en esa corrida.
		mode := policy.TrustFull
		if !command.Bool("trusted-packs") {
			mode = policy.TrustDataOnly
		}

		policies, err := f.loader.LoadAll(refs, mode)
		if err != nil {
			return err
		}

		fmt.Println(t.GetMessage("analyzing_repository", 0, map[string]interface{}{"Path": path}))

		rctx, err := f.builder.Build(ctx, path)
		if err != nil {
			return err
		}

		baseCriteria, baseExtras := registry.Builtin()
		chain := policy.Resolve(baseCriteria, baseExtras, policies)

		logger.Debug(ctx, "cadena resuelta",
			"criteria", len(chain.Criteria),
			"extras", len(chain.Extras),
			"passRate", chain.Thresholds.PassRate)

		runner := engine.NewRunner()
		results, extraResults := runner.Run(ctx, chain, rctx)
		report := engine.AssembleReport(rctx, chain, results, extraResults, time.Now())

		if command.Bool("json") {
			data, err := render.JSON(report)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		} else {
			fmt.Print(render.Text(report, t))
		}

		if savePath := command.String("save"); savePath != "" {
			data, err := render.JSON(report)
			if err != nil {
				return err
			}
			if err := os.WriteFile(savePath, data, 0644); err != nil {
				return fmt.Errorf("error al guardar el reporte: %w", err)
			}
			fmt.Println(t.GetMessage("check_report_saved", 0, map[string]interface{}{"Path": savePath}))
		}

		minLevel := int(command.Int("min-level"))
		if !command.IsSet("min-level") {
			minLevel = config.MinLevel
		}
		if minLevel > 0 && report.AchievedLevel < minLevel {
			return cli.Exit(t.GetMessage("check_below_min_level", 0, map[string]interface{}{
				"Achieved": report.AchievedLevel,
				"Min":      minLevel,
			}), exitCodeGate)
		}

		minPassRate := command.Float("min-pass-rate")
		if !command.IsSet("min-pass-rate") {
			minPassRate = config.MinPassRate
		}
		if minPassRate > 0 && report.OverallPassRate < minPassRate {
			return cli.Exit(t.GetMessage("check_below_min_pass_rate", 0, map[string]interface{}{
				"Rate": fmt.Sprintf("%.0f%%", report.OverallPassRate*100),
				"Min":  fmt.Sprintf("%.0f%%", minPassRate*100),
			}), exitCodeGate)
		}

		return nil
	}
}
