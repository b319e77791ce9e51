package advise

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	cfg "github.com/Tomas-vilte/ReadyMate/internal/config"
	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
	"github.com/Tomas-vilte/ReadyMate/internal/domain/ports"
	"github.com/Tomas-vilte/ReadyMate/internal/i18n"
	"github.com/urfave/cli/v3"
)

// AdvisorProvider construye el advisor recién cuando el comando lo necesita,
// para que el resto de la CLI funcione sin API key configurada.
type AdvisorProvider func(ctx context.Context) (ports.Advisor, error)

type AdviseCommandFactory struct {
	provider AdvisorProvider
}

func NewAdviseCommandFactory(provider AdvisorProvider) *AdviseCommandFactory {
	return &AdviseCommandFactory{provider: provider}
}

func (f *AdviseCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "advise",
		Usage: t.GetMessage("advise_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "report",
				Aliases:  []string{"r"},
				Usage:    t.GetMessage("advise_report_flag_usage", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			report, err := readReport(command.String("report"))
			if err != nil {
				return err
			}

			advisor, err := f.provider(ctx)
			if err != nil {
				return err
			}

			suggestions, err := advisor.GenerateAdvice(ctx, report)
			if err != nil {
				return err
			}

			if len(suggestions) == 0 {
				fmt.Println(t.GetMessage("advise_no_suggestions", 0, nil))
				return nil
			}

			for _, s := range suggestions {
				fmt.Printf("%d. ", s.Priority)
				if s.CriterionID != "" {
					fmt.Printf("[%s] ", s.CriterionID)
				}
				fmt.Printf("%s\n", s.Title)
				if s.Detail != "" {
					fmt.Printf("   %s\n", s.Detail)
				}
			}
			return nil
		},
	}
}

func readReport(path string) (*models.ReadinessReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error al leer el reporte %s: %w", path, err)
	}

	var report models.ReadinessReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("el archivo %s no es un reporte JSON válido: %w", path, err)
	}
	return &report, nil
}
