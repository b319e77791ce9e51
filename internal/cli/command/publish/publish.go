package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	cfg "github.com/Tomas-vilte/ReadyMate/internal/config"
	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
	"github.com/Tomas-vilte/ReadyMate/internal/domain/ports"
	domainErrors "github.com/Tomas-vilte/ReadyMate/internal/errors"
	"github.com/Tomas-vilte/ReadyMate/internal/i18n"
	"github.com/urfave/cli/v3"
)

// PublisherProvider construye el publicador para un repositorio destino
// concreto. Se invoca recién al ejecutar el comando.
type PublisherProvider func(ctx context.Context, owner, repo string) (ports.ReportPublisher, error)

type PublishCommandFactory struct {
	provider PublisherProvider
}

func NewPublishCommandFactory(provider PublisherProvider) *PublishCommandFactory {
	return &PublishCommandFactory{provider: provider}
}

func (f *PublishCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "publish",
		Usage: t.GetMessage("publish_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "report",
				Aliases:  []string{"r"},
				Usage:    t.GetMessage("publish_report_flag_usage", 0, nil),
				Required: true,
			},
			&cli.StringFlag{
				Name:  "repo",
				Usage: t.GetMessage("publish_repo_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			report, err := readReport(command.String("report"))
			if err != nil {
				return err
			}

			owner, repo, err := resolveSlug(command.String("repo"), config)
			if err != nil {
				return err
			}

			publisher, err := f.provider(ctx, owner, repo)
			if err != nil {
				return err
			}

			url, err := publisher.Publish(ctx, report)
			if err != nil {
				return err
			}

			fmt.Println(t.GetMessage("publish_done", 0, map[string]interface{}{"URL": url}))
			return nil
		},
	}
}

// resolveSlug toma el destino del flag --repo (owner/name) o, en su defecto,
// de la configuración guardada.
func resolveSlug(slug string, config *cfg.Config) (string, string, error) {
	if slug == "" {
		if config.GitHubOwner != "" && config.GitHubRepo != "" {
			return config.GitHubOwner, config.GitHubRepo, nil
		}
		return "", "", domainErrors.ErrInvalidRepoSlug.
			WithContext("source", "--repo")
	}

	parts := strings.Split(slug, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", domainErrors.ErrInvalidRepoSlug.
			WithContext("source", slug)
	}
	return parts[0], parts[1], nil
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
