package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Tomas-vilte/ReadyMate/internal/cli/command/advise"
	"github.com/Tomas-vilte/ReadyMate/internal/cli/command/check"
	"github.com/Tomas-vilte/ReadyMate/internal/cli/command/completion"
	configcmd "github.com/Tomas-vilte/ReadyMate/internal/cli/command/config"
	"github.com/Tomas-vilte/ReadyMate/internal/cli/command/policycmd"
	"github.com/Tomas-vilte/ReadyMate/internal/cli/command/publish"
	"github.com/Tomas-vilte/ReadyMate/internal/cli/registry"
	cfg "github.com/Tomas-vilte/ReadyMate/internal/config"
	"github.com/Tomas-vilte/ReadyMate/internal/domain/ports"
	"github.com/Tomas-vilte/ReadyMate/internal/i18n"
	"github.com/Tomas-vilte/ReadyMate/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/ReadyMate/internal/infrastructure/analyzer"
	"github.com/Tomas-vilte/ReadyMate/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/ReadyMate/internal/logger"
	"github.com/Tomas-vilte/ReadyMate/internal/policy"
	"github.com/Tomas-vilte/ReadyMate/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	logger.Initialize(os.Getenv("READY_MATE_DEBUG") == "1", false)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		log.Fatalf("Error al cargar las traducciones: %v", err)
	}

	builder := analyzer.NewContextBuilder()
	loader := policy.NewLoader(policy.BuiltinPacks())

	advisorProvider := func(ctx context.Context) (ports.Advisor, error) {
		return gemini.NewAdvisorService(ctx, cfgApp.GeminiAPIKey)
	}

	publisherProvider := func(ctx context.Context, owner, repo string) (ports.ReportPublisher, error) {
		return github.NewIssuePublisher(owner, repo, cfgApp.GitHubToken)
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("check", check.NewCheckCommandFactory(builder, loader)); err != nil {
		log.Fatalf("Error al registrar el comando 'check': %v", err)
	}

	if err := registerCommand.Register("policy", policycmd.NewPolicyCommandFactory(loader)); err != nil {
		log.Fatalf("Error al registrar el comando 'policy': %v", err)
	}

	if err := registerCommand.Register("advise", advise.NewAdviseCommandFactory(advisorProvider)); err != nil {
		log.Fatalf("Error al registrar el comando 'advise': %v", err)
	}

	if err := registerCommand.Register("publish", publish.NewPublishCommandFactory(publisherProvider)); err != nil {
		log.Fatalf("Error al registrar el comando 'publish': %v", err)
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'config': %v", err)
	}

	commands := registerCommand.CreateCommands()
	commands = append(commands, completion.NewCompletionCommand(translations))

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:                  "ready-mate",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}
