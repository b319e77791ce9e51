package checks

import (
	"context"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
)

// AppTests verifica que la unidad de aplicación tenga tests propios: archivos
// de test o un script "test" en su manifiesto.
func AppTests(_ context.Context, _ *models.RepoContext, app *models.AppUnit) models.CheckOutcome {
	if f, ok := hasTestEntry(app.Files); ok {
		return models.Pass(f)
	}
	if app.Manifest.HasScript("test") {
		return models.Pass(app.Path + "#scripts.test")
	}
	return models.Fail("la aplicación no tiene tests ni script de test")
}

// AppReadme verifica que la unidad de aplicación tenga su propio README.
func AppReadme(_ context.Context, _ *models.RepoContext, app *models.AppUnit) models.CheckOutcome {
	for _, f := range app.Files {
		if f == "README.md" || f == "README.rst" || f == "README" {
			return models.Pass(f)
		}
	}
	return models.Fail("la aplicación no tiene README propio")
}

// AppAIInstructions verifica que la unidad tenga instrucciones de contexto
// para asistentes de código.
func AppAIInstructions(_ context.Context, _ *models.RepoContext, app *models.AppUnit) models.CheckOutcome {
	for _, f := range app.Files {
		if f == "CLAUDE.md" || f == "AGENTS.md" || f == ".cursorrules" {
			return models.Pass(f)
		}
	}
	return models.Fail("la aplicación no tiene instrucciones para herramientas de IA")
}
