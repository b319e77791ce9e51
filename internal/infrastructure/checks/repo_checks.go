package checks

import (
	"context"
	"strings"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
)

// Readme verifica que exista documentación de entrada en la raíz.
func Readme(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if name, ok := rctx.HasRootFile("README.md", "README.rst", "README", "readme.md"); ok {
		return models.Pass(name)
	}
	return models.Fail("no hay README en la raíz del repositorio")
}

// ManifestPresent verifica que el manifiesto raíz exista y haya podido
// parsearse (package.json o go.mod).
func ManifestPresent(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if rctx.Manifest == nil {
		return models.Fail("no se encontró un manifiesto raíz (package.json o go.mod)")
	}
	return models.Pass(rctx.Manifest.Kind)
}

// Gitignore verifica la presencia de .gitignore.
func Gitignore(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if name, ok := rctx.HasRootFile(".gitignore"); ok {
		return models.Pass(name)
	}
	return models.Fail("no hay .gitignore")
}

// BuildScript verifica que el build esté declarado: script "build" en el
// manifiesto, o un Makefile/Taskfile para proyectos Go.
func BuildScript(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if rctx.Manifest.HasScript("build") {
		return models.Pass(rctx.Manifest.Kind + "#scripts.build")
	}
	if name, ok := rctx.HasRootFile("Makefile", "makefile", "Taskfile.yml", "justfile"); ok {
		return models.Pass(name)
	}
	return models.Fail("no hay script de build declarado ni Makefile")
}

// Lockfile verifica que las dependencias estén fijadas con un lockfile.
func Lockfile(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if name, ok := rctx.HasRootFile("package-lock.json", "yarn.lock", "pnpm-lock.yaml", "bun.lockb", "go.sum"); ok {
		return models.Pass(name)
	}
	return models.Fail("no hay lockfile de dependencias")
}

// CIWorkflow verifica que exista configuración de integración continua.
func CIWorkflow(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if dirHasEntries(rctx.Path, ".github/workflows") {
		return models.Pass(".github/workflows")
	}
	if rel, ok := firstUnder(rctx.Path, ".gitlab-ci.yml", ".circleci/config.yml", "azure-pipelines.yml"); ok {
		return models.Pass(rel)
	}
	return models.Fail("no hay workflows de CI configurados")
}

// LinterConfig verifica configuración de linting.
func LinterConfig(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if name, ok := hasPrefixEntry(rctx, ".eslintrc"); ok {
		return models.Pass(name)
	}
	if name, ok := hasPrefixEntry(rctx, "eslint.config."); ok {
		return models.Pass(name)
	}
	if name, ok := rctx.HasRootFile("biome.json", "biome.jsonc", ".golangci.yml", ".golangci.yaml", ".golangci.toml"); ok {
		return models.Pass(name)
	}
	return models.Fail("no hay configuración de linter")
}

// FormatterConfig verifica configuración de formateo automático.
func FormatterConfig(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if name, ok := hasPrefixEntry(rctx, ".prettierrc"); ok {
		return models.Pass(name)
	}
	if name, ok := hasPrefixEntry(rctx, "prettier.config."); ok {
		return models.Pass(name)
	}
	if name, ok := rctx.HasRootFile("biome.json", "biome.jsonc", "dprint.json", ".editorconfig"); ok {
		return models.Pass(name)
	}
	if rctx.Manifest != nil && rctx.Manifest.Kind == "go.mod" {
		// gofmt viene con el toolchain; alcanza con que el repo sea Go.
		return models.Pass("go.mod")
	}
	return models.Fail("no hay configuración de formatter")
}

// Contributing verifica la guía de contribución.
func Contributing(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if name, ok := rctx.HasRootFile("CONTRIBUTING.md"); ok {
		return models.Pass(name)
	}
	if existsUnder(rctx.Path, ".github/CONTRIBUTING.md") {
		return models.Pass(".github/CONTRIBUTING.md")
	}
	return models.Fail("no hay CONTRIBUTING.md")
}

// SecurityPolicy verifica la política de seguridad.
func SecurityPolicy(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if name, ok := rctx.HasRootFile("SECURITY.md"); ok {
		return models.Pass(name)
	}
	if existsUnder(rctx.Path, ".github/SECURITY.md") {
		return models.Pass(".github/SECURITY.md")
	}
	return models.Fail("no hay SECURITY.md")
}

// PinnedRuntime verifica que la versión del runtime esté declarada.
func PinnedRuntime(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if rctx.Manifest != nil && len(rctx.Manifest.Engines) > 0 {
		return models.Pass(rctx.Manifest.Kind + "#engines")
	}
	if name, ok := rctx.HasRootFile(".nvmrc", ".node-version", ".tool-versions", "mise.toml"); ok {
		return models.Pass(name)
	}
	return models.Fail("no hay versión de runtime declarada (engines, .nvmrc, directiva go)")
}

// AIContextFile verifica que haya instrucciones de contexto para asistentes
// de código en la raíz.
func AIContextFile(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if name, ok := rctx.HasRootFile("CLAUDE.md", "AGENTS.md", ".cursorrules", ".windsurfrules"); ok {
		return models.Pass(name)
	}
	if existsUnder(rctx.Path, ".github/copilot-instructions.md") {
		return models.Pass(".github/copilot-instructions.md")
	}
	return models.Fail("no hay archivo de contexto para herramientas de IA (CLAUDE.md, AGENTS.md, .cursorrules)")
}

// Codeowners verifica que haya propietarios de código declarados.
func Codeowners(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if rel, ok := firstUnder(rctx.Path, "CODEOWNERS", ".github/CODEOWNERS", "docs/CODEOWNERS"); ok {
		return models.Pass(rel)
	}
	return models.Fail("no hay archivo CODEOWNERS")
}

// CoverageConfig verifica configuración de cobertura de tests.
func CoverageConfig(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if name, ok := rctx.HasRootFile("codecov.yml", ".codecov.yml", ".nycrc", ".nycrc.json"); ok {
		return models.Pass(name)
	}
	if rctx.Manifest.HasScript("coverage") {
		return models.Pass(rctx.Manifest.Kind + "#scripts.coverage")
	}
	return models.Fail("no hay configuración de cobertura")
}

// DependencyUpdates verifica automatización de actualización de dependencias.
func DependencyUpdates(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if rel, ok := firstUnder(rctx.Path, ".github/dependabot.yml", ".github/dependabot.yaml"); ok {
		return models.Pass(rel)
	}
	if name, ok := rctx.HasRootFile("renovate.json", "renovate.json5", ".renovaterc", ".renovaterc.json"); ok {
		return models.Pass(name)
	}
	return models.Fail("no hay dependabot ni renovate configurados")
}

// ReleaseAutomation verifica que los releases estén automatizados.
func ReleaseAutomation(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if name, ok := rctx.HasRootFile(".goreleaser.yml", ".goreleaser.yaml", ".releaserc", ".releaserc.json"); ok {
		return models.Pass(name)
	}
	if dirHasEntries(rctx.Path, ".changeset") {
		return models.Pass(".changeset")
	}
	if rctx.Manifest.HasScript("release") {
		return models.Pass(rctx.Manifest.Kind + "#scripts.release")
	}
	return models.Fail("no hay automatización de releases")
}

// ADRRecords verifica que las decisiones de arquitectura estén registradas.
func ADRRecords(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if rel, ok := firstUnder(rctx.Path, "docs/adr", "docs/decisions", "adr", "doc/adr"); ok {
		return models.Pass(rel)
	}
	return models.Fail("no hay registros de decisiones de arquitectura (docs/adr)")
}

// E2ETests verifica que existan pruebas end-to-end.
func E2ETests(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if name, ok := hasPrefixEntry(rctx, "playwright.config."); ok {
		return models.Pass(name)
	}
	if name, ok := hasPrefixEntry(rctx, "cypress.config."); ok {
		return models.Pass(name)
	}
	if rel, ok := firstUnder(rctx.Path, "e2e", "tests/e2e"); ok {
		return models.Pass(rel)
	}
	return models.Fail("no hay pruebas end-to-end configuradas")
}

// License verifica el archivo de licencia (extra).
func License(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if name, ok := rctx.HasRootFile("LICENSE", "LICENSE.md", "LICENSE.txt", "COPYING"); ok {
		return models.Pass(name)
	}
	return models.Fail("no hay archivo de licencia")
}

// Changelog verifica el registro de cambios (extra).
func Changelog(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if name, ok := rctx.HasRootFile("CHANGELOG.md", "CHANGES.md", "HISTORY.md"); ok {
		return models.Pass(name)
	}
	return models.Fail("no hay CHANGELOG")
}

// Editorconfig verifica .editorconfig (extra).
func Editorconfig(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if name, ok := rctx.HasRootFile(".editorconfig"); ok {
		return models.Pass(name)
	}
	return models.Fail("no hay .editorconfig")
}

// CodeOfConduct verifica el código de conducta (extra).
func CodeOfConduct(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
	if name, ok := rctx.HasRootFile("CODE_OF_CONDUCT.md"); ok {
		return models.Pass(name)
	}
	if existsUnder(rctx.Path, ".github/CODE_OF_CONDUCT.md") {
		return models.Pass(".github/CODE_OF_CONDUCT.md")
	}
	return models.Fail("no hay código de conducta")
}

// hasTestEntry detecta archivos o directorios de test en una lista de rutas.
func hasTestEntry(files []string) (string, bool) {
	for _, f := range files {
		base := f
		if idx := strings.LastIndex(f, "/"); idx >= 0 {
			base = f[idx+1:]
		}
		switch {
		case strings.HasSuffix(base, "_test.go"),
			strings.Contains(base, ".test."),
			strings.Contains(base, ".spec."):
			return f, true
		case strings.HasPrefix(f, "__tests__/"),
			strings.Contains(f, "/__tests__/"),
			strings.HasPrefix(f, "test/"),
			strings.HasPrefix(f, "tests/"):
			return f, true
		}
	}
	return "", false
}
