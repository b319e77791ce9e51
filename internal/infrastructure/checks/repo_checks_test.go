package checks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repoWith arma un contexto mínimo con archivos reales en un directorio
// temporal, para los checks que consultan el filesystem además de RootFiles.
func repoWith(t *testing.T, files ...string) *models.RepoContext {
	t.Helper()
	dir := t.TempDir()
	roots := make(map[string]struct{})
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		top := f
		if slash := indexSlash(f); slash >= 0 {
			top = f[:slash]
		}
		roots[top] = struct{}{}
	}
	rootFiles := make([]string, 0, len(roots))
	for name := range roots {
		rootFiles = append(rootFiles, name)
	}
	return &models.RepoContext{Path: dir, RootFiles: rootFiles}
}

func indexSlash(s string) int {
	for i := range s {
		if s[i] == '/' {
			return i
		}
	}
	return -1
}

func TestRepoChecks(t *testing.T) {
	ctx := context.Background()

	t.Run("Readme should pass with any recognized name", func(t *testing.T) {
		assert.Equal(t, models.StatusPass, Readme(ctx, repoWith(t, "README.md"), nil).Status)
		assert.Equal(t, models.StatusPass, Readme(ctx, repoWith(t, "README.rst"), nil).Status)
		outcome := Readme(ctx, repoWith(t), nil)
		assert.Equal(t, models.StatusFail, outcome.Status)
		assert.NotEmpty(t, outcome.Reason)
	})

	t.Run("ManifestPresent should reflect the parsed manifest", func(t *testing.T) {
		rctx := repoWith(t)
		assert.Equal(t, models.StatusFail, ManifestPresent(ctx, rctx, nil).Status)

		rctx.Manifest = &models.Manifest{Kind: "go.mod"}
		outcome := ManifestPresent(ctx, rctx, nil)
		assert.Equal(t, models.StatusPass, outcome.Status)
		assert.Contains(t, outcome.Evidence, "go.mod")
	})

	t.Run("BuildScript should accept a manifest script or a Makefile", func(t *testing.T) {
		withScript := repoWith(t)
		withScript.Manifest = &models.Manifest{Kind: "package.json", Scripts: map[string]string{"build": "tsc"}}
		assert.Equal(t, models.StatusPass, BuildScript(ctx, withScript, nil).Status)

		assert.Equal(t, models.StatusPass, BuildScript(ctx, repoWith(t, "Makefile"), nil).Status)
		assert.Equal(t, models.StatusFail, BuildScript(ctx, repoWith(t), nil).Status)
	})

	t.Run("Lockfile should recognize ecosystem lockfiles", func(t *testing.T) {
		assert.Equal(t, models.StatusPass, Lockfile(ctx, repoWith(t, "pnpm-lock.yaml"), nil).Status)
		assert.Equal(t, models.StatusPass, Lockfile(ctx, repoWith(t, "go.sum"), nil).Status)
		assert.Equal(t, models.StatusFail, Lockfile(ctx, repoWith(t), nil).Status)
	})

	t.Run("CIWorkflow should require a non-empty workflows directory", func(t *testing.T) {
		assert.Equal(t, models.StatusPass, CIWorkflow(ctx, repoWith(t, ".github/workflows/ci.yml"), nil).Status)
		assert.Equal(t, models.StatusPass, CIWorkflow(ctx, repoWith(t, ".gitlab-ci.yml"), nil).Status)

		// Un directorio de workflows vacío no cuenta.
		empty := repoWith(t)
		require.NoError(t, os.MkdirAll(filepath.Join(empty.Path, ".github", "workflows"), 0755))
		assert.Equal(t, models.StatusFail, CIWorkflow(ctx, empty, nil).Status)
	})

	t.Run("LinterConfig should match prefixed and exact names", func(t *testing.T) {
		assert.Equal(t, models.StatusPass, LinterConfig(ctx, repoWith(t, ".eslintrc.json"), nil).Status)
		assert.Equal(t, models.StatusPass, LinterConfig(ctx, repoWith(t, "eslint.config.mjs"), nil).Status)
		assert.Equal(t, models.StatusPass, LinterConfig(ctx, repoWith(t, ".golangci.yml"), nil).Status)
		assert.Equal(t, models.StatusFail, LinterConfig(ctx, repoWith(t), nil).Status)
	})

	t.Run("FormatterConfig should auto-pass for Go repositories", func(t *testing.T) {
		goRepo := repoWith(t)
		goRepo.Manifest = &models.Manifest{Kind: "go.mod"}
		outcome := FormatterConfig(ctx, goRepo, nil)
		assert.Equal(t, models.StatusPass, outcome.Status)

		assert.Equal(t, models.StatusPass, FormatterConfig(ctx, repoWith(t, ".prettierrc"), nil).Status)
		assert.Equal(t, models.StatusFail, FormatterConfig(ctx, repoWith(t), nil).Status)
	})

	t.Run("SecurityPolicy should look at root and .github", func(t *testing.T) {
		assert.Equal(t, models.StatusPass, SecurityPolicy(ctx, repoWith(t, "SECURITY.md"), nil).Status)
		assert.Equal(t, models.StatusPass, SecurityPolicy(ctx, repoWith(t, ".github/SECURITY.md"), nil).Status)
		assert.Equal(t, models.StatusFail, SecurityPolicy(ctx, repoWith(t), nil).Status)
	})

	t.Run("PinnedRuntime should accept engines or version files", func(t *testing.T) {
		withEngines := repoWith(t)
		withEngines.Manifest = &models.Manifest{Kind: "go.mod", Engines: map[string]string{"go": "1.23"}}
		assert.Equal(t, models.StatusPass, PinnedRuntime(ctx, withEngines, nil).Status)

		assert.Equal(t, models.StatusPass, PinnedRuntime(ctx, repoWith(t, ".nvmrc"), nil).Status)
		assert.Equal(t, models.StatusFail, PinnedRuntime(ctx, repoWith(t), nil).Status)
	})

	t.Run("AIContextFile should recognize the known context files", func(t *testing.T) {
		assert.Equal(t, models.StatusPass, AIContextFile(ctx, repoWith(t, "AGENTS.md"), nil).Status)
		assert.Equal(t, models.StatusPass, AIContextFile(ctx, repoWith(t, ".cursorrules"), nil).Status)
		assert.Equal(t, models.StatusPass, AIContextFile(ctx, repoWith(t, ".github/copilot-instructions.md"), nil).Status)
		assert.Equal(t, models.StatusFail, AIContextFile(ctx, repoWith(t), nil).Status)
	})

	t.Run("CoverageConfig should accept config files or a coverage script", func(t *testing.T) {
		assert.Equal(t, models.StatusPass, CoverageConfig(ctx, repoWith(t, "codecov.yml"), nil).Status)

		withScript := repoWith(t)
		withScript.Manifest = &models.Manifest{Kind: "package.json", Scripts: map[string]string{"coverage": "vitest --coverage"}}
		assert.Equal(t, models.StatusPass, CoverageConfig(ctx, withScript, nil).Status)

		assert.Equal(t, models.StatusFail, CoverageConfig(ctx, repoWith(t), nil).Status)
	})

	t.Run("DependencyUpdates should find dependabot or renovate", func(t *testing.T) {
		assert.Equal(t, models.StatusPass, DependencyUpdates(ctx, repoWith(t, ".github/dependabot.yml"), nil).Status)
		assert.Equal(t, models.StatusPass, DependencyUpdates(ctx, repoWith(t, "renovate.json"), nil).Status)
		assert.Equal(t, models.StatusFail, DependencyUpdates(ctx, repoWith(t), nil).Status)
	})

	t.Run("ReleaseAutomation should find goreleaser, changesets or a script", func(t *testing.T) {
		assert.Equal(t, models.StatusPass, ReleaseAutomation(ctx, repoWith(t, ".goreleaser.yml"), nil).Status)
		assert.Equal(t, models.StatusPass, ReleaseAutomation(ctx, repoWith(t, ".changeset/config.json"), nil).Status)
		assert.Equal(t, models.StatusFail, ReleaseAutomation(ctx, repoWith(t), nil).Status)
	})

	t.Run("ADRRecords should look in the usual directories", func(t *testing.T) {
		assert.Equal(t, models.StatusPass, ADRRecords(ctx, repoWith(t, "docs/adr/0001-registro.md"), nil).Status)
		assert.Equal(t, models.StatusFail, ADRRecords(ctx, repoWith(t), nil).Status)
	})

	t.Run("E2ETests should find runner configs or e2e directories", func(t *testing.T) {
		assert.Equal(t, models.StatusPass, E2ETests(ctx, repoWith(t, "playwright.config.ts"), nil).Status)
		assert.Equal(t, models.StatusPass, E2ETests(ctx, repoWith(t, "e2e/login.spec.ts"), nil).Status)
		assert.Equal(t, models.StatusFail, E2ETests(ctx, repoWith(t), nil).Status)
	})

	t.Run("extras should check their root files", func(t *testing.T) {
		assert.Equal(t, models.StatusPass, License(ctx, repoWith(t, "LICENSE"), nil).Status)
		assert.Equal(t, models.StatusFail, License(ctx, repoWith(t), nil).Status)

		assert.Equal(t, models.StatusPass, Changelog(ctx, repoWith(t, "CHANGELOG.md"), nil).Status)
		assert.Equal(t, models.StatusPass, Editorconfig(ctx, repoWith(t, ".editorconfig"), nil).Status)
		assert.Equal(t, models.StatusPass, CodeOfConduct(ctx, repoWith(t, ".github/CODE_OF_CONDUCT.md"), nil).Status)
	})
}
