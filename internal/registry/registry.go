// Package registry define el catálogo incorporado de criterios y extras.
// El catálogo es una tabla de solo lectura construida en cada llamada y
// pasada explícitamente al resolver: no hay estado global, así corridas batch
// concurrentes con cadenas de políticas distintas no pueden interferirse.
package registry

import (
	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
	"github.com/Tomas-vilte/ReadyMate/internal/infrastructure/checks"
)

// Builtin retorna la lista base ordenada de criterios y extras. Los ids son
// únicos y estables: las políticas los referencian por nombre.
func Builtin() ([]models.Criterion, []models.Extra) {
	criteria := []models.Criterion{
		// Nivel 1 — Initial
		{
			ID: "readme-exists", Title: "README at repository root",
			Pillar: models.PillarDocs, Level: 1, Scope: models.ScopeRepo,
			Impact: models.RatingHigh, Effort: models.RatingLow,
			Check: models.CheckFunc(checks.Readme),
		},
		{
			ID: "manifest-present", Title: "Parseable root manifest",
			Pillar: models.PillarBuild, Level: 1, Scope: models.ScopeRepo,
			Impact: models.RatingHigh, Effort: models.RatingLow,
			Check: models.CheckFunc(checks.ManifestPresent),
		},
		{
			ID: "gitignore-present", Title: "Version control ignore rules",
			Pillar: models.PillarStructure, Level: 1, Scope: models.ScopeRepo,
			Impact: models.RatingMedium, Effort: models.RatingLow,
			Check: models.CheckFunc(checks.Gitignore),
		},

		// Nivel 2 — Managed
		{
			ID: "build-script", Title: "Declared build entry point",
			Pillar: models.PillarBuild, Level: 2, Scope: models.ScopeRepo,
			Impact: models.RatingHigh, Effort: models.RatingLow,
			Check: models.CheckFunc(checks.BuildScript),
		},
		{
			ID: "tests-present", Title: "Application has its own tests",
			Pillar: models.PillarTesting, Level: 2, Scope: models.ScopeApp,
			Impact: models.RatingHigh, Effort: models.RatingMedium,
			Check: models.CheckFunc(checks.AppTests),
		},
		{
			ID: "lockfile-present", Title: "Dependency lockfile committed",
			Pillar: models.PillarDependencies, Level: 2, Scope: models.ScopeRepo,
			Impact: models.RatingMedium, Effort: models.RatingLow,
			Check: models.CheckFunc(checks.Lockfile),
		},
		{
			ID: "ci-workflow", Title: "Continuous integration configured",
			Pillar: models.PillarAutomation, Level: 2, Scope: models.ScopeRepo,
			Impact: models.RatingHigh, Effort: models.RatingMedium,
			Check: models.CheckFunc(checks.CIWorkflow),
		},

		// Nivel 3 — Defined
		{
			ID: "linter-config", Title: "Linter configuration",
			Pillar: models.PillarBuild, Level: 3, Scope: models.ScopeRepo,
			Impact: models.RatingMedium, Effort: models.RatingLow,
			Check: models.CheckFunc(checks.LinterConfig),
		},
		{
			ID: "formatter-config", Title: "Code formatter configuration",
			Pillar: models.PillarStructure, Level: 3, Scope: models.ScopeRepo,
			Impact: models.RatingLow, Effort: models.RatingLow,
			Check: models.CheckFunc(checks.FormatterConfig),
		},
		{
			ID: "contributing-guide", Title: "Contribution guide",
			Pillar: models.PillarDocs, Level: 3, Scope: models.ScopeRepo,
			Impact: models.RatingMedium, Effort: models.RatingLow,
			Check: models.CheckFunc(checks.Contributing),
		},
		{
			ID: "security-policy", Title: "Security policy",
			Pillar: models.PillarSecurity, Level: 3, Scope: models.ScopeRepo,
			Impact: models.RatingMedium, Effort: models.RatingLow,
			Check: models.CheckFunc(checks.SecurityPolicy),
		},
		{
			ID: "pinned-runtime", Title: "Runtime version pinned",
			Pillar: models.PillarDependencies, Level: 3, Scope: models.ScopeRepo,
			Impact: models.RatingLow, Effort: models.RatingLow,
			Check: models.CheckFunc(checks.PinnedRuntime),
		},
		{
			ID: "app-readme", Title: "Application has its own README",
			Pillar: models.PillarDocs, Level: 3, Scope: models.ScopeApp,
			Impact: models.RatingMedium, Effort: models.RatingLow,
			Check: models.CheckFunc(checks.AppReadme),
		},

		// Nivel 4 — Measured
		{
			ID: "ai-context-file", Title: "AI assistant context file",
			Pillar: models.PillarAI, Level: 4, Scope: models.ScopeRepo,
			Impact: models.RatingHigh, Effort: models.RatingMedium,
			Check: models.CheckFunc(checks.AIContextFile),
		},
		{
			ID: "codeowners", Title: "Code owners declared",
			Pillar: models.PillarSecurity, Level: 4, Scope: models.ScopeRepo,
			Impact: models.RatingMedium, Effort: models.RatingLow,
			Check: models.CheckFunc(checks.Codeowners),
		},
		{
			ID: "coverage-config", Title: "Test coverage tracking",
			Pillar: models.PillarTesting, Level: 4, Scope: models.ScopeRepo,
			Impact: models.RatingMedium, Effort: models.RatingMedium,
			Check: models.CheckFunc(checks.CoverageConfig),
		},
		{
			ID: "dependency-updates", Title: "Automated dependency updates",
			Pillar: models.PillarDependencies, Level: 4, Scope: models.ScopeRepo,
			Impact: models.RatingMedium, Effort: models.RatingMedium,
			Check: models.CheckFunc(checks.DependencyUpdates),
		},
		{
			ID: "release-automation", Title: "Automated releases",
			Pillar: models.PillarAutomation, Level: 4, Scope: models.ScopeRepo,
			Impact: models.RatingMedium, Effort: models.RatingHigh,
			Check: models.CheckFunc(checks.ReleaseAutomation),
		},

		// Nivel 5 — Optimized
		{
			ID: "app-ai-instructions", Title: "Per-application AI instructions",
			Pillar: models.PillarAI, Level: 5, Scope: models.ScopeApp,
			Impact: models.RatingHigh, Effort: models.RatingMedium,
			Check: models.CheckFunc(checks.AppAIInstructions),
		},
		{
			ID: "adr-records", Title: "Architecture decision records",
			Pillar: models.PillarDocs, Level: 5, Scope: models.ScopeRepo,
			Impact: models.RatingLow, Effort: models.RatingMedium,
			Check: models.CheckFunc(checks.ADRRecords),
		},
		{
			ID: "e2e-tests", Title: "End-to-end test suite",
			Pillar: models.PillarTesting, Level: 5, Scope: models.ScopeRepo,
			Impact: models.RatingMedium, Effort: models.RatingHigh,
			Check: models.CheckFunc(checks.E2ETests),
		},
	}

	extras := []models.Extra{
		{ID: "license-file", Title: "License file", Check: models.CheckFunc(checks.License)},
		{ID: "changelog-file", Title: "Changelog", Check: models.CheckFunc(checks.Changelog)},
		{ID: "editorconfig", Title: "EditorConfig", Check: models.CheckFunc(checks.Editorconfig)},
		{ID: "code-of-conduct", Title: "Code of conduct", Check: models.CheckFunc(checks.CodeOfConduct)},
	}

	return criteria, extras
}
