package policy

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
)

// Packs incorporados: políticas de código con checks reales, cargadas bajo
// trust "full". Son el equivalente ejecutable de un archivo de política; un
// archivo de datos nunca puede expresar lo que hacen estos packs (agregar
// definiciones con checks).
func BuiltinPacks() map[string]models.Policy {
	return map[string]models.Policy{
		"strict":   strictPack(),
		"minimal":  minimalPack(),
		"ai-first": aiFirstPack(),
		"oss":      ossPack(),
	}
}

// PackNames retorna los nombres de packs disponibles, para mensajes de error
// y completions.
func PackNames() []string {
	return []string{"ai-first", "minimal", "oss", "strict"}
}

// strict sube la vara: 90% por nivel y los criterios de automatización y de
// contexto para IA pasan a ser de alto impacto temprano.
func strictPack() models.Policy {
	rate := 0.9
	return models.Policy{
		Name: "strict",
		Criteria: models.CriteriaDelta{
			Override: map[string]models.CriterionPatch{
				"ai-context-file": {Level: intPtr(2), Impact: ratingPtr(models.RatingHigh)},
				"coverage-config": {Impact: ratingPtr(models.RatingHigh)},
			},
		},
		Thresholds: &models.ThresholdsSet{PassRate: &rate},
	}
}

// minimal recorta el catálogo a lo esencial para repositorios chicos.
func minimalPack() models.Policy {
	rate := 0.6
	return models.Policy{
		Name: "minimal",
		Criteria: models.CriteriaDelta{
			Disable: []string{
				"coverage-config",
				"release-automation",
				"adr-records",
				"e2e-tests",
				"app-ai-instructions",
			},
		},
		Extras: models.ExtrasDelta{
			Disable: []string{"code-of-conduct"},
		},
		Thresholds: &models.ThresholdsSet{PassRate: &rate},
	}
}

// ai-first prioriza la preparación para herramientas de IA: el archivo de
// contexto pasa a nivel 1 y se agrega un criterio propio con check real.
func aiFirstPack() models.Policy {
	return models.Policy{
		Name: "ai-first",
		Criteria: models.CriteriaDelta{
			Override: map[string]models.CriterionPatch{
				"ai-context-file":     {Level: intPtr(1), Impact: ratingPtr(models.RatingHigh)},
				"app-ai-instructions": {Level: intPtr(3)},
			},
			Add: []models.Criterion{
				{
					ID:     "ai-ignore-file",
					Title:  "AI ignore file limits model context",
					Pillar: models.PillarAI,
					Level:  2,
					Scope:  models.ScopeRepo,
					Impact: models.RatingMedium,
					Effort: models.RatingLow,
					Check: models.CheckFunc(func(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
						if name, ok := rctx.HasRootFile(".aiignore", ".cursorignore", ".aiexclude"); ok {
							return models.Pass(name)
						}
						return models.Fail("no hay archivo de exclusión para herramientas de IA (.aiignore, .cursorignore)")
					}),
				},
			},
		},
	}
}

// oss agrega los indicadores de salud comunitaria que GitHub espera en
// proyectos open source.
func ossPack() models.Policy {
	return models.Policy{
		Name: "oss",
		Criteria: models.CriteriaDelta{
			Add: []models.Criterion{
				{
					ID:     "community-templates",
					Title:  "Issue and pull request templates",
					Pillar: models.PillarDocs,
					Level:  3,
					Scope:  models.ScopeRepo,
					Impact: models.RatingMedium,
					Effort: models.RatingLow,
					Check: models.CheckFunc(func(ctx context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
						return checkCommunityTemplates(rctx)
					}),
				},
			},
		},
		Extras: models.ExtrasDelta{
			Add: []models.Extra{
				{
					ID:    "funding-file",
					Title: "Funding configuration",
					Check: models.CheckFunc(func(_ context.Context, rctx *models.RepoContext, _ *models.AppUnit) models.CheckOutcome {
						if name, ok := rctx.HasRootFile("FUNDING.yml"); ok {
							return models.Pass(name)
						}
						if fileExistsUnder(rctx.Path, ".github/FUNDING.yml") {
							return models.Pass(".github/FUNDING.yml")
						}
						return models.Fail("no hay configuración de funding")
					}),
				},
			},
		},
	}
}

func checkCommunityTemplates(rctx *models.RepoContext) models.CheckOutcome {
	var evidence []string
	if fileExistsUnder(rctx.Path, ".github/ISSUE_TEMPLATE") {
		evidence = append(evidence, ".github/ISSUE_TEMPLATE")
	}
	if fileExistsUnder(rctx.Path, ".github/PULL_REQUEST_TEMPLATE.md") {
		evidence = append(evidence, ".github/PULL_REQUEST_TEMPLATE.md")
	}
	if len(evidence) == 0 {
		return models.Fail("no hay templates de issues ni de pull requests en .github/")
	}
	return models.Pass(evidence...)
}

func fileExistsUnder(root, rel string) bool {
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil
}

func intPtr(v int) *int                    { return &v }
func ratingPtr(v models.Rating) *models.Rating { return &v }
