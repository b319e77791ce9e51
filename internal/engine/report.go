package engine

import (
	"time"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
)

// AssembleReport combina los resultados crudos con los agregados por pilar y
// por nivel en el reporte final. El reporte es un snapshot terminal: se
// produce una vez y no se actualiza.
func AssembleReport(rctx *models.RepoContext, chain models.ResolvedChain, results []RunResult, extras []ExtraRunResult, generatedAt time.Time) *models.ReadinessReport {
	criterionResults := make([]models.CriterionResult, len(results))
	for i, r := range results {
		criterionResults[i] = models.CriterionResult{
			ID:      r.Criterion.ID,
			Title:   r.Criterion.Title,
			Pillar:  r.Criterion.Pillar,
			Level:   r.Criterion.Level,
			Scope:   r.Criterion.Scope,
			Impact:  r.Criterion.Impact,
			Effort:  r.Criterion.Effort,
			Outcome: r.Outcome,
			Apps:    r.Aggregate,
		}
	}

	extraResults := make([]models.ExtraResult, len(extras))
	for i, e := range extras {
		extraResults[i] = models.ExtraResult{
			ID:      e.Extra.ID,
			Title:   e.Extra.Title,
			Outcome: e.Outcome,
		}
	}

	apps := make([]models.AppSummary, len(rctx.Apps))
	for i, app := range rctx.Apps {
		apps[i] = models.AppSummary{Name: app.Name, Path: app.Path}
	}

	levels, achievedLevel := levelSummaries(criterionResults, chain.Thresholds.PassRate)

	report := &models.ReadinessReport{
		RepoPath:        rctx.Path,
		GeneratedAt:     generatedAt,
		Monorepo:        rctx.Monorepo,
		Apps:            apps,
		Pillars:         pillarSummaries(criterionResults),
		Levels:          levels,
		AchievedLevel:   achievedLevel,
		OverallPassRate: overallPassRate(criterionResults),
		Criteria:        criterionResults,
		Extras:          extraResults,
		Policies:        chain.Chain,
		Thresholds:      chain.Thresholds,
	}

	if rctx.Monorepo {
		report.Areas = areaBreakdowns(rctx, results)
	}

	return report
}

// areaBreakdowns replica la forma pilares/criterios por unidad de aplicación,
// aplicando las mismas reglas de agregación sobre los outcomes individuales
// de los criterios de scope "app".
func areaBreakdowns(rctx *models.RepoContext, results []RunResult) []models.AreaBreakdown {
	areas := make([]models.AreaBreakdown, 0, len(rctx.Apps))
	for _, app := range rctx.Apps {
		var areaCriteria []models.AreaCriterion
		var areaResults []models.CriterionResult

		for _, r := range results {
			if r.Criterion.Scope != models.ScopeApp {
				continue
			}
			for _, ao := range r.AppOutcomes {
				if ao.App != app.Name {
					continue
				}
				areaCriteria = append(areaCriteria, models.AreaCriterion{
					ID:      r.Criterion.ID,
					Title:   r.Criterion.Title,
					Pillar:  r.Criterion.Pillar,
					Level:   r.Criterion.Level,
					Outcome: ao.Outcome,
				})
				areaResults = append(areaResults, models.CriterionResult{
					ID:      r.Criterion.ID,
					Pillar:  r.Criterion.Pillar,
					Level:   r.Criterion.Level,
					Outcome: ao.Outcome,
				})
				break
			}
		}

		areas = append(areas, models.AreaBreakdown{
			Name:     app.Name,
			Path:     app.Path,
			Pillars:  pillarSummaries(areaResults),
			Criteria: areaCriteria,
		})
	}
	return areas
}
