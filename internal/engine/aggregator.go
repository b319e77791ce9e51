package engine

import (
	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
)

// pillarSummaries agrega los resultados por pilar, en el orden fijo de los 8
// pilares. Los outcomes "skip" no cuentan ni en passed ni en total.
func pillarSummaries(results []models.CriterionResult) []models.PillarSummary {
	summaries := make([]models.PillarSummary, 0, len(models.Pillars()))
	for _, pillar := range models.Pillars() {
		passed, total := 0, 0
		for _, r := range results {
			if r.Pillar != pillar || r.Outcome.Status == models.StatusSkip {
				continue
			}
			total++
			if r.Outcome.Status == models.StatusPass {
				passed++
			}
		}
		summaries = append(summaries, models.PillarSummary{
			ID:       pillar,
			Name:     pillar.DisplayName(),
			Passed:   passed,
			Total:    total,
			PassRate: rate(passed, total),
		})
	}
	return summaries
}

// levelSummaries agrega por nivel 1–5 y aplica la regla en cascada: el nivel
// L está logrado solo si todo nivel K ≤ L alcanza el umbral o no tiene
// criterios (vacuamente satisfecho). Retorna además el nivel logrado máximo,
// 0 si ninguno. La propiedad de prefijo monótono es el invariante clave: un
// repositorio no puede acreditar nivel 3 si falla la vara en nivel 1 o 2.
func levelSummaries(results []models.CriterionResult, passRate float64) ([]models.LevelSummary, int) {
	summaries := make([]models.LevelSummary, 0, models.MaxLevel)
	achievedLevel := 0
	cascade := true

	for level := models.MinLevel; level <= models.MaxLevel; level++ {
		passed, total := 0, 0
		for _, r := range results {
			if r.Level != level || r.Outcome.Status == models.StatusSkip {
				continue
			}
			total++
			if r.Outcome.Status == models.StatusPass {
				passed++
			}
		}

		levelRate := rate(passed, total)
		meetsBar := total == 0 || levelRate >= passRate
		cascade = cascade && meetsBar
		if cascade {
			achievedLevel = level
		}

		summaries = append(summaries, models.LevelSummary{
			Level:    level,
			Name:     models.LevelName(level),
			Passed:   passed,
			Total:    total,
			PassRate: levelRate,
			Achieved: cascade,
		})
	}

	return summaries, achievedLevel
}

// overallPassRate es passed/total sobre todos los criterios no omitidos.
func overallPassRate(results []models.CriterionResult) float64 {
	passed, total := 0, 0
	for _, r := range results {
		if r.Outcome.Status == models.StatusSkip {
			continue
		}
		total++
		if r.Outcome.Status == models.StatusPass {
			passed++
		}
	}
	return rate(passed, total)
}

func rate(passed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(passed) / float64(total)
}
