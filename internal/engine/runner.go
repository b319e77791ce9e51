// Package engine ejecuta los criterios resueltos contra un contexto y agrega
// los resultados en el reporte final.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
	"github.com/Tomas-vilte/ReadyMate/internal/logger"
)

// appAggregationThreshold es la constante fija de agregación por aplicación:
// un criterio de scope "app" pasa si al menos el 80% de las aplicaciones lo
// cumplen (el límite es inclusivo). Es independiente del umbral por nivel
// configurable por políticas; son dos perillas distintas a propósito.
const appAggregationThreshold = 0.8

const reasonNoApps = "no se detectaron paquetes de aplicación"

// AppOutcome es el resultado de un criterio "app" en una unidad concreta.
type AppOutcome struct {
	App     string
	Outcome models.CheckOutcome
}

// RunResult es el resultado crudo de un criterio antes de agregarse al
// reporte.
type RunResult struct {
	Criterion models.Criterion
	Outcome   models.CheckOutcome
	// AppOutcomes conserva el detalle por aplicación para el desglose por
	// área; vacío para criterios de scope "repo".
	AppOutcomes []AppOutcome
	// Aggregate resume la corrida por aplicación; nil para scope "repo" o
	// cuando no hay aplicaciones.
	Aggregate *models.AppAggregate
}

// ExtraRunResult es el resultado crudo de un extra.
type ExtraRunResult struct {
	Extra   models.Extra
	Outcome models.CheckOutcome
}

// Runner ejecuta todos los checks de una cadena resuelta. Los criterios son
// independientes entre sí, así que se despachan en paralelo con una barrera
// de join antes de agregar: el único orden requerido es "todos los resultados
// disponibles antes del agregador".
type Runner struct{}

func NewRunner() *Runner {
	return &Runner{}
}

// Run evalúa criterios y extras contra el contexto inmutable. Nunca aborta
// por un check roto: los panics se capturan y se convierten en un outcome
// "fail" con el mensaje como motivo, sin afectar a los criterios hermanos.
func (r *Runner) Run(ctx context.Context, chain models.ResolvedChain, rctx *models.RepoContext) ([]RunResult, []ExtraRunResult) {
	results := make([]RunResult, len(chain.Criteria))
	extraResults := make([]ExtraRunResult, len(chain.Extras))

	var wg sync.WaitGroup
	for i, criterion := range chain.Criteria {
		wg.Add(1)
		go func(i int, criterion models.Criterion) {
			defer wg.Done()
			results[i] = r.runCriterion(ctx, criterion, rctx)
		}(i, criterion)
	}

	for i, extra := range chain.Extras {
		wg.Add(1)
		go func(i int, extra models.Extra) {
			defer wg.Done()
			// Los extras siguen siempre el camino de scope "repo".
			extraResults[i] = ExtraRunResult{
				Extra:   extra,
				Outcome: safeEvaluate(ctx, extra.Check, rctx, nil),
			}
		}(i, extra)
	}

	wg.Wait()
	return results, extraResults
}

func (r *Runner) runCriterion(ctx context.Context, criterion models.Criterion, rctx *models.RepoContext) RunResult {
	if criterion.Scope != models.ScopeApp {
		return RunResult{
			Criterion: criterion,
			Outcome:   safeEvaluate(ctx, criterion.Check, rctx, nil),
		}
	}

	if len(rctx.Apps) == 0 {
		return RunResult{
			Criterion: criterion,
			Outcome:   models.Skip(reasonNoApps),
		}
	}

	appOutcomes := make([]AppOutcome, len(rctx.Apps))
	passed := 0
	var failing []string
	for i := range rctx.Apps {
		app := rctx.Apps[i]
		outcome := safeEvaluate(ctx, criterion.Check, rctx, &app)
		appOutcomes[i] = AppOutcome{App: app.Name, Outcome: outcome}
		if outcome.Status == models.StatusPass {
			passed++
		} else {
			failing = append(failing, app.Name)
		}
	}

	total := len(rctx.Apps)
	rate := float64(passed) / float64(total)
	aggregate := &models.AppAggregate{
		Passed:   passed,
		Total:    total,
		PassRate: rate,
		Failing:  failing,
	}

	outcome := models.CheckOutcome{Status: models.StatusPass}
	if rate < appAggregationThreshold {
		outcome = models.Fail(fmt.Sprintf("solo %d de %d aplicaciones cumplen el criterio", passed, total))
	}

	return RunResult{
		Criterion:   criterion,
		Outcome:     outcome,
		AppOutcomes: appOutcomes,
		Aggregate:   aggregate,
	}
}

// safeEvaluate aísla la invocación de un check: un panic del check se captura
// acá y degrada a un fail del criterio en lugar de tumbar el reporte entero.
func safeEvaluate(ctx context.Context, check models.CriterionCheck, rctx *models.RepoContext, app *models.AppUnit) (outcome models.CheckOutcome) {
	defer func() {
		if recovered := recover(); recovered != nil {
			logger.Warn(ctx, "check con panic capturado", "panic", recovered)
			outcome = models.Fail(fmt.Sprintf("el check falló: %v", recovered))
		}
	}()

	if check == nil {
		return models.Fail("el criterio no define un check ejecutable")
	}

	return check.Evaluate(ctx, rctx, app)
}
