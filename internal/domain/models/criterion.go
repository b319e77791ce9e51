package models

import "context"

// Pillar es una de las 8 categorías temáticas fijas bajo las que se agrupan
// los criterios en el reporte.
type Pillar string

const (
	PillarDocs         Pillar = "docs"
	PillarBuild        Pillar = "build"
	PillarTesting      Pillar = "testing"
	PillarAutomation   Pillar = "automation"
	PillarSecurity     Pillar = "security"
	PillarDependencies Pillar = "dependencies"
	PillarStructure    Pillar = "structure"
	PillarAI           Pillar = "ai"
)

// Pillars retorna los 8 pilares en el orden en que aparecen en el reporte.
func Pillars() []Pillar {
	return []Pillar{
		PillarDocs,
		PillarBuild,
		PillarTesting,
		PillarAutomation,
		PillarSecurity,
		PillarDependencies,
		PillarStructure,
		PillarAI,
	}
}

var pillarNames = map[Pillar]string{
	PillarDocs:         "Documentation",
	PillarBuild:        "Build System",
	PillarTesting:      "Testing",
	PillarAutomation:   "Automation",
	PillarSecurity:     "Security",
	PillarDependencies: "Dependencies",
	PillarStructure:    "Project Structure",
	PillarAI:           "AI Tooling",
}

// DisplayName retorna el nombre legible del pilar.
func (p Pillar) DisplayName() string {
	return pillarNames[p]
}

// Valid indica si el tag corresponde a uno de los 8 pilares fijos.
func (p Pillar) Valid() bool {
	_, ok := pillarNames[p]
	return ok
}

// MinLevel y MaxLevel delimitan los niveles de madurez válidos.
const (
	MinLevel = 1
	MaxLevel = 5
)

var levelNames = map[int]string{
	1: "Initial",
	2: "Managed",
	3: "Defined",
	4: "Measured",
	5: "Optimized",
}

// LevelName retorna el nombre del nivel de madurez, o "" si está fuera de rango.
func LevelName(level int) string {
	return levelNames[level]
}

// Scope indica si un criterio se evalúa una vez por repositorio o una vez por
// unidad de aplicación detectada.
type Scope string

const (
	ScopeRepo Scope = "repo"
	ScopeApp  Scope = "app"
)

func (s Scope) Valid() bool {
	return s == ScopeRepo || s == ScopeApp
}

// Rating clasifica el impacto de un criterio y el esfuerzo de remediarlo.
type Rating string

const (
	RatingHigh   Rating = "high"
	RatingMedium Rating = "medium"
	RatingLow    Rating = "low"
)

func (r Rating) Valid() bool {
	return r == RatingHigh || r == RatingMedium || r == RatingLow
}

// Status es el resultado de ejecutar un check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// CheckOutcome es el resultado crudo de un check individual.
type CheckOutcome struct {
	Status   Status   `json:"status"`
	Reason   string   `json:"reason,omitempty"`
	Evidence []string `json:"evidence,omitempty"`
}

// Pass construye un outcome exitoso con la evidencia consultada.
func Pass(evidence ...string) CheckOutcome {
	return CheckOutcome{Status: StatusPass, Evidence: evidence}
}

// Fail construye un outcome fallido con el motivo.
func Fail(reason string, evidence ...string) CheckOutcome {
	return CheckOutcome{Status: StatusFail, Reason: reason, Evidence: evidence}
}

// Skip construye un outcome omitido con el motivo.
func Skip(reason string) CheckOutcome {
	return CheckOutcome{Status: StatusSkip, Reason: reason}
}

// CriterionCheck es la capacidad de verificación de un criterio: recibe el
// contexto inmutable del repositorio y, para criterios de scope "app", la
// unidad de aplicación a evaluar (nil para scope "repo"). No debe mutar sus
// entradas.
type CriterionCheck interface {
	Evaluate(ctx context.Context, rctx *RepoContext, app *AppUnit) CheckOutcome
}

// CheckFunc adapta una función a la interfaz CriterionCheck.
type CheckFunc func(ctx context.Context, rctx *RepoContext, app *AppUnit) CheckOutcome

func (f CheckFunc) Evaluate(ctx context.Context, rctx *RepoContext, app *AppUnit) CheckOutcome {
	return f(ctx, rctx, app)
}

// Criterion es un indicador de preparación verificable de forma independiente.
// Es un registro de valor inmutable: el resolver de políticas nunca modifica
// una instancia existente, siempre produce copias.
type Criterion struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Pillar Pillar `json:"pillar"`
	Level  int    `json:"level"`
	Scope  Scope  `json:"scope"`
	Impact Rating `json:"impact"`
	Effort Rating `json:"effort"`

	// Check es el único campo no serializable del registro.
	Check CriterionCheck `json:"-"`
}

// Extra es como un criterio pero fuera del modelo pilar/nivel: solo aporta un
// resultado plano pass/fail/skip.
type Extra struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Check CriterionCheck `json:"-"`
}
