package models

import "time"

// AppAggregate resume la ejecución de un criterio de scope "app" a través de
// todas las unidades de aplicación.
type AppAggregate struct {
	Passed   int     `json:"passed"`
	Total    int     `json:"total"`
	PassRate float64 `json:"passRate"`
	// Failing lista los nombres de las aplicaciones que no pasaron el check.
	Failing []string `json:"failing,omitempty"`
}

// CriterionResult combina los campos estáticos de un criterio con su outcome.
// Para criterios de scope "app", Apps trae el agregado por aplicación (nil
// cuando el criterio se omitió por no haber aplicaciones).
type CriterionResult struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Pillar  Pillar       `json:"pillar"`
	Level   int          `json:"level"`
	Scope   Scope        `json:"scope"`
	Impact  Rating       `json:"impact"`
	Effort  Rating       `json:"effort"`
	Outcome CheckOutcome `json:"outcome"`
	Apps    *AppAggregate `json:"apps,omitempty"`
}

// ExtraResult es el resultado plano de un extra.
type ExtraResult struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Outcome CheckOutcome `json:"outcome"`
}

// PillarSummary agrega los resultados de un pilar. Los outcomes "skip" no
// cuentan para passed ni total.
type PillarSummary struct {
	ID       Pillar  `json:"id"`
	Name     string  `json:"name"`
	Passed   int     `json:"passed"`
	Total    int     `json:"total"`
	PassRate float64 `json:"passRate"`
}

// LevelSummary agrega los resultados de un nivel de madurez 1–5.
type LevelSummary struct {
	Level    int     `json:"level"`
	Name     string  `json:"name"`
	Passed   int     `json:"passed"`
	Total    int     `json:"total"`
	PassRate float64 `json:"passRate"`
	// Achieved aplica la regla en cascada: el nivel L está logrado solo si
	// todo nivel K ≤ L cumple el umbral (o no tiene criterios).
	Achieved bool `json:"achieved"`
}

// AppSummary identifica una unidad de aplicación en el reporte.
type AppSummary struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// AreaCriterion es la vista por área de un criterio de scope "app": el
// outcome de ese criterio en una unidad concreta.
type AreaCriterion struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Pillar  Pillar       `json:"pillar"`
	Level   int          `json:"level"`
	Outcome CheckOutcome `json:"outcome"`
}

// AreaBreakdown replica la forma pilares/criterios para una unidad de
// aplicación, con las mismas reglas de agregación.
type AreaBreakdown struct {
	Name     string          `json:"name"`
	Path     string          `json:"path"`
	Pillars  []PillarSummary `json:"pillars"`
	Criteria []AreaCriterion `json:"criteria"`
}

// ReadinessReport es el reporte final: un snapshot terminal, autodescriptivo
// y serializable directamente. Se produce una vez y no se actualiza.
type ReadinessReport struct {
	RepoPath    string    `json:"repo_path"`
	GeneratedAt time.Time `json:"generated_at"`
	Monorepo    bool      `json:"monorepo"`

	Apps []AppSummary `json:"apps"`

	Pillars []PillarSummary `json:"pillars"`
	Levels  []LevelSummary  `json:"levels"`

	// AchievedLevel es el máximo nivel logrado según la regla en cascada,
	// 0 si ninguno.
	AchievedLevel int `json:"achieved_level"`
	// OverallPassRate es passed/total sobre todos los criterios no omitidos.
	OverallPassRate float64 `json:"overall_pass_rate"`

	Criteria []CriterionResult `json:"criteria"`
	Extras   []ExtraResult     `json:"extras"`

	Areas []AreaBreakdown `json:"areas,omitempty"`

	// Policies es la cadena de políticas aplicadas, en orden.
	Policies   []string   `json:"policies"`
	Thresholds Thresholds `json:"thresholds"`
}
