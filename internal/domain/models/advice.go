package models

// Suggestion es una recomendación de mejora derivada de un reporte.
type Suggestion struct {
	// CriterionID referencia el criterio que motiva la sugerencia, si aplica.
	CriterionID string `json:"criterion_id,omitempty"`
	Title       string `json:"title"`
	Detail      string `json:"detail"`
	// Priority ordena las sugerencias: 1 es la más urgente.
	Priority int `json:"priority"`
}
