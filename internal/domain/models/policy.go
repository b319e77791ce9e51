package models

// DefaultPassRate es el umbral de aprobación por nivel cuando ninguna
// política lo configura.
const DefaultPassRate = 0.8

// Policy es un delta de configuración nombrado y componible que altera la
// lista base de criterios/extras y los umbrales. Las instancias son registros
// de valor: el resolver nunca las modifica.
type Policy struct {
	Name       string         `json:"name"`
	Criteria   CriteriaDelta  `json:"criteria"`
	Extras     ExtrasDelta    `json:"extras"`
	Thresholds *ThresholdsSet `json:"thresholds,omitempty"`
}

// CriteriaDelta agrupa las tres operaciones de una política sobre criterios.
type CriteriaDelta struct {
	// Disable lista los ids a remover.
	Disable []string `json:"disable,omitempty"`
	// Override mapea id → metadata parcial permitida. Nunca toca id ni check.
	Override map[string]CriterionPatch `json:"override,omitempty"`
	// Add define criterios nuevos o de reemplazo. Solo permitido en políticas
	// de código (trust mode "full").
	Add []Criterion `json:"add,omitempty"`
}

// ExtrasDelta es la estructura espejo de CriteriaDelta para los extras.
type ExtrasDelta struct {
	Disable  []string              `json:"disable,omitempty"`
	Override map[string]ExtraPatch `json:"override,omitempty"`
	Add      []Extra               `json:"add,omitempty"`
}

// CriterionPatch es la metadata parcial que un override puede aplicar sobre
// un criterio existente. Los campos nil se dejan como están.
type CriterionPatch struct {
	Title  *string `json:"title,omitempty"`
	Pillar *Pillar `json:"pillar,omitempty"`
	Level  *int    `json:"level,omitempty"`
	Scope  *Scope  `json:"scope,omitempty"`
	Impact *Rating `json:"impact,omitempty"`
	Effort *Rating `json:"effort,omitempty"`
}

// ExtraPatch es la metadata parcial aplicable sobre un extra.
type ExtraPatch struct {
	Title *string `json:"title,omitempty"`
}

// ThresholdsSet son los umbrales configurables por política. Los campos nil
// no pisan el valor acumulado.
type ThresholdsSet struct {
	PassRate *float64 `json:"passRate,omitempty"`
}

// Thresholds es el conjunto final de umbrales de una cadena resuelta; siempre
// contiene un PassRate (con default si ninguna política lo fijó).
type Thresholds struct {
	PassRate float64 `json:"passRate"`
}

// ResolvedChain es la salida del fold de políticas sobre el registro base.
type ResolvedChain struct {
	Criteria   []Criterion `json:"criteria"`
	Extras     []Extra     `json:"extras"`
	Thresholds Thresholds  `json:"thresholds"`
	// Chain es el rastro de auditoría: los nombres de las políticas aplicadas
	// en orden.
	Chain []string `json:"chain"`
}
