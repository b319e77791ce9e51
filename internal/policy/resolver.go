package policy

import (
	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
)

// Resolve pliega la lista ordenada de políticas sobre el registro base y
// produce la configuración final. Dentro de cada política el orden es siempre
// disable → override → add; entre políticas, la última en tocar un campo gana.
// Nunca muta sus entradas: trabaja sobre copias, de modo que el mismo registro
// base puede reutilizarse entre corridas.
func Resolve(baseCriteria []models.Criterion, baseExtras []models.Extra, policies []models.Policy) models.ResolvedChain {
	criteria := make([]models.Criterion, len(baseCriteria))
	copy(criteria, baseCriteria)

	extras := make([]models.Extra, len(baseExtras))
	copy(extras, baseExtras)

	thresholds := models.Thresholds{PassRate: models.DefaultPassRate}
	chain := make([]string, 0, len(policies))

	for _, p := range policies {
		criteria = disableCriteria(criteria, p.Criteria.Disable)
		criteria = overrideCriteria(criteria, p.Criteria.Override)
		criteria = addCriteria(criteria, p.Criteria.Add)

		extras = disableExtras(extras, p.Extras.Disable)
		extras = overrideExtras(extras, p.Extras.Override)
		extras = addExtras(extras, p.Extras.Add)

		if p.Thresholds != nil && p.Thresholds.PassRate != nil {
			thresholds.PassRate = *p.Thresholds.PassRate
		}

		chain = append(chain, p.Name)
	}

	return models.ResolvedChain{
		Criteria:   criteria,
		Extras:     extras,
		Thresholds: thresholds,
		Chain:      chain,
	}
}

func disableCriteria(criteria []models.Criterion, ids []string) []models.Criterion {
	if len(ids) == 0 {
		return criteria
	}
	disabled := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		disabled[id] = struct{}{}
	}
	out := make([]models.Criterion, 0, len(criteria))
	for _, c := range criteria {
		if _, ok := disabled[c.ID]; !ok {
			out = append(out, c)
		}
	}
	return out
}

func overrideCriteria(criteria []models.Criterion, overrides map[string]models.CriterionPatch) []models.Criterion {
	if len(overrides) == 0 {
		return criteria
	}
	out := make([]models.Criterion, len(criteria))
	copy(out, criteria)
	for i, c := range out {
		patch, ok := overrides[c.ID]
		if !ok {
			// Override sobre un id inexistente es un no-op.
			continue
		}
		// ID y Check quedan siempre intactos.
		if patch.Title != nil {
			c.Title = *patch.Title
		}
		if patch.Pillar != nil {
			c.Pillar = *patch.Pillar
		}
		if patch.Level != nil {
			c.Level = *patch.Level
		}
		if patch.Scope != nil {
			c.Scope = *patch.Scope
		}
		if patch.Impact != nil {
			c.Impact = *patch.Impact
		}
		if patch.Effort != nil {
			c.Effort = *patch.Effort
		}
		out[i] = c
	}
	return out
}

// addCriteria agrega definiciones nuevas al final, o reemplaza en su posición
// a las que comparten id con una entrada existente. No consulta el conjunto
// de deshabilitados: una política posterior puede reintroducir un criterio
// deshabilitado por una anterior.
func addCriteria(criteria []models.Criterion, defs []models.Criterion) []models.Criterion {
	if len(defs) == 0 {
		return criteria
	}
	out := make([]models.Criterion, len(criteria))
	copy(out, criteria)
	for _, def := range defs {
		replaced := false
		for i, c := range out {
			if c.ID == def.ID {
				out[i] = def
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, def)
		}
	}
	return out
}

func disableExtras(extras []models.Extra, ids []string) []models.Extra {
	if len(ids) == 0 {
		return extras
	}
	disabled := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		disabled[id] = struct{}{}
	}
	out := make([]models.Extra, 0, len(extras))
	for _, e := range extras {
		if _, ok := disabled[e.ID]; !ok {
			out = append(out, e)
		}
	}
	return out
}

func overrideExtras(extras []models.Extra, overrides map[string]models.ExtraPatch) []models.Extra {
	if len(overrides) == 0 {
		return extras
	}
	out := make([]models.Extra, len(extras))
	copy(out, extras)
	for i, e := range out {
		patch, ok := overrides[e.ID]
		if !ok {
			continue
		}
		if patch.Title != nil {
			e.Title = *patch.Title
		}
		out[i] = e
	}
	return out
}

func addExtras(extras []models.Extra, defs []models.Extra) []models.Extra {
	if len(defs) == 0 {
		return extras
	}
	out := make([]models.Extra, len(extras))
	copy(out, extras)
	for _, def := range defs {
		replaced := false
		for i, e := range out {
			if e.ID == def.ID {
				out[i] = def
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, def)
		}
	}
	return out
}
