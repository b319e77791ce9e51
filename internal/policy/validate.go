package policy

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
	domainErrors "github.com/Tomas-vilte/ReadyMate/internal/errors"
)

// TrustMode determina qué puede hacer una fuente de política. Las políticas
// de datos puros (archivos) nunca pueden agregar definiciones con checks
// ejecutables; solo las políticas de código (packs) corren con TrustFull.
type TrustMode string

const (
	TrustDataOnly TrustMode = "dataOnly"
	TrustFull     TrustMode = "full"
)

// Claves permitidas en un override de criterio. Cualquier otra clave (en
// particular "id" y "check") se rechaza: un override cargado de datos no
// puede secuestrar la identidad ni inyectar lógica ejecutable.
var allowedOverrideKeys = map[string]struct{}{
	"title":  {},
	"pillar": {},
	"level":  {},
	"scope":  {},
	"impact": {},
	"effort": {},
}

var allowedTopLevelKeys = map[string]struct{}{
	"name":       {},
	"criteria":   {},
	"extras":     {},
	"thresholds": {},
}

func policyError(source, format string, args ...interface{}) *domainErrors.AppError {
	return domainErrors.NewAppError(domainErrors.TypePolicy, fmt.Sprintf(format, args...), nil).
		WithContext("source", source)
}

// buildPolicy valida el valor parseado de una fuente de datos y construye el
// registro Policy. Las reglas se aplican en orden y cada una produce un
// mensaje distinto nombrando el campo ofensor y la fuente.
func buildPolicy(raw interface{}, mode TrustMode, source string) (models.Policy, error) {
	record, ok := raw.(map[string]interface{})
	if !ok || record == nil {
		return models.Policy{}, policyError(source, "la política debe ser un objeto, no un escalar ni una lista")
	}

	name, ok := record["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return models.Policy{}, policyError(source, "el campo 'name' es obligatorio y no puede estar vacío")
	}

	for _, key := range sortedKeys(record) {
		if _, ok := allowedTopLevelKeys[key]; !ok {
			return models.Policy{}, policyError(source, "clave desconocida %q en la política", key)
		}
	}

	policy := models.Policy{Name: strings.TrimSpace(name)}

	if rawCriteria, present := record["criteria"]; present {
		delta, err := buildCriteriaDelta(rawCriteria, mode, source, "criteria")
		if err != nil {
			return models.Policy{}, err
		}
		policy.Criteria = delta
	}

	if rawExtras, present := record["extras"]; present {
		delta, err := buildExtrasDelta(rawExtras, mode, source)
		if err != nil {
			return models.Policy{}, err
		}
		policy.Extras = delta
	}

	if rawThresholds, present := record["thresholds"]; present {
		thresholds, err := buildThresholds(rawThresholds, source)
		if err != nil {
			return models.Policy{}, err
		}
		policy.Thresholds = thresholds
	}

	return policy, nil
}

func buildCriteriaDelta(raw interface{}, mode TrustMode, source, field string) (models.CriteriaDelta, error) {
	record, ok := raw.(map[string]interface{})
	if !ok {
		return models.CriteriaDelta{}, policyError(source, "el campo '%s' debe ser un objeto", field)
	}

	var delta models.CriteriaDelta

	if rawDisable, present := record["disable"]; present {
		disable, err := buildDisableList(rawDisable, source, field+".disable")
		if err != nil {
			return models.CriteriaDelta{}, err
		}
		delta.Disable = disable
	}

	if rawOverride, present := record["override"]; present {
		overrides, err := buildOverrides(rawOverride, source, field+".override")
		if err != nil {
			return models.CriteriaDelta{}, err
		}
		delta.Override = overrides
	}

	if rawAdd, present := record["add"]; present {
		if mode != TrustFull {
			return models.CriteriaDelta{}, policyError(source,
				"'%s.add' no está soportado en políticas de datos: solo las políticas de código pueden agregar definiciones", field)
		}
		defs, err := buildAddedCriteria(rawAdd, source, field+".add")
		if err != nil {
			return models.CriteriaDelta{}, err
		}
		delta.Add = defs
	}

	for key := range record {
		if key != "disable" && key != "override" && key != "add" {
			return models.CriteriaDelta{}, policyError(source, "clave desconocida %q en '%s'", key, field)
		}
	}

	return delta, nil
}

func buildExtrasDelta(raw interface{}, mode TrustMode, source string) (models.ExtrasDelta, error) {
	record, ok := raw.(map[string]interface{})
	if !ok {
		return models.ExtrasDelta{}, policyError(source, "el campo 'extras' debe ser un objeto")
	}

	var delta models.ExtrasDelta

	if rawDisable, present := record["disable"]; present {
		disable, err := buildDisableList(rawDisable, source, "extras.disable")
		if err != nil {
			return models.ExtrasDelta{}, err
		}
		delta.Disable = disable
	}

	if rawOverride, present := record["override"]; present {
		overrides, err := buildExtraOverrides(rawOverride, source)
		if err != nil {
			return models.ExtrasDelta{}, err
		}
		delta.Override = overrides
	}

	if rawAdd, present := record["add"]; present {
		if mode != TrustFull {
			return models.ExtrasDelta{}, policyError(source,
				"'extras.add' no está soportado en políticas de datos: solo las políticas de código pueden agregar definiciones")
		}
		defs, err := buildAddedExtras(rawAdd, source)
		if err != nil {
			return models.ExtrasDelta{}, err
		}
		delta.Add = defs
	}

	for key := range record {
		if key != "disable" && key != "override" && key != "add" {
			return models.ExtrasDelta{}, policyError(source, "clave desconocida %q en 'extras'", key)
		}
	}

	return delta, nil
}

func buildDisableList(raw interface{}, source, field string) ([]string, error) {
	items, ok := raw.([]interface{})
	if !ok {
		return nil, policyError(source, "'%s' debe ser una lista de strings", field)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		id, ok := item.(string)
		if !ok {
			return nil, policyError(source, "'%s[%d]' debe ser un string", field, i)
		}
		out = append(out, id)
	}
	return out, nil
}

func buildOverrides(raw interface{}, source, field string) (map[string]models.CriterionPatch, error) {
	record, ok := raw.(map[string]interface{})
	if !ok {
		return nil, policyError(source, "'%s' debe ser un objeto de id → metadata", field)
	}

	out := make(map[string]models.CriterionPatch, len(record))
	for _, id := range sortedKeys(record) {
		rawPatch, ok := record[id].(map[string]interface{})
		if !ok {
			return nil, policyError(source, "'%s.%s' debe ser un objeto", field, id)
		}

		var patch models.CriterionPatch
		for _, key := range sortedKeys(rawPatch) {
			if _, allowed := allowedOverrideKeys[key]; !allowed {
				return nil, policyError(source, "'%s.%s': clave no permitida %q (solo title, pillar, level, scope, impact, effort)", field, id, key)
			}
			value := rawPatch[key]
			switch key {
			case "title":
				title, ok := value.(string)
				if !ok {
					return nil, policyError(source, "'%s.%s.title' debe ser un string", field, id)
				}
				patch.Title = &title
			case "pillar":
				pillar, err := parsePillar(value, source, fmt.Sprintf("%s.%s.pillar", field, id))
				if err != nil {
					return nil, err
				}
				patch.Pillar = &pillar
			case "level":
				level, err := parseLevel(value, source, fmt.Sprintf("%s.%s.level", field, id))
				if err != nil {
					return nil, err
				}
				patch.Level = &level
			case "scope":
				scope, err := parseScope(value, source, fmt.Sprintf("%s.%s.scope", field, id))
				if err != nil {
					return nil, err
				}
				patch.Scope = &scope
			case "impact":
				rating, err := parseRating(value, source, fmt.Sprintf("%s.%s.impact", field, id))
				if err != nil {
					return nil, err
				}
				patch.Impact = &rating
			case "effort":
				rating, err := parseRating(value, source, fmt.Sprintf("%s.%s.effort", field, id))
				if err != nil {
					return nil, err
				}
				patch.Effort = &rating
			}
		}
		out[id] = patch
	}
	return out, nil
}

func buildExtraOverrides(raw interface{}, source string) (map[string]models.ExtraPatch, error) {
	record, ok := raw.(map[string]interface{})
	if !ok {
		return nil, policyError(source, "'extras.override' debe ser un objeto de id → metadata")
	}

	out := make(map[string]models.ExtraPatch, len(record))
	for _, id := range sortedKeys(record) {
		rawPatch, ok := record[id].(map[string]interface{})
		if !ok {
			return nil, policyError(source, "'extras.override.%s' debe ser un objeto", id)
		}

		var patch models.ExtraPatch
		for _, key := range sortedKeys(rawPatch) {
			if key != "title" {
				return nil, policyError(source, "'extras.override.%s': clave no permitida %q (solo title)", id, key)
			}
			title, ok := rawPatch[key].(string)
			if !ok {
				return nil, policyError(source, "'extras.override.%s.title' debe ser un string", id)
			}
			patch.Title = &title
		}
		out[id] = patch
	}
	return out, nil
}

// buildAddedCriteria parsea definiciones 'add' de una fuente de datos cargada
// con TrustFull explícito. Un archivo no puede transportar lógica ejecutable,
// así que las definiciones quedan sin check; el runner las reporta como fail.
func buildAddedCriteria(raw interface{}, source, field string) ([]models.Criterion, error) {
	items, ok := raw.([]interface{})
	if !ok {
		return nil, policyError(source, "'%s' debe ser una lista de definiciones", field)
	}

	out := make([]models.Criterion, 0, len(items))
	for i, item := range items {
		record, ok := item.(map[string]interface{})
		if !ok {
			return nil, policyError(source, "'%s[%d]' debe ser un objeto", field, i)
		}

		id, ok := record["id"].(string)
		if !ok || strings.TrimSpace(id) == "" {
			return nil, policyError(source, "'%s[%d].id' es obligatorio", field, i)
		}
		title, ok := record["title"].(string)
		if !ok || strings.TrimSpace(title) == "" {
			return nil, policyError(source, "'%s[%d].title' es obligatorio", field, i)
		}
		pillar, err := parsePillar(record["pillar"], source, fmt.Sprintf("%s[%d].pillar", field, i))
		if err != nil {
			return nil, err
		}
		level, err := parseLevel(record["level"], source, fmt.Sprintf("%s[%d].level", field, i))
		if err != nil {
			return nil, err
		}
		scope, err := parseScope(record["scope"], source, fmt.Sprintf("%s[%d].scope", field, i))
		if err != nil {
			return nil, err
		}
		impact, err := parseRating(record["impact"], source, fmt.Sprintf("%s[%d].impact", field, i))
		if err != nil {
			return nil, err
		}
		effort, err := parseRating(record["effort"], source, fmt.Sprintf("%s[%d].effort", field, i))
		if err != nil {
			return nil, err
		}

		out = append(out, models.Criterion{
			ID:     id,
			Title:  title,
			Pillar: pillar,
			Level:  level,
			Scope:  scope,
			Impact: impact,
			Effort: effort,
		})
	}
	return out, nil
}

func buildAddedExtras(raw interface{}, source string) ([]models.Extra, error) {
	items, ok := raw.([]interface{})
	if !ok {
		return nil, policyError(source, "'extras.add' debe ser una lista de definiciones")
	}

	out := make([]models.Extra, 0, len(items))
	for i, item := range items {
		record, ok := item.(map[string]interface{})
		if !ok {
			return nil, policyError(source, "'extras.add[%d]' debe ser un objeto", i)
		}
		id, ok := record["id"].(string)
		if !ok || strings.TrimSpace(id) == "" {
			return nil, policyError(source, "'extras.add[%d].id' es obligatorio", i)
		}
		title, ok := record["title"].(string)
		if !ok || strings.TrimSpace(title) == "" {
			return nil, policyError(source, "'extras.add[%d].title' es obligatorio", i)
		}
		out = append(out, models.Extra{ID: id, Title: title})
	}
	return out, nil
}

func buildThresholds(raw interface{}, source string) (*models.ThresholdsSet, error) {
	record, ok := raw.(map[string]interface{})
	if !ok {
		return nil, policyError(source, "el campo 'thresholds' debe ser un objeto")
	}

	var out models.ThresholdsSet
	for _, key := range sortedKeys(record) {
		if key != "passRate" {
			return nil, policyError(source, "clave desconocida %q en 'thresholds'", key)
		}
		rate, ok := asNumber(record[key])
		if !ok {
			return nil, policyError(source, "'thresholds.passRate' debe ser un número")
		}
		if rate < 0 || rate > 1 {
			return nil, policyError(source, "'thresholds.passRate' debe estar en el intervalo [0,1], recibido %v", rate)
		}
		out.PassRate = &rate
	}
	return &out, nil
}

// ValidateCode valida una política construida en código (un pack) contra el
// trust mode pedido. Bajo TrustDataOnly los packs con 'add' se rechazan igual
// que un archivo de datos.
func ValidateCode(p models.Policy, mode TrustMode, source string) error {
	if strings.TrimSpace(p.Name) == "" {
		return policyError(source, "el campo 'name' es obligatorio y no puede estar vacío")
	}

	if mode != TrustFull {
		if len(p.Criteria.Add) > 0 {
			return policyError(source, "'criteria.add' no está soportado en políticas de datos: solo las políticas de código pueden agregar definiciones")
		}
		if len(p.Extras.Add) > 0 {
			return policyError(source, "'extras.add' no está soportado en políticas de datos: solo las políticas de código pueden agregar definiciones")
		}
	}

	for i, def := range p.Criteria.Add {
		if strings.TrimSpace(def.ID) == "" {
			return policyError(source, "'criteria.add[%d].id' es obligatorio", i)
		}
		if !def.Pillar.Valid() {
			return policyError(source, "'criteria.add[%d].pillar' no es un pilar válido: %q", i, def.Pillar)
		}
		if def.Level < models.MinLevel || def.Level > models.MaxLevel {
			return policyError(source, "'criteria.add[%d].level' debe estar entre %d y %d", i, models.MinLevel, models.MaxLevel)
		}
		if !def.Scope.Valid() {
			return policyError(source, "'criteria.add[%d].scope' debe ser 'repo' o 'app'", i)
		}
		if def.Check == nil {
			return policyError(source, "'criteria.add[%d]' no define un check ejecutable", i)
		}
	}

	for i, def := range p.Extras.Add {
		if strings.TrimSpace(def.ID) == "" {
			return policyError(source, "'extras.add[%d].id' es obligatorio", i)
		}
		if def.Check == nil {
			return policyError(source, "'extras.add[%d]' no define un check ejecutable", i)
		}
	}

	if p.Thresholds != nil && p.Thresholds.PassRate != nil {
		rate := *p.Thresholds.PassRate
		if rate < 0 || rate > 1 {
			return policyError(source, "'thresholds.passRate' debe estar en el intervalo [0,1], recibido %v", rate)
		}
	}

	return nil
}

func parsePillar(value interface{}, source, field string) (models.Pillar, error) {
	s, ok := value.(string)
	if !ok {
		return "", policyError(source, "'%s' debe ser un string", field)
	}
	pillar := models.Pillar(s)
	if !pillar.Valid() {
		return "", policyError(source, "'%s' no es un pilar válido: %q", field, s)
	}
	return pillar, nil
}

func parseLevel(value interface{}, source, field string) (int, error) {
	n, ok := asNumber(value)
	if !ok {
		return 0, policyError(source, "'%s' debe ser un número", field)
	}
	if n != math.Trunc(n) {
		return 0, policyError(source, "'%s' debe ser un entero", field)
	}
	level := int(n)
	if level < models.MinLevel || level > models.MaxLevel {
		return 0, policyError(source, "'%s' debe estar entre %d y %d, recibido %d", field, models.MinLevel, models.MaxLevel, level)
	}
	return level, nil
}

func parseScope(value interface{}, source, field string) (models.Scope, error) {
	s, ok := value.(string)
	if !ok {
		return "", policyError(source, "'%s' debe ser un string", field)
	}
	scope := models.Scope(s)
	if !scope.Valid() {
		return "", policyError(source, "'%s' debe ser 'repo' o 'app', recibido %q", field, s)
	}
	return scope, nil
}

func parseRating(value interface{}, source, field string) (models.Rating, error) {
	s, ok := value.(string)
	if !ok {
		return "", policyError(source, "'%s' debe ser un string", field)
	}
	rating := models.Rating(s)
	if !rating.Valid() {
		return "", policyError(source, "'%s' debe ser 'high', 'medium' o 'low', recibido %q", field, s)
	}
	return rating, nil
}

// asNumber normaliza los tipos numéricos que producen los distintos
// decoders (encoding/json, yaml.v3, BurntSushi/toml).
func asNumber(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func sortedKeys(record map[string]interface{}) []string {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
