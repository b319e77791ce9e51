package policy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
	domainErrors "github.com/Tomas-vilte/ReadyMate/internal/errors"
	"gopkg.in/yaml.v3"
)

// Loader resuelve referencias de política. Una referencia puede ser el nombre
// de un pack incorporado (política de código, trust "full") o la ruta a un
// archivo de datos puros (.json, .yaml, .yml, .toml — siempre "dataOnly").
// El caller puede forzar "dataOnly" para todas las referencias cuando solo
// debe confiarse en configuración de datos verificada.
type Loader struct {
	packs map[string]models.Policy
}

// NewLoader crea un loader con los packs de código disponibles por nombre.
func NewLoader(packs map[string]models.Policy) *Loader {
	if packs == nil {
		packs = make(map[string]models.Policy)
	}
	return &Loader{packs: packs}
}

// SplitRefs separa una lista de referencias separadas por coma, descartando
// entradas vacías. El orden izquierda→derecha es el orden del fold.
func SplitRefs(list string) []string {
	parts := strings.Split(list, ",")
	refs := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			refs = append(refs, p)
		}
	}
	return refs
}

// Load resuelve una referencia bajo el trust mode dado. Los nombres de pack
// tienen prioridad sobre las rutas de archivo.
func (l *Loader) Load(ref string, mode TrustMode) (models.Policy, error) {
	if pack, ok := l.packs[ref]; ok {
		if err := ValidateCode(pack, mode, "pack:"+ref); err != nil {
			return models.Policy{}, err
		}
		return pack, nil
	}
	return l.LoadFile(ref, mode)
}

// LoadAll resuelve una lista ordenada de referencias; falla en la primera
// referencia inválida sin evaluar nada.
func (l *Loader) LoadAll(refs []string, mode TrustMode) ([]models.Policy, error) {
	policies := make([]models.Policy, 0, len(refs))
	for _, ref := range refs {
		p, err := l.Load(ref, mode)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, nil
}

// LoadFile parsea un archivo de política de datos puros. El formato se
// despacha por extensión y el contenido se valida con las reglas de §4.1.
func (l *Loader) LoadFile(path string, mode TrustMode) (models.Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Policy{}, domainErrors.ErrPolicyNotFound.
				WithContext("source", path).
				WithError(err)
		}
		return models.Policy{}, policyError(path, "no se pudo leer el archivo: %v", err)
	}

	var raw interface{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return models.Policy{}, policyError(path, "JSON inválido: %v", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return models.Policy{}, policyError(path, "YAML inválido: %v", err)
		}
		raw = normalizeYAML(raw)
	case ".toml":
		record := map[string]interface{}{}
		if err := toml.Unmarshal(data, &record); err != nil {
			return models.Policy{}, policyError(path, "TOML inválido: %v", err)
		}
		raw = record
	default:
		return models.Policy{}, domainErrors.ErrPolicyFormat.
			WithContext("source", path).
			WithError(fmt.Errorf("extensión %q", ext))
	}

	return buildPolicy(raw, mode, path)
}

// normalizeYAML convierte los mapas map[interface{}]interface{} que puede
// producir yaml.v3 en map[string]interface{}, para que la validación vea la
// misma forma con los tres decoders.
func normalizeYAML(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[key] = normalizeYAML(item)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			name, ok := key.(string)
			if !ok {
				name = fmt.Sprintf("%v", key)
			}
			out[name] = normalizeYAML(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = normalizeYAML(item)
		}
		return out
	default:
		return value
	}
}
