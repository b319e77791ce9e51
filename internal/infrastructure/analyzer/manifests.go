package analyzer

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
	"gopkg.in/yaml.v3"
)

type packageJSON struct {
	Name            string            `json:"name"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Engines         map[string]string `json:"engines"`
	// Workspaces puede ser una lista de patrones o un objeto {packages: [...]}.
	Workspaces json.RawMessage `json:"workspaces"`
}

func parsePackageJSON(path string) (*models.Manifest, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error al leer el package.json: %w", err)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, nil, fmt.Errorf("error al parsear el package.json: %w", err)
	}

	manifest := &models.Manifest{
		Kind:            "package.json",
		Name:            pkg.Name,
		Scripts:         pkg.Scripts,
		Dependencies:    pkg.Dependencies,
		DevDependencies: pkg.DevDependencies,
		Engines:         pkg.Engines,
	}

	workspaces := parseWorkspacesField(pkg.Workspaces)
	manifest.Workspaces = workspaces
	return manifest, workspaces, nil
}

func parsePackageJSONIfExists(path string) (*models.Manifest, []string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil, nil
	}
	return parsePackageJSON(path)
}

func parseWorkspacesField(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var object struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(raw, &object); err == nil {
		return object.Packages
	}
	return nil
}

// parsePnpmWorkspaces lee pnpm-workspace.yaml si existe.
func parsePnpmWorkspaces(root string) []string {
	data, err := os.ReadFile(filepath.Join(root, "pnpm-workspace.yaml"))
	if err != nil {
		return nil
	}

	var doc struct {
		Packages []string `yaml:"packages"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return doc.Packages
}

// parseGoMod extrae módulo y directiva go con un escaneo de líneas; alcanza
// para la vista normalizada que consumen los checks.
func parseGoMod(path string) (*models.Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error al leer el go.mod: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	manifest := &models.Manifest{
		Kind:         "go.mod",
		Dependencies: make(map[string]string),
	}

	inRequire := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "module "):
			manifest.Name = strings.TrimSpace(strings.TrimPrefix(line, "module "))
		case strings.HasPrefix(line, "go "):
			manifest.Engines = map[string]string{"go": strings.TrimSpace(strings.TrimPrefix(line, "go "))}
		case strings.HasPrefix(line, "require ("):
			inRequire = true
		case inRequire && line == ")":
			inRequire = false
		case inRequire || strings.HasPrefix(line, "require "):
			entry := strings.TrimSpace(strings.TrimPrefix(line, "require "))
			fields := strings.Fields(entry)
			if len(fields) >= 2 && !strings.HasPrefix(fields[0], "//") {
				manifest.Dependencies[fields[0]] = fields[1]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error al escanear el go.mod: %w", err)
	}

	return manifest, nil
}

// parseGoWork extrae los directorios "use" de un go.work si existe.
func parseGoWork(root string) []string {
	file, err := os.Open(filepath.Join(root, "go.work"))
	if err != nil {
		return nil
	}
	defer func() {
		_ = file.Close()
	}()

	var uses []string
	inBlock := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "use ("):
			inBlock = true
		case inBlock && line == ")":
			inBlock = false
		case inBlock:
			if line != "" && !strings.HasPrefix(line, "//") {
				uses = append(uses, strings.TrimPrefix(line, "./"))
			}
		case strings.HasPrefix(line, "use "):
			uses = append(uses, strings.TrimPrefix(strings.TrimSpace(strings.TrimPrefix(line, "use ")), "./"))
		}
	}
	return uses
}
