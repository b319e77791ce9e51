// Package analyzer construye la foto de solo lectura del repositorio que
// consume el motor: listado de raíz, manifiesto parseado y unidades de
// aplicación detectadas. El motor trata esta foto como opaca e inmutable.
package analyzer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
	"github.com/Tomas-vilte/ReadyMate/internal/domain/ports"
	domainErrors "github.com/Tomas-vilte/ReadyMate/internal/errors"
	"github.com/Tomas-vilte/ReadyMate/internal/logger"
)

var _ ports.ContextBuilder = (*ContextBuilder)(nil)

// maxUnitFiles limita el walk por unidad de aplicación para no degradar en
// repositorios gigantes; los checks solo necesitan una muestra representativa.
const maxUnitFiles = 2000

type ContextBuilder struct{}

func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{}
}

// Build analiza el repositorio y retorna su contexto. Una vez construido, el
// contexto no se modifica más.
func (b *ContextBuilder) Build(ctx context.Context, path string) (*models.RepoContext, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error al resolver la ruta del repositorio: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, domainErrors.ErrRepoNotFound.WithContext("source", abs).WithError(err)
	}
	if !info.IsDir() {
		return nil, domainErrors.ErrNotADirectory.WithContext("source", abs)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("error al leer la raíz del repositorio: %w", err)
	}

	rootFiles := make([]string, 0, len(entries))
	for _, e := range entries {
		rootFiles = append(rootFiles, e.Name())
	}
	sort.Strings(rootFiles)

	rctx := &models.RepoContext{
		Path:      abs,
		RootFiles: rootFiles,
	}

	manifest, workspaces := b.parseRootManifest(abs, rootFiles)
	rctx.Manifest = manifest

	apps, err := b.detectApps(abs, manifest, workspaces)
	if err != nil {
		return nil, err
	}
	rctx.Apps = apps
	rctx.Monorepo = len(workspaces) > 0 || len(apps) > 1

	logger.Debug(ctx, "contexto construido",
		"path", abs,
		"apps", len(apps),
		"monorepo", rctx.Monorepo,
	)

	return rctx, nil
}

// parseRootManifest intenta package.json primero y go.mod después; retorna
// también los patrones de workspaces declarados.
func (b *ContextBuilder) parseRootManifest(root string, rootFiles []string) (*models.Manifest, []string) {
	for _, f := range rootFiles {
		if f == "package.json" {
			manifest, workspaces, err := parsePackageJSON(filepath.Join(root, f))
			if err != nil {
				// Un manifiesto ilegible cuenta como ausente; el criterio
				// manifest-present lo reporta.
				return nil, nil
			}
			if extra := parsePnpmWorkspaces(root); len(extra) > 0 {
				workspaces = append(workspaces, extra...)
			}
			return manifest, workspaces
		}
	}

	for _, f := range rootFiles {
		if f == "go.mod" {
			manifest, err := parseGoMod(filepath.Join(root, f))
			if err != nil {
				return nil, nil
			}
			return manifest, parseGoWork(root)
		}
	}

	return nil, nil
}

// detectApps enumera las unidades de aplicación: workspaces declarados,
// directorios de cmd/ en proyectos Go, o subdirectorios convencionales con
// manifiesto propio.
func (b *ContextBuilder) detectApps(root string, manifest *models.Manifest, workspaces []string) ([]models.AppUnit, error) {
	var dirs []string

	switch {
	case len(workspaces) > 0:
		dirs = expandWorkspaces(root, workspaces)
	case manifest != nil && manifest.Kind == "go.mod":
		dirs = goCommandDirs(root)
	default:
		dirs = conventionalAppDirs(root)
	}

	apps := make([]models.AppUnit, 0, len(dirs))
	seen := make(map[string]struct{}, len(dirs))
	for _, dir := range dirs {
		rel, err := filepath.Rel(root, dir)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if _, dup := seen[rel]; dup {
			continue
		}
		seen[rel] = struct{}{}

		unit := models.AppUnit{
			Name: filepath.Base(dir),
			Path: rel,
		}

		if unitManifest, _, err := parsePackageJSONIfExists(filepath.Join(dir, "package.json")); err == nil && unitManifest != nil {
			unit.Manifest = unitManifest
			if unitManifest.Name != "" {
				unit.Name = unitManifest.Name
			}
		}

		unit.Files = listUnitFiles(dir)
		apps = append(apps, unit)
	}

	sort.Slice(apps, func(i, j int) bool { return apps[i].Path < apps[j].Path })
	return apps, nil
}

// expandWorkspaces resuelve los patrones de workspaces (npm/pnpm, o los "use"
// de un go.work) a directorios existentes.
func expandWorkspaces(root string, patterns []string) []string {
	var dirs []string
	for _, pattern := range patterns {
		pattern = strings.TrimSuffix(strings.TrimSpace(pattern), "/")
		if pattern == "" || strings.HasPrefix(pattern, "!") {
			continue
		}
		matches, err := filepath.Glob(filepath.Join(root, filepath.FromSlash(pattern)))
		if err != nil {
			continue
		}
		for _, m := range matches {
			if info, err := os.Stat(m); err == nil && info.IsDir() {
				dirs = append(dirs, m)
			}
		}
	}
	return dirs
}

// goCommandDirs lista los subdirectorios de cmd/ que contienen fuentes Go.
func goCommandDirs(root string) []string {
	entries, err := os.ReadDir(filepath.Join(root, "cmd"))
	if err != nil {
		return nil
	}
	var dirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(root, "cmd", e.Name())
		if containsGoFiles(dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// conventionalAppDirs busca manifiestos en los layouts habituales de
// monorepos sin workspaces declarados.
func conventionalAppDirs(root string) []string {
	var dirs []string
	for _, parent := range []string{"apps", "packages", "services"} {
		entries, err := os.ReadDir(filepath.Join(root, parent))
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			dir := filepath.Join(root, parent, e.Name())
			if _, err := os.Stat(filepath.Join(dir, "package.json")); err == nil {
				dirs = append(dirs, dir)
				continue
			}
			if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
				dirs = append(dirs, dir)
			}
		}
	}
	return dirs
}

func containsGoFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".go") {
			return true
		}
	}
	return false
}

// listUnitFiles recorre la unidad y retorna rutas relativas a ella, con un
// tope de entradas y saltando directorios generados.
func listUnitFiles(dir string) []string {
	skip := map[string]struct{}{
		"node_modules": {},
		".git":         {},
		"dist":         {},
		"build":        {},
		"vendor":       {},
		"coverage":     {},
	}

	var files []string
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if len(files) >= maxUnitFiles {
			return filepath.SkipAll
		}
		if d.IsDir() {
			if _, ok := skip[d.Name()]; ok && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(files)
	return files
}
