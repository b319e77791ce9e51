// Package checks implementa los predicados de verificación incorporados.
// Cada check es I/O hoja: lee la foto inmutable del repositorio (y a veces
// el filesystem bajo su raíz) y produce un outcome, sin mutar nada.
package checks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
)

func existsUnder(root, rel string) bool {
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil
}

func dirHasEntries(root, rel string) bool {
	entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil && len(entries) > 0
}

// firstUnder retorna la primera ruta relativa existente bajo root.
func firstUnder(root string, rels ...string) (string, bool) {
	for _, rel := range rels {
		if existsUnder(root, rel) {
			return rel, true
		}
	}
	return "", false
}

// rootMatch retorna la primera entrada de la raíz que satisface el predicado.
func rootMatch(rctx *models.RepoContext, match func(string) bool) (string, bool) {
	for _, f := range rctx.RootFiles {
		if match(f) {
			return f, true
		}
	}
	return "", false
}

func hasPrefixEntry(rctx *models.RepoContext, prefix string) (string, bool) {
	return rootMatch(rctx, func(f string) bool {
		return strings.HasPrefix(f, prefix)
	})
}
