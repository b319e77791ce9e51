package policy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPacks(t *testing.T) {
	t.Run("should expose the four packs by name", func(t *testing.T) {
		packs := BuiltinPacks()
		assert.Len(t, packs, 4)
		for _, name := range PackNames() {
			p, ok := packs[name]
			require.True(t, ok, "pack %s missing", name)
			assert.Equal(t, name, p.Name)
		}
	})

	t.Run("should pass ValidateCode under full trust", func(t *testing.T) {
		for name, pack := range BuiltinPacks() {
			assert.NoError(t, ValidateCode(pack, TrustFull, "pack:"+name))
		}
	})

	t.Run("every added definition should carry an executable check", func(t *testing.T) {
		for name, pack := range BuiltinPacks() {
			for _, def := range pack.Criteria.Add {
				assert.NotNil(t, def.Check, "pack %s: criterion %s without check", name, def.ID)
			}
			for _, def := range pack.Extras.Add {
				assert.NotNil(t, def.Check, "pack %s: extra %s without check", name, def.ID)
			}
		}
	})

	t.Run("ai-first ai-ignore check should pass when the file exists", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".cursorignore"), []byte("dist/\n"), 0644))
		rctx := &models.RepoContext{Path: dir, RootFiles: []string{".cursorignore"}}

		pack := BuiltinPacks()["ai-first"]
		require.Len(t, pack.Criteria.Add, 1)

		// Act
		outcome := pack.Criteria.Add[0].Check.Evaluate(context.Background(), rctx, nil)

		// Assert
		assert.Equal(t, models.StatusPass, outcome.Status)
		assert.Contains(t, outcome.Evidence, ".cursorignore")
	})

	t.Run("oss community templates check should fail on an empty repo", func(t *testing.T) {
		// Arrange
		rctx := &models.RepoContext{Path: t.TempDir()}
		pack := BuiltinPacks()["oss"]
		require.Len(t, pack.Criteria.Add, 1)

		// Act
		outcome := pack.Criteria.Add[0].Check.Evaluate(context.Background(), rctx, nil)

		// Assert
		assert.Equal(t, models.StatusFail, outcome.Status)
		assert.NotEmpty(t, outcome.Reason)
	})

	t.Run("oss funding extra should find .github/FUNDING.yml", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".github"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".github", "FUNDING.yml"), []byte("github: someone\n"), 0644))
		rctx := &models.RepoContext{Path: dir, RootFiles: []string{".github"}}

		pack := BuiltinPacks()["oss"]
		require.Len(t, pack.Extras.Add, 1)

		// Act
		outcome := pack.Extras.Add[0].Check.Evaluate(context.Background(), rctx, nil)

		// Assert
		assert.Equal(t, models.StatusPass, outcome.Status)
	})

	t.Run("minimal should trim the catalogue and lower the bar", func(t *testing.T) {
		pack := BuiltinPacks()["minimal"]
		assert.Contains(t, pack.Criteria.Disable, "e2e-tests")
		assert.Contains(t, pack.Extras.Disable, "code-of-conduct")
		require.NotNil(t, pack.Thresholds)
		require.NotNil(t, pack.Thresholds.PassRate)
		assert.Equal(t, 0.6, *pack.Thresholds.PassRate)
	})
}
