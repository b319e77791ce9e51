package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	domainErrors "github.com/Tomas-vilte/ReadyMate/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestContextBuilderBuild(t *testing.T) {
	builder := NewContextBuilder()
	ctx := context.Background()

	t.Run("should fail for a missing path", func(t *testing.T) {
		// Act
		_, err := builder.Build(ctx, filepath.Join(t.TempDir(), "nope"))

		// Assert
		require.Error(t, err)
		var appErr *domainErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainErrors.TypeContext, appErr.Type)
	})

	t.Run("should fail when the path is a file", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		writeFile(t, dir, "archivo.txt", "x")

		// Act
		_, err := builder.Build(ctx, filepath.Join(dir, "archivo.txt"))

		// Assert
		require.Error(t, err)
		var appErr *domainErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainErrors.TypeContext, appErr.Type)
	})

	t.Run("should build a context for a plain npm repository", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		writeFile(t, dir, "package.json", `{
			"name": "widgets",
			"scripts": {"build": "tsc", "test": "vitest"},
			"dependencies": {"react": "^18.0.0"},
			"engines": {"node": ">=20"}
		}`)
		writeFile(t, dir, "README.md", "# widgets")

		// Act
		rctx, err := builder.Build(ctx, dir)

		// Assert
		require.NoError(t, err)
		assert.Contains(t, rctx.RootFiles, "package.json")
		assert.Contains(t, rctx.RootFiles, "README.md")
		require.NotNil(t, rctx.Manifest)
		assert.Equal(t, "package.json", rctx.Manifest.Kind)
		assert.Equal(t, "widgets", rctx.Manifest.Name)
		assert.True(t, rctx.Manifest.HasScript("build"))
		assert.True(t, rctx.Manifest.HasDependency("react"))
		assert.False(t, rctx.Monorepo)
		assert.Empty(t, rctx.Apps)
	})

	t.Run("should detect npm workspaces as application units", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		writeFile(t, dir, "package.json", `{"name": "root", "workspaces": ["apps/*"]}`)
		writeFile(t, dir, "apps/web/package.json", `{"name": "@acme/web"}`)
		writeFile(t, dir, "apps/web/index.ts", "")
		writeFile(t, dir, "apps/api/package.json", `{"name": "@acme/api"}`)

		// Act
		rctx, err := builder.Build(ctx, dir)

		// Assert
		require.NoError(t, err)
		assert.True(t, rctx.Monorepo)
		require.Len(t, rctx.Apps, 2)
		assert.Equal(t, "apps/api", rctx.Apps[0].Path)
		assert.Equal(t, "@acme/api", rctx.Apps[0].Name)
		assert.Equal(t, "@acme/web", rctx.Apps[1].Name)
		assert.Contains(t, rctx.Apps[1].Files, "index.ts")
	})

	t.Run("should mark a single-workspace repository as monorepo", func(t *testing.T) {
		// Arrange: un solo workspace declarado sigue siendo un monorepo.
		dir := t.TempDir()
		writeFile(t, dir, "package.json", `{"name": "root", "workspaces": ["apps/*"]}`)
		writeFile(t, dir, "apps/solo/package.json", `{"name": "solo"}`)

		// Act
		rctx, err := builder.Build(ctx, dir)

		// Assert
		require.NoError(t, err)
		assert.True(t, rctx.Monorepo)
		assert.Len(t, rctx.Apps, 1)
	})

	t.Run("should detect cmd directories in a Go repository", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		writeFile(t, dir, "go.mod", "module example.com/tool\n\ngo 1.23.0\n\nrequire (\n\tgithub.com/stretchr/testify v1.9.0\n)\n")
		writeFile(t, dir, "cmd/server/main.go", "package main")
		writeFile(t, dir, "cmd/worker/main.go", "package main")
		writeFile(t, dir, "cmd/docs/notes.txt", "sin fuentes go")

		// Act
		rctx, err := builder.Build(ctx, dir)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, rctx.Manifest)
		assert.Equal(t, "go.mod", rctx.Manifest.Kind)
		assert.Equal(t, "example.com/tool", rctx.Manifest.Name)
		assert.Equal(t, "1.23.0", rctx.Manifest.Engines["go"])
		assert.True(t, rctx.Manifest.HasDependency("github.com/stretchr/testify"))
		require.Len(t, rctx.Apps, 2)
		assert.Equal(t, "cmd/server", rctx.Apps[0].Path)
		assert.Equal(t, "cmd/worker", rctx.Apps[1].Path)
		assert.True(t, rctx.Monorepo)
	})

	t.Run("should fall back to conventional app directories", func(t *testing.T) {
		// Arrange: sin workspaces ni go.mod raíz, se exploran apps/, packages/
		// y services/ buscando manifiestos propios.
		dir := t.TempDir()
		writeFile(t, dir, "services/auth/go.mod", "module example.com/auth\n")
		writeFile(t, dir, "services/billing/package.json", `{"name": "billing"}`)
		writeFile(t, dir, "services/empty/notes.txt", "sin manifiesto")

		// Act
		rctx, err := builder.Build(ctx, dir)

		// Assert
		require.NoError(t, err)
		assert.Nil(t, rctx.Manifest)
		require.Len(t, rctx.Apps, 2)
		assert.Equal(t, "services/auth", rctx.Apps[0].Path)
		assert.Equal(t, "billing", rctx.Apps[1].Name)
		assert.True(t, rctx.Monorepo)
	})

	t.Run("should merge pnpm workspaces with package.json", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		writeFile(t, dir, "package.json", `{"name": "root"}`)
		writeFile(t, dir, "pnpm-workspace.yaml", "packages:\n  - packages/*\n")
		writeFile(t, dir, "packages/ui/package.json", `{"name": "ui"}`)

		// Act
		rctx, err := builder.Build(ctx, dir)

		// Assert
		require.NoError(t, err)
		assert.True(t, rctx.Monorepo)
		require.Len(t, rctx.Apps, 1)
		assert.Equal(t, "ui", rctx.Apps[0].Name)
	})

	t.Run("should treat an unreadable manifest as absent", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		writeFile(t, dir, "package.json", "{no es json")

		// Act
		rctx, err := builder.Build(ctx, dir)

		// Assert
		require.NoError(t, err)
		assert.Nil(t, rctx.Manifest)
	})

	t.Run("should skip generated directories when listing unit files", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		writeFile(t, dir, "package.json", `{"name": "root", "workspaces": ["apps/*"]}`)
		writeFile(t, dir, "apps/web/package.json", `{"name": "web"}`)
		writeFile(t, dir, "apps/web/src/main.ts", "")
		writeFile(t, dir, "apps/web/node_modules/react/index.js", "")
		writeFile(t, dir, "apps/web/dist/bundle.js", "")

		// Act
		rctx, err := builder.Build(ctx, dir)

		// Assert
		require.NoError(t, err)
		require.Len(t, rctx.Apps, 1)
		files := rctx.Apps[0].Files
		assert.Contains(t, files, "src/main.ts")
		assert.NotContains(t, files, "node_modules/react/index.js")
		assert.NotContains(t, files, "dist/bundle.js")
	})
}

func TestParseWorkspacesField(t *testing.T) {
	t.Run("should accept the array form", func(t *testing.T) {
		assert.Equal(t, []string{"apps/*"}, parseWorkspacesField([]byte(`["apps/*"]`)))
	})

	t.Run("should accept the object form with packages", func(t *testing.T) {
		assert.Equal(t, []string{"pkgs/*"}, parseWorkspacesField([]byte(`{"packages": ["pkgs/*"]}`)))
	})

	t.Run("should return nil for absent or malformed values", func(t *testing.T) {
		assert.Nil(t, parseWorkspacesField(nil))
		assert.Nil(t, parseWorkspacesField([]byte(`42`)))
	})
}

func TestParseGoWork(t *testing.T) {
	t.Run("should collect use directives in block and single form", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		writeFile(t, dir, "go.work", "go 1.23\n\nuse ./tools\n\nuse (\n\t./api\n\t./worker\n)\n")

		// Act
		uses := parseGoWork(dir)

		// Assert
		assert.Equal(t, []string{"tools", "api", "worker"}, uses)
	})

	t.Run("should return nil when go.work is absent", func(t *testing.T) {
		assert.Nil(t, parseGoWork(t.TempDir()))
	})
}
