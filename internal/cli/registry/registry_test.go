package registry

import (
	"testing"

	cfg "github.com/Tomas-vilte/ReadyMate/internal/config"
	"github.com/Tomas-vilte/ReadyMate/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type stubFactory struct {
	name string
}

func (f *stubFactory) CreateCommand(_ *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{Name: f.name}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	trans, err := i18n.NewTranslations("en", t.TempDir())
	require.NoError(t, err)
	return NewRegistry(&cfg.Config{Language: "en"}, trans)
}

func TestRegistryRegister(t *testing.T) {
	t.Run("should register a factory once", func(t *testing.T) {
		// Arrange
		registry := newTestRegistry(t)

		// Act
		err := registry.Register("check", &stubFactory{name: "check"})

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should reject a duplicated name", func(t *testing.T) {
		// Arrange
		registry := newTestRegistry(t)
		require.NoError(t, registry.Register("check", &stubFactory{name: "check"}))

		// Act
		err := registry.Register("check", &stubFactory{name: "otro"})

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "check")
	})
}

func TestRegistryCreateCommands(t *testing.T) {
	t.Run("should build commands in registration order", func(t *testing.T) {
		// Arrange
		registry := newTestRegistry(t)
		for _, name := range []string{"check", "policy", "advise", "publish"} {
			require.NoError(t, registry.Register(name, &stubFactory{name: name}))
		}

		// Act
		commands := registry.CreateCommands()

		// Assert
		require.Len(t, commands, 4)
		assert.Equal(t, "check", commands[0].Name)
		assert.Equal(t, "policy", commands[1].Name)
		assert.Equal(t, "advise", commands[2].Name)
		assert.Equal(t, "publish", commands[3].Name)
	})

	t.Run("should return an empty slice without registrations", func(t *testing.T) {
		assert.Empty(t, newTestRegistry(t).CreateCommands())
	})
}
