package ports

import (
	"context"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
)

// ContextBuilder construye la foto de solo lectura del repositorio que
// consume el motor de evaluación.
type ContextBuilder interface {
	// Build analiza el repositorio en path y retorna su contexto. Los errores
	// de contexto se consideran resueltos acá: el motor nunca reintenta la
	// construcción.
	Build(ctx context.Context, path string) (*models.RepoContext, error)
}
