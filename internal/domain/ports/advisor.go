package ports

import (
	"context"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
)

// Advisor genera sugerencias de mejora priorizadas a partir de un reporte
// terminado. Es un colaborador externo al motor: el reporte ya está completo
// cuando se invoca.
type Advisor interface {
	// GenerateAdvice retorna sugerencias en orden de prioridad.
	GenerateAdvice(ctx context.Context, report *models.ReadinessReport) ([]models.Suggestion, error)
}

// ReportPublisher publica un reporte renderizado en un destino externo
// (por ejemplo, un issue de GitHub).
type ReportPublisher interface {
	// Publish publica el reporte y retorna la URL del recurso creado.
	Publish(ctx context.Context, report *models.ReadinessReport) (string, error)
}
