package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
	"github.com/Tomas-vilte/ReadyMate/internal/domain/ports"
	domainErrors "github.com/Tomas-vilte/ReadyMate/internal/errors"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var _ ports.Advisor = (*AdvisorService)(nil)

// AdvisorService genera sugerencias de mejora a partir de un reporte usando
// Gemini. Es un colaborador externo al motor: consume el reporte terminado.
type AdvisorService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewAdvisorService(ctx context.Context, apiKey string) (*AdvisorService, error) {
	if apiKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-flash")
	return &AdvisorService{
		client: client,
		model:  model,
	}, nil
}

func (s *AdvisorService) Close() error {
	return s.client.Close()
}

// GenerateAdvice arma el prompt con los criterios fallidos y parsea la lista
// numerada que devuelve el modelo.
func (s *AdvisorService) GenerateAdvice(ctx context.Context, report *models.ReadinessReport) ([]models.Suggestion, error) {
	if report == nil {
		return nil, fmt.Errorf("el reporte no puede ser nil")
	}

	prompt := buildPrompt(report)
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeAI, "error al generar sugerencias", err)
	}

	suggestions := parseSuggestions(formatResponse(resp))
	if len(suggestions) == 0 {
		return nil, domainErrors.NewAppError(domainErrors.TypeAI, "el modelo no devolvió sugerencias", nil)
	}

	return suggestions, nil
}

func buildPrompt(report *models.ReadinessReport) string {
	var sb strings.Builder
	sb.WriteString("Sos un asistente que ayuda a mejorar la preparación de repositorios de código.\n")
	fmt.Fprintf(&sb, "El repositorio alcanzó el nivel de madurez %d de 5.\n", report.AchievedLevel)
	sb.WriteString("Estos criterios fallaron:\n")

	for _, c := range report.Criteria {
		if c.Outcome.Status != models.StatusFail {
			continue
		}
		fmt.Fprintf(&sb, "- [%s] %s (pilar %s, nivel %d, impacto %s, esfuerzo %s)",
			c.ID, c.Title, c.Pillar, c.Level, c.Impact, c.Effort)
		if c.Outcome.Reason != "" {
			fmt.Fprintf(&sb, ": %s", c.Outcome.Reason)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nRespondé SOLO con una lista numerada de hasta 5 sugerencias concretas, ")
	sb.WriteString("ordenadas por impacto, con el formato exacto:\n")
	sb.WriteString("1. [criterion-id] Título corto: detalle accionable en una o dos frases\n")
	return sb.String()
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}

// parseSuggestions extrae las entradas "N. [id] Título: detalle" de la
// respuesta. Las líneas que no matchean el formato se descartan.
func parseSuggestions(text string) []models.Suggestion {
	var suggestions []models.Suggestion

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		rest, ok := trimNumberPrefix(line)
		if !ok {
			continue
		}

		var criterionID string
		if strings.HasPrefix(rest, "[") {
			if end := strings.Index(rest, "]"); end > 0 {
				criterionID = rest[1:end]
				rest = strings.TrimSpace(rest[end+1:])
			}
		}

		title := rest
		detail := ""
		if idx := strings.Index(rest, ":"); idx > 0 {
			title = strings.TrimSpace(rest[:idx])
			detail = strings.TrimSpace(rest[idx+1:])
		}
		if title == "" {
			continue
		}

		suggestions = append(suggestions, models.Suggestion{
			CriterionID: criterionID,
			Title:       title,
			Detail:      detail,
			Priority:    len(suggestions) + 1,
		})
	}

	return suggestions
}

// trimNumberPrefix saca el prefijo "N." o "N)" de una línea de lista.
func trimNumberPrefix(line string) (string, bool) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(line) {
		return "", false
	}
	if line[i] != '.' && line[i] != ')' {
		return "", false
	}
	return strings.TrimSpace(line[i+1:]), true
}
