package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
	"github.com/Tomas-vilte/ReadyMate/internal/domain/ports"
	domainErrors "github.com/Tomas-vilte/ReadyMate/internal/errors"
	"github.com/Tomas-vilte/ReadyMate/internal/render"
	"github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

var _ ports.ReportPublisher = (*IssuePublisher)(nil)

// IssuesService es el subconjunto del cliente de GitHub que necesita el
// publicador, para poder inyectar un mock en los tests.
type IssuesService interface {
	Create(ctx context.Context, owner, repo string, issue *github.IssueRequest) (*github.Issue, *github.Response, error)
}

// IssuePublisher publica un reporte terminado como issue en un repositorio
// de GitHub.
type IssuePublisher struct {
	issuesService IssuesService
	owner         string
	repo          string
}

func NewIssuePublisher(owner, repo, token string) (*IssuePublisher, error) {
	if token == "" {
		return nil, domainErrors.ErrTokenMissing
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)

	client := github.NewClient(httpClient)
	return &IssuePublisher{
		issuesService: client.Issues,
		owner:         owner,
		repo:          repo,
	}, nil
}

func NewIssuePublisherWithService(issuesService IssuesService, owner, repo string) *IssuePublisher {
	return &IssuePublisher{
		issuesService: issuesService,
		owner:         owner,
		repo:          repo,
	}
}

// Publish crea el issue con la vista Markdown del reporte y devuelve su URL.
func (p *IssuePublisher) Publish(ctx context.Context, report *models.ReadinessReport) (string, error) {
	if report == nil {
		return "", fmt.Errorf("el reporte no puede ser nil")
	}

	title := fmt.Sprintf("Readiness report: nivel %d/5 (%.0f%%)", report.AchievedLevel, report.OverallPassRate*100)
	body := render.Markdown(report)

	request := &github.IssueRequest{
		Title:  github.String(title),
		Body:   github.String(body),
		Labels: &[]string{"readiness"},
	}

	issue, resp, err := p.issuesService.Create(ctx, p.owner, p.repo, request)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", domainErrors.ErrRepositoryNotFound.WithError(err).WithContext("repo", fmt.Sprintf("%s/%s", p.owner, p.repo))
		}
		return "", domainErrors.NewAppError(domainErrors.TypeVCS, "error al crear el issue en GitHub", err)
	}

	return issue.GetHTMLURL(), nil
}
