package github

import (
	"context"

	"github.com/google/go-github/github"
	"github.com/stretchr/testify/mock"
)

// MockIssuesService es un mock de IssuesService para los tests.
type MockIssuesService struct {
	mock.Mock
}

func (m *MockIssuesService) Create(ctx context.Context, owner, repo string, issue *github.IssueRequest) (*github.Issue, *github.Response, error) {
	args := m.Called(ctx, owner, repo, issue)
	var issueResp *github.Issue
	if args.Get(0) != nil {
		issueResp = args.Get(0).(*github.Issue)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return issueResp, resp, args.Error(2)
}
