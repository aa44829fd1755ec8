package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

// Client is the hosting API surface the pipeline needs.
type Client interface {
	GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, error)
	GetDefaultBranch(ctx context.Context, owner, repo string) (string, error)

	GetBranch(ctx context.Context, owner, repo, branch string) (*gh.Reference, error)
	CreateBranch(ctx context.Context, owner, repo, branchName, baseSHA string) error
	ResetBranch(ctx context.Context, owner, repo, branchName, sha string) error
	GetTree(ctx context.Context, owner, repo, sha string, recursive bool) (*gh.Tree, *gh.Response, error)

	GetFileContent(ctx context.Context, owner, repo, path, ref string) (string, string, error)
	CreateOrUpdateFile(ctx context.Context, owner, repo, path, branch, message, content string, fileSHA *string) error

	ListPullRequests(ctx context.Context, owner, repo string, opts *gh.PullRequestListOptions) ([]*gh.PullRequest, error)
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, error)
	CreatePullRequest(ctx context.Context, owner, repo, title, body, head, base string) (*gh.PullRequest, error)
	FindPullRequestByBranch(ctx context.Context, owner, repo, branchName string) (*gh.PullRequest, error)

	ListCheckRuns(ctx context.Context, owner, repo, ref string) ([]*gh.CheckRun, error)

	ListLabels(ctx context.Context, owner, repo string, number int) ([]*gh.Label, error)
	AddLabels(ctx context.Context, owner, repo string, number int, labels []string) error
}

type RepositoriesAdapter interface {
	Get(ctx context.Context, owner, repo string) (*gh.Repository, *gh.Response, error)
	GetContents(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentGetOptions) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error)
	CreateFile(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentFileOptions) (*gh.RepositoryContentResponse, *gh.Response, error)
	UpdateFile(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentFileOptions) (*gh.RepositoryContentResponse, *gh.Response, error)
}

type ReferencesAdapter interface {
	GetRef(ctx context.Context, owner, repo, ref string) (*gh.Reference, *gh.Response, error)
	CreateRef(ctx context.Context, owner, repo string, ref gh.CreateRef) (*gh.Reference, *gh.Response, error)
	UpdateRef(ctx context.Context, owner, repo, ref string, updateRef gh.UpdateRef) (*gh.Reference, *gh.Response, error)
}

type GitAdapter interface {
	GetTree(ctx context.Context, owner, repo, sha string, recursive bool) (*gh.Tree, *gh.Response, error)
}

type PullRequestsAdapter interface {
	List(ctx context.Context, owner, repo string, opts *gh.PullRequestListOptions) ([]*gh.PullRequest, *gh.Response, error)
	Get(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, *gh.Response, error)
	Create(ctx context.Context, owner, repo string, pull *gh.NewPullRequest) (*gh.PullRequest, *gh.Response, error)
}

type ChecksAdapter interface {
	ListCheckRunsForRef(ctx context.Context, owner, repo, ref string, opts *gh.ListCheckRunsOptions) (*gh.ListCheckRunsResults, *gh.Response, error)
}

type IssuesAdapter interface {
	ListLabelsByIssue(ctx context.Context, owner, repo string, number int, opts *gh.ListOptions) ([]*gh.Label, *gh.Response, error)
	AddLabelsToIssue(ctx context.Context, owner, repo string, number int, labels []string) ([]*gh.Label, *gh.Response, error)
}

type client struct {
	repositories RepositoriesAdapter
	references   ReferencesAdapter
	git          GitAdapter
	pullRequests PullRequestsAdapter
	checks       ChecksAdapter
	issues       IssuesAdapter
	retry        retryPolicy
}

// NewFromHTTPClient wires every adapter to the services of an existing go-github client.
func NewFromHTTPClient(c *gh.Client) Client {
	return &client{
		repositories: c.Repositories,
		references:   c.Git,
		git:          c.Git,
		pullRequests: c.PullRequests,
		checks:       c.Checks,
		issues:       c.Issues,
		retry:        defaultRetryPolicy,
	}
}
