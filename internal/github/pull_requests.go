package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) ListPullRequests(ctx context.Context, owner, repo string, opts *gh.PullRequestListOptions) ([]*gh.PullRequest, error) {
	var prs []*gh.PullRequest
	err := c.withRateLimitRetry(ctx, func() error {
		p, _, err := c.pullRequests.List(ctx, owner, repo, opts)
		prs = p
		return err
	})
	return prs, err
}

func (c *client) GetPullRequest(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, error) {
	var pr *gh.PullRequest
	err := c.withRateLimitRetry(ctx, func() error {
		p, _, err := c.pullRequests.Get(ctx, owner, repo, number)
		pr = p
		return err
	})
	return pr, err
}

func (c *client) CreatePullRequest(ctx context.Context, owner, repo, title, body, head, base string) (*gh.PullRequest, error) {
	pr := &gh.NewPullRequest{
		Title: gh.Ptr(title),
		Body:  gh.Ptr(body),
		Head:  gh.Ptr(head),
		Base:  gh.Ptr(base),
	}
	var created *gh.PullRequest
	err := c.withRateLimitRetry(ctx, func() error {
		p, _, err := c.pullRequests.Create(ctx, owner, repo, pr)
		created = p
		return err
	})
	return created, err
}

func (c *client) FindPullRequestByBranch(ctx context.Context, owner, repo, branchName string) (*gh.PullRequest, error) {
	opts := &gh.PullRequestListOptions{
		Head:  owner + ":" + branchName,
		State: "open",
	}
	prs, err := c.ListPullRequests(ctx, owner, repo, opts)
	if err != nil {
		return nil, err
	}
	if len(prs) > 0 {
		return prs[0], nil
	}
	return nil, nil
}
