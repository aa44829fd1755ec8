package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) ListLabels(ctx context.Context, owner, repo string, number int) ([]*gh.Label, error) {
	var all []*gh.Label
	opts := &gh.ListOptions{PerPage: 100}

	for {
		var (
			labels []*gh.Label
			resp   *gh.Response
		)
		err := c.withRateLimitRetry(ctx, func() error {
			l, r, err := c.issues.ListLabelsByIssue(ctx, owner, repo, number, opts)
			labels, resp = l, r
			return err
		})
		if err != nil {
			return nil, err
		}

		all = append(all, labels...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

func (c *client) AddLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	return c.withRateLimitRetry(ctx, func() error {
		_, _, err := c.issues.AddLabelsToIssue(ctx, owner, repo, number, labels)
		return err
	})
}
