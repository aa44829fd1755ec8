package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

// ListCheckRuns returns every check run reported for ref, following pagination.
func (c *client) ListCheckRuns(ctx context.Context, owner, repo, ref string) ([]*gh.CheckRun, error) {
	var all []*gh.CheckRun
	opts := &gh.ListCheckRunsOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	for {
		var (
			results *gh.ListCheckRunsResults
			resp    *gh.Response
		)
		err := c.withRateLimitRetry(ctx, func() error {
			r, rr, err := c.checks.ListCheckRunsForRef(ctx, owner, repo, ref, opts)
			results, resp = r, rr
			return err
		})
		if err != nil {
			return nil, err
		}

		if results != nil {
			all = append(all, results.CheckRuns...)
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}
