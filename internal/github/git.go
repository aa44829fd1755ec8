package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) GetTree(ctx context.Context, owner, repo, sha string, recursive bool) (*gh.Tree, *gh.Response, error) {
	var (
		tree *gh.Tree
		resp *gh.Response
	)
	err := c.withRateLimitRetry(ctx, func() error {
		t, r, err := c.git.GetTree(ctx, owner, repo, sha, recursive)
		tree, resp = t, r
		return err
	})
	return tree, resp, err
}
