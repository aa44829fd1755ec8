package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) GetBranch(ctx context.Context, owner, repo, branch string) (*gh.Reference, error) {
	var ref *gh.Reference
	err := c.withRateLimitRetry(ctx, func() error {
		r, _, err := c.references.GetRef(ctx, owner, repo, "refs/heads/"+branch)
		ref = r
		return err
	})
	return ref, err
}

func (c *client) CreateBranch(ctx context.Context, owner, repo, branchName, baseSHA string) error {
	ref := gh.CreateRef{
		Ref: "refs/heads/" + branchName,
		SHA: baseSHA,
	}
	return c.withRateLimitRetry(ctx, func() error {
		_, _, err := c.references.CreateRef(ctx, owner, repo, ref)
		return err
	})
}

// ResetBranch force-moves an existing branch to sha.
func (c *client) ResetBranch(ctx context.Context, owner, repo, branchName, sha string) error {
	update := gh.UpdateRef{
		SHA:   sha,
		Force: gh.Ptr(true),
	}
	return c.withRateLimitRetry(ctx, func() error {
		_, _, err := c.references.UpdateRef(ctx, owner, repo, "heads/"+branchName, update)
		return err
	})
}
