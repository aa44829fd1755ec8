package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"
)

// GetFileContent returns the decoded content of a file and its blob SHA at ref.
func (c *client) GetFileContent(ctx context.Context, owner, repo, path, ref string) (string, string, error) {
	opts := &gh.RepositoryContentGetOptions{Ref: ref}

	var content *gh.RepositoryContent
	err := c.withRateLimitRetry(ctx, func() error {
		file, dir, _, err := c.repositories.GetContents(ctx, owner, repo, path, opts)
		if err != nil {
			return err
		}
		if file == nil || dir != nil {
			return fmt.Errorf("path %s is not a file", path)
		}
		content = file
		return nil
	})
	if err != nil {
		return "", "", err
	}

	decoded, err := content.GetContent()
	if err != nil {
		return "", "", err
	}
	return decoded, content.GetSHA(), nil
}

// CreateOrUpdateFile commits content to branch. A non-nil fileSHA makes the write
// conditional on the blob still being at that revision.
func (c *client) CreateOrUpdateFile(ctx context.Context, owner, repo, path, branch, message, content string, fileSHA *string) error {
	opts := &gh.RepositoryContentFileOptions{
		Message: gh.Ptr(message),
		Content: []byte(content),
		Branch:  gh.Ptr(branch),
	}
	if fileSHA != nil {
		opts.SHA = fileSHA
	}

	return c.withRateLimitRetry(ctx, func() error {
		if fileSHA == nil {
			_, _, err := c.repositories.CreateFile(ctx, owner, repo, path, opts)
			return err
		}
		_, _, err := c.repositories.UpdateFile(ctx, owner, repo, path, opts)
		return err
	})
}
