package service

import (
	"context"
	"fmt"

	"github.com/onlook-dev/fixpack-pipeline/internal/github"
	"github.com/onlook-dev/fixpack-pipeline/internal/patch"
	"github.com/onlook-dev/fixpack-pipeline/models"
)

const defaultCommitMessage = "Apply fix pack patch"

type PatchService interface {
	ApplyDiff(ctx context.Context, owner, repo, branch string, diff models.FileDiff) error
}

type patchService struct {
	gh github.Client
}

func NewPatchService(gh github.Client) PatchService {
	return &patchService{gh: gh}
}

// ApplyDiff rewrites one file on branch. The write is keyed by the blob SHA that
// was read, so a concurrent change to the file makes it fail instead of clobbering.
func (s *patchService) ApplyDiff(ctx context.Context, owner, repo, branch string, diff models.FileDiff) error {
	content, sha, err := s.gh.GetFileContent(ctx, owner, repo, diff.File, branch)
	if err != nil {
		return fmt.Errorf("reading %s: %w", diff.File, err)
	}

	patched, err := patch.Apply(content, diff.Before, diff.After)
	if err != nil {
		return fmt.Errorf("%s: %w", diff.File, err)
	}

	if err := s.gh.CreateOrUpdateFile(ctx, owner, repo, diff.File, branch, CommitMessage(diff), patched, &sha); err != nil {
		return fmt.Errorf("writing %s on branch %s: %w", diff.File, branch, err)
	}
	return nil
}

func CommitMessage(diff models.FileDiff) string {
	desc := diff.Description
	if desc == "" {
		desc = defaultCommitMessage
	}
	return "Fix: " + desc
}
