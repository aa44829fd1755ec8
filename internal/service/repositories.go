package service

import (
	"context"
	"fmt"

	"github.com/onlook-dev/fixpack-pipeline/internal/github"
)

type RepositoryService interface {
	DefaultBranch(ctx context.Context, owner, repo string) (string, error)
	MissingPaths(ctx context.Context, owner, repo, ref string, paths []string) ([]string, error)
}

type repositoriesService struct {
	gh github.Client
}

func NewRepositoriesService(ghClient github.Client) RepositoryService {
	return &repositoriesService{gh: ghClient}
}

func (s *repositoriesService) DefaultBranch(ctx context.Context, owner, repo string) (string, error) {
	branch, err := s.gh.GetDefaultBranch(ctx, owner, repo)
	if err != nil {
		return "", fmt.Errorf("resolving default branch: %w", err)
	}
	return branch, nil
}

// MissingPaths lists the paths that are not files in the tree at ref, in input
// order. A truncated tree cannot prove absence, so nothing is reported for it.
func (s *repositoriesService) MissingPaths(ctx context.Context, owner, repo, ref string, paths []string) ([]string, error) {
	tree, _, err := s.gh.GetTree(ctx, owner, repo, ref, true)
	if err != nil {
		return nil, fmt.Errorf("reading tree %s: %w", ref, err)
	}
	if tree == nil || tree.GetTruncated() {
		return nil, nil
	}

	files := make(map[string]struct{}, len(tree.Entries))
	for _, entry := range tree.Entries {
		if entry == nil || entry.GetType() != "blob" {
			continue
		}
		files[entry.GetPath()] = struct{}{}
	}

	var missing []string
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		if _, ok := files[p]; !ok {
			missing = append(missing, p)
		}
	}
	return missing, nil
}
