package service

import (
	"context"
	"fmt"

	"github.com/onlook-dev/fixpack-pipeline/internal/github"
)

type Branch struct {
	Name    string
	Base    string
	BaseSHA string
	// Reset is set when the branch already existed and was moved back to BaseSHA.
	Reset bool
}

type BranchService interface {
	Prepare(ctx context.Context, owner, repo, name, base string) (*Branch, error)
}

type branchService struct {
	gh github.Client
}

func NewBranchService(gh github.Client) BranchService {
	return &branchService{gh: gh}
}

// Prepare points branch name at the current head of base, creating it when missing.
func (s *branchService) Prepare(ctx context.Context, owner, repo, name, base string) (*Branch, error) {
	baseRef, err := s.gh.GetBranch(ctx, owner, repo, base)
	if err != nil {
		return nil, fmt.Errorf("getting branch %s: %w", base, err)
	}
	if baseRef == nil || baseRef.GetObject() == nil {
		return nil, fmt.Errorf("branch reference is nil for %s/%s@%s", owner, repo, base)
	}

	baseSHA := baseRef.GetObject().GetSHA()
	if baseSHA == "" {
		return nil, fmt.Errorf("branch SHA is empty for %s/%s@%s", owner, repo, base)
	}

	branch := &Branch{Name: name, Base: base, BaseSHA: baseSHA}

	createErr := s.gh.CreateBranch(ctx, owner, repo, name, baseSHA)
	if createErr == nil {
		return branch, nil
	}

	// Branch may exist from an earlier attempt of the same run.
	if _, err := s.gh.GetBranch(ctx, owner, repo, name); err != nil {
		return nil, fmt.Errorf("creating branch %s: %w", name, createErr)
	}

	if err := s.gh.ResetBranch(ctx, owner, repo, name, baseSHA); err != nil {
		return nil, fmt.Errorf("resetting branch %s: %w", name, err)
	}
	branch.Reset = true
	return branch, nil
}
