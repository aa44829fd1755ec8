package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/onlook-dev/fixpack-pipeline/internal/github"
	"github.com/onlook-dev/fixpack-pipeline/models"
)

type PullRequest struct {
	Number int
	URL    string
	Reused bool
}

type PullRequestService interface {
	Open(ctx context.Context, owner, repo string, fp *models.FixPack, head, base string) (*PullRequest, error)
	HeadSHA(ctx context.Context, owner, repo string, number int) (string, error)
}

type pullRequestService struct {
	gh          github.Client
	repairLabel string
}

func NewPullRequestService(gh github.Client, repairLabel string) PullRequestService {
	return &pullRequestService{gh: gh, repairLabel: repairLabel}
}

// Open creates the pull request for head, or returns the one already open for it.
func (s *pullRequestService) Open(ctx context.Context, owner, repo string, fp *models.FixPack, head, base string) (*PullRequest, error) {
	existing, err := s.gh.FindPullRequestByBranch(ctx, owner, repo, head)
	if err != nil {
		return nil, fmt.Errorf("finding existing PR: %w", err)
	}
	if existing != nil {
		return &PullRequest{Number: existing.GetNumber(), URL: existing.GetHTMLURL(), Reused: true}, nil
	}

	pr, err := s.gh.CreatePullRequest(ctx, owner, repo, PRTitle(fp), s.buildPRBody(fp), head, base)
	if err != nil {
		return nil, fmt.Errorf("creating PR: %w", err)
	}
	if pr == nil || pr.GetNumber() == 0 {
		return nil, fmt.Errorf("creating PR: empty response for %s/%s", owner, repo)
	}

	return &PullRequest{Number: pr.GetNumber(), URL: pr.GetHTMLURL()}, nil
}

func (s *pullRequestService) HeadSHA(ctx context.Context, owner, repo string, number int) (string, error) {
	pr, err := s.gh.GetPullRequest(ctx, owner, repo, number)
	if err != nil {
		return "", fmt.Errorf("getting PR #%d: %w", number, err)
	}
	sha := pr.GetHead().GetSHA()
	if sha == "" {
		return "", fmt.Errorf("PR #%d has no head SHA", number)
	}
	return sha, nil
}

func PRTitle(fp *models.FixPack) string {
	return fmt.Sprintf("fix(%s): %s", fp.Type, fp.Title)
}

func (s *pullRequestService) buildPRBody(fp *models.FixPack) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Automated Fix Pack\n\n")
	fmt.Fprintf(&b, "**Type:** %s\n\n", fp.Type)
	if fp.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", fp.Description)
	}

	files := fp.FilesAffected
	if len(files) == 0 {
		for _, d := range fp.PatchPreview.Diffs {
			files = append(files, d.File)
		}
	}
	fmt.Fprintf(&b, "### Files changed\n\n")
	for _, f := range files {
		fmt.Fprintf(&b, "- `%s`\n", f)
	}

	if len(fp.IssuesFixed) > 0 {
		fmt.Fprintf(&b, "\n### Issues fixed\n\n")
		for _, issue := range fp.IssuesFixed {
			if issue.Severity != "" {
				fmt.Fprintf(&b, "- %s (%s)\n", issue.Title, issue.Severity)
				continue
			}
			fmt.Fprintf(&b, "- %s\n", issue.Title)
		}
	}

	fmt.Fprintf(&b, "\n---\n")
	if s.repairLabel != "" {
		fmt.Fprintf(&b, "*If CI fails on this PR, the `%s` label is added to request an automated repair.*\n", s.repairLabel)
	}
	fmt.Fprintf(&b, "*This is an automated PR. Please review before merging.*\n")

	return b.String()
}
