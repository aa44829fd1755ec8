package service

import (
	"context"
	"fmt"

	"github.com/onlook-dev/fixpack-pipeline/internal/github"
	"github.com/onlook-dev/fixpack-pipeline/models"
)

type CheckService interface {
	Summary(ctx context.Context, owner, repo, sha string) (models.CheckRunSummary, error)
}

type checkService struct {
	gh github.Client
}

func NewCheckService(gh github.Client) CheckService {
	return &checkService{gh: gh}
}

func (s *checkService) Summary(ctx context.Context, owner, repo, sha string) (models.CheckRunSummary, error) {
	runs, err := s.gh.ListCheckRuns(ctx, owner, repo, sha)
	if err != nil {
		return models.CheckRunSummary{}, fmt.Errorf("listing check runs for %s: %w", sha, err)
	}

	converted := make([]models.CheckRun, 0, len(runs))
	for _, run := range runs {
		if run == nil {
			continue
		}
		converted = append(converted, models.CheckRun{
			Name:       run.GetName(),
			Status:     models.CheckStatus(run.GetStatus()),
			Conclusion: models.CheckConclusion(run.GetConclusion()),
		})
	}

	return models.SummarizeCheckRuns(converted), nil
}
