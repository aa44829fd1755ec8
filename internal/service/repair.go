package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/onlook-dev/fixpack-pipeline/internal/github"
)

type RepairService interface {
	// Signal adds the repair label to the pull request unless it is already there.
	// It reports whether the label was added by this call.
	Signal(ctx context.Context, owner, repo string, number int) (bool, error)
	Label() string
}

type repairService struct {
	gh    github.Client
	label string
}

func NewRepairService(gh github.Client, label string) RepairService {
	return &repairService{gh: gh, label: label}
}

func (s *repairService) Label() string { return s.label }

func (s *repairService) Signal(ctx context.Context, owner, repo string, number int) (bool, error) {
	labels, err := s.gh.ListLabels(ctx, owner, repo, number)
	if err != nil {
		return false, fmt.Errorf("listing labels on #%d: %w", number, err)
	}
	for _, l := range labels {
		if strings.EqualFold(l.GetName(), s.label) {
			return false, nil
		}
	}

	if err := s.gh.AddLabels(ctx, owner, repo, number, []string{s.label}); err != nil {
		return false, fmt.Errorf("adding label %s to #%d: %w", s.label, number, err)
	}
	return true, nil
}
