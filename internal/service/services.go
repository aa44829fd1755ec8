package service

import (
	"context"

	"github.com/onlook-dev/fixpack-pipeline/internal/github"
)

// Services is the set of hosting services bound to one installation's credential.
type Services struct {
	Repos    RepositoryService
	Branches BranchService
	Patches  PatchService
	PRs      PullRequestService
	Checks   CheckService
	Repair   RepairService
}

func NewServices(gh github.Client, repairLabel string) *Services {
	return &Services{
		Repos:    NewRepositoriesService(gh),
		Branches: NewBranchService(gh),
		Patches:  NewPatchService(gh),
		PRs:      NewPullRequestService(gh, repairLabel),
		Checks:   NewCheckService(gh),
		Repair:   NewRepairService(gh, repairLabel),
	}
}

type Factory interface {
	ForInstallation(ctx context.Context, installationID string) (*Services, error)
}

type factory struct {
	connector   github.Connector
	repairLabel string
}

func NewFactory(connector github.Connector, repairLabel string) Factory {
	return &factory{connector: connector, repairLabel: repairLabel}
}

func (f *factory) ForInstallation(ctx context.Context, installationID string) (*Services, error) {
	client, err := f.connector.Connect(ctx, installationID)
	if err != nil {
		return nil, err
	}
	return NewServices(client, f.repairLabel), nil
}
