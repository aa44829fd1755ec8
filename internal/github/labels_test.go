package github

import (
	"context"
	"errors"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/onlook-dev/fixpack-pipeline/internal/github/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListLabels_Paginates(t *testing.T) {
	ctx := context.Background()
	issuesSvc := mocks.NewMockIssuesAdapter(t)

	issuesSvc.
		EXPECT().
		ListLabelsByIssue(mock.Anything, "acme", "web", 42,
			mock.MatchedBy(func(o *gh.ListOptions) bool { return o.Page == 0 }),
		).
		Once().
		Return([]*gh.Label{{Name: gh.Ptr("bug")}}, &gh.Response{NextPage: 2}, nil)
	issuesSvc.
		EXPECT().
		ListLabelsByIssue(mock.Anything, "acme", "web", 42,
			mock.MatchedBy(func(o *gh.ListOptions) bool { return o.Page == 2 }),
		).
		Once().
		Return([]*gh.Label{{Name: gh.Ptr("agent:repair")}}, &gh.Response{}, nil)

	c := &client{issues: issuesSvc}

	labels, err := c.ListLabels(ctx, "acme", "web", 42)

	assert.NoError(t, err)
	assert.Len(t, labels, 2)
	assert.Equal(t, "agent:repair", labels[1].GetName())
}

func TestAddLabels_Success(t *testing.T) {
	ctx := context.Background()
	issuesSvc := mocks.NewMockIssuesAdapter(t)

	issuesSvc.
		EXPECT().
		AddLabelsToIssue(mock.Anything, "acme", "web", 42, []string{"agent:repair"}).
		Once().
		Return([]*gh.Label{{Name: gh.Ptr("agent:repair")}}, &gh.Response{}, nil)

	c := &client{issues: issuesSvc}

	assert.NoError(t, c.AddLabels(ctx, "acme", "web", 42, []string{"agent:repair"}))
}

func TestAddLabels_Error(t *testing.T) {
	ctx := context.Background()
	issuesSvc := mocks.NewMockIssuesAdapter(t)

	issuesSvc.
		EXPECT().
		AddLabelsToIssue(mock.Anything, "acme", "web", 42, mock.Anything).
		Once().
		Return(nil, nil, errors.New("forbidden"))

	c := &client{issues: issuesSvc}

	err := c.AddLabels(ctx, "acme", "web", 42, []string{"agent:repair"})

	assert.EqualError(t, err, "forbidden")
}
