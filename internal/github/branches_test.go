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

func TestGetBranch_Success(t *testing.T) {
	ctx := context.Background()
	refSvc := mocks.NewMockReferencesAdapter(t)

	refSvc.
		EXPECT().
		GetRef(mock.Anything, "acme", "web", "refs/heads/main").
		Once().
		Return(
			&gh.Reference{
				Ref:    gh.Ptr("refs/heads/main"),
				Object: &gh.GitObject{SHA: gh.Ptr("abc123def456")},
			},
			&gh.Response{},
			nil,
		)

	c := &client{references: refSvc}

	ref, err := c.GetBranch(ctx, "acme", "web", "main")

	assert.NoError(t, err)
	assert.NotNil(t, ref)
	assert.Equal(t, "refs/heads/main", ref.GetRef())
	assert.Equal(t, "abc123def456", ref.GetObject().GetSHA())
}

func TestGetBranch_NotFound(t *testing.T) {
	ctx := context.Background()
	refSvc := mocks.NewMockReferencesAdapter(t)

	refSvc.
		EXPECT().
		GetRef(mock.Anything, "acme", "web", "refs/heads/nonexistent").
		Once().
		Return(nil, nil, errors.New("not found"))

	c := &client{references: refSvc}

	ref, err := c.GetBranch(ctx, "acme", "web", "nonexistent")

	assert.Error(t, err)
	assert.Nil(t, ref)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateBranch_Success(t *testing.T) {
	ctx := context.Background()
	refSvc := mocks.NewMockReferencesAdapter(t)

	refSvc.
		EXPECT().
		CreateRef(mock.Anything, "acme", "web",
			mock.MatchedBy(func(r gh.CreateRef) bool {
				return r.Ref == "refs/heads/cynthia/fix-ui-1700000000000" && r.SHA == "base-sha"
			}),
		).
		Once().
		Return(&gh.Reference{}, &gh.Response{}, nil)

	c := &client{references: refSvc}

	err := c.CreateBranch(ctx, "acme", "web", "cynthia/fix-ui-1700000000000", "base-sha")

	assert.NoError(t, err)
}

func TestCreateBranch_Error(t *testing.T) {
	ctx := context.Background()
	refSvc := mocks.NewMockReferencesAdapter(t)

	refSvc.
		EXPECT().
		CreateRef(mock.Anything, "acme", "web", mock.Anything).
		Once().
		Return(nil, nil, errors.New("reference already exists"))

	c := &client{references: refSvc}

	err := c.CreateBranch(ctx, "acme", "web", "feature", "base-sha")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reference already exists")
}

func TestResetBranch_ForcesUpdate(t *testing.T) {
	ctx := context.Background()
	refSvc := mocks.NewMockReferencesAdapter(t)

	refSvc.
		EXPECT().
		UpdateRef(mock.Anything, "acme", "web", "heads/cynthia/fix-ui-1",
			mock.MatchedBy(func(u gh.UpdateRef) bool {
				return u.SHA == "new-head" && u.Force != nil && *u.Force
			}),
		).
		Once().
		Return(&gh.Reference{}, &gh.Response{}, nil)

	c := &client{references: refSvc}

	err := c.ResetBranch(ctx, "acme", "web", "cynthia/fix-ui-1", "new-head")

	assert.NoError(t, err)
}
