package service

import (
	"context"
	"errors"
	"testing"

	gh "github.com/google/go-github/v80/github"
	githubMocks "github.com/onlook-dev/fixpack-pipeline/internal/github/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRepositoriesService(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)

	svc := NewRepositoriesService(mockClient)

	assert.NotNil(t, svc)
	assert.Implements(t, (*RepositoryService)(nil), svc)
}

func TestDefaultBranch(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	mockClient.EXPECT().GetDefaultBranch(mock.Anything, "acme", "web").Return("trunk", nil).Once()

	branch, err := NewRepositoriesService(mockClient).DefaultBranch(context.Background(), "acme", "web")

	require.NoError(t, err)
	assert.Equal(t, "trunk", branch)
}

func TestDefaultBranch_Error(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	mockClient.EXPECT().GetDefaultBranch(mock.Anything, "acme", "web").Return("", errors.New("boom")).Once()

	_, err := NewRepositoriesService(mockClient).DefaultBranch(context.Background(), "acme", "web")

	assert.EqualError(t, err, "resolving default branch: boom")
}

func TestMissingPaths(t *testing.T) {
	tree := &gh.Tree{
		Entries: []*gh.TreeEntry{
			{Path: gh.Ptr("src"), Type: gh.Ptr("tree")},
			{Path: gh.Ptr("src/tokens.css"), Type: gh.Ptr("blob")},
			{Path: gh.Ptr("src/app.tsx"), Type: gh.Ptr("blob")},
			nil,
		},
	}

	tests := []struct {
		name  string
		tree  *gh.Tree
		paths []string
		want  []string
	}{
		{name: "all present", tree: tree, paths: []string{"src/tokens.css", "src/app.tsx"}},
		{name: "missing reported once in order", tree: tree, paths: []string{"b.css", "src/tokens.css", "a.css", "b.css"}, want: []string{"b.css", "a.css"}},
		{name: "directory is not a file", tree: tree, paths: []string{"src"}, want: []string{"src"}},
		{name: "truncated tree", tree: &gh.Tree{Truncated: gh.Ptr(true)}, paths: []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := githubMocks.NewMockClient(t)
			mockClient.
				EXPECT().
				GetTree(mock.Anything, "acme", "web", "main", true).
				Once().
				Return(tt.tree, &gh.Response{}, nil)

			missing, err := NewRepositoriesService(mockClient).MissingPaths(context.Background(), "acme", "web", "main", tt.paths)

			require.NoError(t, err)
			assert.Equal(t, tt.want, missing)
		})
	}
}

func TestMissingPaths_Error(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	mockClient.EXPECT().GetTree(mock.Anything, "acme", "web", "main", true).Return(nil, nil, errors.New("boom")).Once()

	_, err := NewRepositoriesService(mockClient).MissingPaths(context.Background(), "acme", "web", "main", []string{"a"})

	assert.EqualError(t, err, "reading tree main: boom")
}
