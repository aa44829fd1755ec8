package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/onlook-dev/fixpack-pipeline/internal/github/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func limitedResponse() *http.Response {
	return &http.Response{
		StatusCode: http.StatusForbidden,
		Request:    &http.Request{Method: http.MethodGet, URL: &url.URL{Scheme: "https", Host: "api.github.com", Path: "/repos/acme/web"}},
	}
}

func rateLimited(reset time.Time) error {
	return &gh.RateLimitError{
		Rate:     gh.Rate{Reset: gh.Timestamp{Time: reset}},
		Response: limitedResponse(),
		Message:  "API rate limit exceeded",
	}
}

func fastRetry() retryPolicy {
	return retryPolicy{maxRetries: 2, baseDelay: time.Millisecond, maxWait: 5 * time.Millisecond}
}

func TestGetDefaultBranch_Success(t *testing.T) {
	ctx := context.Background()
	reposSvc := mocks.NewMockRepositoriesAdapter(t)

	reposSvc.
		EXPECT().
		Get(mock.Anything, "acme", "web").
		Once().
		Return(&gh.Repository{Name: gh.Ptr("web"), DefaultBranch: gh.Ptr("trunk")}, &gh.Response{}, nil)

	c := &client{repositories: reposSvc}

	branch, err := c.GetDefaultBranch(ctx, "acme", "web")

	assert.NoError(t, err)
	assert.Equal(t, "trunk", branch)
}

func TestGetDefaultBranch_Missing(t *testing.T) {
	ctx := context.Background()
	reposSvc := mocks.NewMockRepositoriesAdapter(t)

	reposSvc.
		EXPECT().
		Get(mock.Anything, "acme", "web").
		Once().
		Return(&gh.Repository{Name: gh.Ptr("web")}, &gh.Response{}, nil)

	c := &client{repositories: reposSvc}

	_, err := c.GetDefaultBranch(ctx, "acme", "web")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no default branch")
}

func TestGetRepository_RetriesAfterRateLimit(t *testing.T) {
	ctx := context.Background()
	reposSvc := mocks.NewMockRepositoriesAdapter(t)

	reposSvc.
		EXPECT().
		Get(mock.Anything, "acme", "web").
		Once().
		Return(nil, nil, rateLimited(time.Now()))
	reposSvc.
		EXPECT().
		Get(mock.Anything, "acme", "web").
		Once().
		Return(&gh.Repository{Name: gh.Ptr("web")}, &gh.Response{}, nil)

	c := &client{repositories: reposSvc, retry: fastRetry()}

	repo, err := c.GetRepository(ctx, "acme", "web")

	assert.NoError(t, err)
	assert.Equal(t, "web", repo.GetName())
}

func TestGetRepository_MaxRetriesReached(t *testing.T) {
	ctx := context.Background()
	reposSvc := mocks.NewMockRepositoriesAdapter(t)

	reposSvc.
		EXPECT().
		Get(mock.Anything, "acme", "web").
		Times(3).
		Return(nil, nil, rateLimited(time.Now()))

	c := &client{repositories: reposSvc, retry: fastRetry()}

	_, err := c.GetRepository(ctx, "acme", "web")

	var rateErr *gh.RateLimitError
	assert.ErrorAs(t, err, &rateErr)
	assert.Contains(t, err.Error(), "max retries reached")
}

func TestGetRepository_DoesNotRetryOtherErrors(t *testing.T) {
	ctx := context.Background()
	reposSvc := mocks.NewMockRepositoriesAdapter(t)

	reposSvc.
		EXPECT().
		Get(mock.Anything, "acme", "web").
		Once().
		Return(nil, nil, errors.New("Not Found"))

	c := &client{repositories: reposSvc, retry: fastRetry()}

	_, err := c.GetRepository(ctx, "acme", "web")

	assert.EqualError(t, err, "Not Found")
}

func TestGetRepository_ContextCancelledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	reposSvc := mocks.NewMockRepositoriesAdapter(t)

	reposSvc.
		EXPECT().
		Get(mock.Anything, "acme", "web").
		Once().
		Return(nil, nil, rateLimited(time.Now().Add(time.Hour)))

	c := &client{repositories: reposSvc, retry: retryPolicy{maxRetries: 3, baseDelay: time.Second, maxWait: time.Minute}}

	start := time.Now()
	_, err := c.GetRepository(ctx, "acme", "web")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
