package github

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	notFound := &gh.ErrorResponse{Response: &http.Response{StatusCode: http.StatusNotFound}}
	forbidden := &gh.ErrorResponse{Response: &http.Response{StatusCode: http.StatusForbidden}}

	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsNotFound(fmt.Errorf("getting ref: %w", notFound)))
	assert.False(t, IsNotFound(forbidden))
	assert.False(t, IsNotFound(&gh.ErrorResponse{}))
	assert.False(t, IsNotFound(errors.New("boom")))
	assert.False(t, IsNotFound(nil))
}
