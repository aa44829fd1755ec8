package github

import (
	"errors"
	"net/http"

	gh "github.com/google/go-github/v80/github"
)

// IsNotFound reports whether err is a GitHub 404 response.
func IsNotFound(err error) bool {
	var respErr *gh.ErrorResponse
	if !errors.As(err, &respErr) || respErr.Response == nil {
		return false
	}
	return respErr.Response.StatusCode == http.StatusNotFound
}
