package github

import (
	"errors"
	"net/http"

	gh "github.com/google/go-github/v80/github"
)

var ErrUnsupportedEvent = errors.New("unsupported webhook event")

// CheckNotification is the part of a check_run / check_suite delivery the monitor cares about.
type CheckNotification struct {
	Owner     string
	Repo      string
	HeadSHA   string
	PRNumbers []int
}

// ParseCheckEvent validates a webhook delivery and extracts check activity from it.
// An empty secret skips signature validation.
func ParseCheckEvent(r *http.Request, secret []byte) (*CheckNotification, error) {
	payload, err := gh.ValidatePayload(r, secret)
	if err != nil {
		return nil, err
	}

	event, err := gh.ParseWebHook(gh.WebHookType(r), payload)
	if err != nil {
		return nil, err
	}

	switch e := event.(type) {
	case *gh.CheckRunEvent:
		run := e.GetCheckRun()
		return &CheckNotification{
			Owner:     e.GetRepo().GetOwner().GetLogin(),
			Repo:      e.GetRepo().GetName(),
			HeadSHA:   run.GetHeadSHA(),
			PRNumbers: prNumbers(run.PullRequests),
		}, nil
	case *gh.CheckSuiteEvent:
		suite := e.GetCheckSuite()
		return &CheckNotification{
			Owner:     e.GetRepo().GetOwner().GetLogin(),
			Repo:      e.GetRepo().GetName(),
			HeadSHA:   suite.GetHeadSHA(),
			PRNumbers: prNumbers(suite.PullRequests),
		}, nil
	}
	return nil, ErrUnsupportedEvent
}

func prNumbers(prs []*gh.PullRequest) []int {
	out := make([]int, 0, len(prs))
	for _, pr := range prs {
		out = append(out, pr.GetNumber())
	}
	return out
}
