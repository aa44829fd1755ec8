package models

import "time"

type ApplyRunStatus string

const (
	StatusQueued        ApplyRunStatus = "queued"
	StatusRunning       ApplyRunStatus = "running"
	StatusBranchCreated ApplyRunStatus = "branch_created"
	StatusPROpened      ApplyRunStatus = "pr_opened"
	StatusChecksRunning ApplyRunStatus = "checks_running"
	StatusSuccess       ApplyRunStatus = "success"
	StatusFailed        ApplyRunStatus = "failed"
)

var statusOrder = map[ApplyRunStatus]int{
	StatusQueued:        0,
	StatusRunning:       1,
	StatusBranchCreated: 2,
	StatusPROpened:      3,
	StatusChecksRunning: 4,
	StatusSuccess:       5,
	StatusFailed:        5,
}

func (s ApplyRunStatus) Valid() bool {
	_, ok := statusOrder[s]
	return ok
}

func (s ApplyRunStatus) Terminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// Reached reports whether s is at or past target on the forward path.
// Failed never counts as having reached a forward state.
func (s ApplyRunStatus) Reached(target ApplyRunStatus) bool {
	if s == StatusFailed {
		return target == StatusFailed
	}
	return statusOrder[s] >= statusOrder[target]
}

// CanTransition validates a status change against the allowed table.
// Repeating the current status is allowed so callers can append logs.
func CanTransition(from, to ApplyRunStatus) bool {
	if from == to {
		return from.Valid()
	}
	if from.Terminal() {
		return false
	}
	if to == StatusFailed {
		return from.Valid()
	}
	switch from {
	case StatusQueued:
		return to == StatusRunning
	case StatusRunning:
		return to == StatusBranchCreated
	case StatusBranchCreated:
		return to == StatusPROpened
	case StatusPROpened:
		return to == StatusChecksRunning
	case StatusChecksRunning:
		return to == StatusSuccess
	}
	return false
}

// Predecessors returns every status from which to may be entered.
func Predecessors(to ApplyRunStatus) []ApplyRunStatus {
	var out []ApplyRunStatus
	for _, from := range AllStatuses() {
		if CanTransition(from, to) {
			out = append(out, from)
		}
	}
	return out
}

func AllStatuses() []ApplyRunStatus {
	return []ApplyRunStatus{
		StatusQueued,
		StatusRunning,
		StatusBranchCreated,
		StatusPROpened,
		StatusChecksRunning,
		StatusSuccess,
		StatusFailed,
	}
}

type LogLevel string

const (
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     LogLevel  `json:"level"`
	Message   string    `json:"message"`
}

type ApplyRun struct {
	ID             string         `json:"id"`
	UserID         string         `json:"userId"`
	AuditID        string         `json:"auditId"`
	FixPackID      string         `json:"fixPackId"`
	RepoOwner      string         `json:"repoOwner"`
	RepoName       string         `json:"repoName"`
	InstallationID string         `json:"githubInstallationId,omitempty"`
	Status         ApplyRunStatus `json:"status"`
	Branch         *string        `json:"branch,omitempty"`
	PRNumber       *int           `json:"prNumber,omitempty"`
	PRURL          *string        `json:"prUrl,omitempty"`
	Logs           []LogEntry     `json:"logs"`
	Error          *string        `json:"error,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func (r *ApplyRun) FullName() string {
	return r.RepoOwner + "/" + r.RepoName
}

// StatusUpdate carries the optional fields written alongside a transition.
type StatusUpdate struct {
	Branch   *string
	PRNumber *int
	PRURL    *string
	Error    *string
	Logs     []LogEntry
}
