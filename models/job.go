package models

import "fmt"

type JobClass string

const (
	JobClassApply   JobClass = "apply"
	JobClassMonitor JobClass = "monitor"
)

type ApplyJobPayload struct {
	ApplyRunID     string `json:"applyRunId"`
	UserID         string `json:"userId"`
	AuditID        string `json:"auditId"`
	FixPackID      string `json:"fixPackId"`
	RepoOwner      string `json:"repoOwner"`
	RepoName       string `json:"repoName"`
	InstallationID string `json:"githubInstallationId,omitempty"`
}

type MonitorJobPayload struct {
	ApplyRunID     string `json:"applyRunId"`
	UserID         string `json:"userId"`
	RepoOwner      string `json:"repoOwner"`
	RepoName       string `json:"repoName"`
	PRNumber       int    `json:"prNumber"`
	Branch         string `json:"branch"`
	InstallationID string `json:"githubInstallationId,omitempty"`
}

func ApplyJobKey(applyRunID string) string {
	return fmt.Sprintf("apply-%s", applyRunID)
}

func MonitorJobKey(applyRunID string) string {
	return fmt.Sprintf("monitor-%s", applyRunID)
}
