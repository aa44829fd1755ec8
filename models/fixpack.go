package models

import "time"

type FixPackType string

const (
	FixPackTypeToken     FixPackType = "token"
	FixPackTypeLayout    FixPackType = "layout"
	FixPackTypeComponent FixPackType = "component"
	FixPackTypeMotion    FixPackType = "motion"
	FixPackTypeContent   FixPackType = "content"
)

func (t FixPackType) Valid() bool {
	switch t {
	case FixPackTypeToken, FixPackTypeLayout, FixPackTypeComponent, FixPackTypeMotion, FixPackTypeContent:
		return true
	}
	return false
}

type FileDiff struct {
	File        string `json:"file"`
	Before      string `json:"before"`
	After       string `json:"after"`
	Description string `json:"description,omitempty"`
}

type PatchPreview struct {
	Diffs []FileDiff `json:"diffs"`
}

type Issue struct {
	Title    string `json:"title"`
	Severity string `json:"severity,omitempty"`
}

// FixPack is a generated patch bundle. The pipeline only ever reads its diffs.
type FixPack struct {
	ID            string       `json:"id"`
	AuditID       string       `json:"auditId"`
	UserID        string       `json:"userId"`
	Type          FixPackType  `json:"type"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	PatchPreview  PatchPreview `json:"patchPreview"`
	FilesAffected []string     `json:"filesAffected"`
	IssuesFixed   []Issue      `json:"issuesFixed"`
	AppliedAt     *time.Time   `json:"appliedAt,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}

type AuditStatus string

const (
	AuditStatusPending   AuditStatus = "pending"
	AuditStatusRunning   AuditStatus = "running"
	AuditStatusCompleted AuditStatus = "completed"
	AuditStatusFailed    AuditStatus = "failed"
)

type Audit struct {
	ID     string
	UserID string
	Status AuditStatus
}
