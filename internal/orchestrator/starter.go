package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/onlook-dev/fixpack-pipeline/internal/queue"
	"github.com/onlook-dev/fixpack-pipeline/internal/store"
	"github.com/onlook-dev/fixpack-pipeline/models"
)

var (
	ErrInvalidRequest      = errors.New("invalid apply request")
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrAuditNotCompleted   = errors.New("audit is not completed")
	ErrInsufficientCredits = errors.New("insufficient credits")
)

type AuditReader interface {
	Get(ctx context.Context, id string) (*models.Audit, error)
}

// CreditGate is the entitlement check. Grant is only used to hand back a credit
// when the run could not be queued after it was charged.
type CreditGate interface {
	Check(ctx context.Context, userID string) (int, error)
	Consume(ctx context.Context, userID string, n int) error
	Grant(ctx context.Context, userID string, n int) (int, error)
}

type RunStore interface {
	Create(ctx context.Context, run *models.ApplyRun) error
	UpdateStatus(ctx context.Context, id string, status models.ApplyRunStatus, upd models.StatusUpdate) error
}

type StartRequest struct {
	UserID         string `json:"-"`
	AuditID        string `json:"auditId" binding:"required"`
	FixPackID      string `json:"fixPackId" binding:"required"`
	RepoOwner      string `json:"repoOwner" binding:"required"`
	RepoName       string `json:"repoName" binding:"required"`
	InstallationID string `json:"githubInstallationId"`
}

type StarterConfig struct {
	CreditCost       int
	ApplyMaxAttempts int
}

// Starter validates an apply request and queues it.
type Starter struct {
	audits   AuditReader
	fixPacks FixPackStore
	credits  CreditGate
	runs     RunStore
	jobs     JobEnqueuer
	cfg      StarterConfig
	logger   *slog.Logger
	newID    func() string
	now      func() time.Time
}

func NewStarter(audits AuditReader, fixPacks FixPackStore, credits CreditGate, runs RunStore, jobs JobEnqueuer, cfg StarterConfig, logger *slog.Logger) *Starter {
	if cfg.CreditCost < 0 {
		cfg.CreditCost = 0
	}
	if cfg.ApplyMaxAttempts <= 0 {
		cfg.ApplyMaxAttempts = 3
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Starter{
		audits:   audits,
		fixPacks: fixPacks,
		credits:  credits,
		runs:     runs,
		jobs:     jobs,
		cfg:      cfg,
		logger:   logger,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// StartApply checks every precondition, charges the credit, records a queued run
// and enqueues its apply job. Nothing is queued when a precondition fails.
func (s *Starter) StartApply(ctx context.Context, req StartRequest) (*models.ApplyRun, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	audit, err := s.audits.Get(ctx, req.AuditID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("audit %s: %w", req.AuditID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading audit: %w", err)
	}
	if audit.UserID != req.UserID {
		return nil, fmt.Errorf("audit %s: %w", req.AuditID, ErrForbidden)
	}
	if audit.Status != models.AuditStatusCompleted {
		return nil, fmt.Errorf("audit %s is %s: %w", req.AuditID, audit.Status, ErrAuditNotCompleted)
	}

	fp, err := s.fixPacks.Get(ctx, req.FixPackID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("fix pack %s: %w", req.FixPackID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading fix pack: %w", err)
	}
	if fp.UserID != req.UserID || fp.AuditID != req.AuditID {
		return nil, fmt.Errorf("fix pack %s: %w", req.FixPackID, ErrForbidden)
	}

	if err := s.charge(ctx, req.UserID); err != nil {
		return nil, err
	}

	run := &models.ApplyRun{
		ID:             s.newID(),
		UserID:         req.UserID,
		AuditID:        req.AuditID,
		FixPackID:      req.FixPackID,
		RepoOwner:      req.RepoOwner,
		RepoName:       req.RepoName,
		InstallationID: req.InstallationID,
		Status:         models.StatusQueued,
		CreatedAt:      s.now().UTC(),
		Logs: []models.LogEntry{{
			Timestamp: s.now().UTC(),
			Level:     models.LogInfo,
			Message:   fmt.Sprintf("Queued fix pack %q for %s/%s", fp.Title, req.RepoOwner, req.RepoName),
		}},
	}
	if err := s.runs.Create(ctx, run); err != nil {
		s.refund(ctx, req.UserID)
		return nil, fmt.Errorf("creating apply run: %w", err)
	}

	payload := models.ApplyJobPayload{
		ApplyRunID:     run.ID,
		UserID:         run.UserID,
		AuditID:        run.AuditID,
		FixPackID:      run.FixPackID,
		RepoOwner:      run.RepoOwner,
		RepoName:       run.RepoName,
		InstallationID: run.InstallationID,
	}
	_, err = s.jobs.Enqueue(ctx, models.JobClassApply, models.ApplyJobKey(run.ID), payload, queue.EnqueueOptions{
		MaxAttempts: s.cfg.ApplyMaxAttempts,
	})
	if err != nil {
		err = fmt.Errorf("enqueueing apply job: %w", err)
		msg := err.Error()
		if uerr := s.runs.UpdateStatus(context.WithoutCancel(ctx), run.ID, models.StatusFailed, models.StatusUpdate{Error: &msg}); uerr != nil {
			s.logger.Error("failing unqueued apply run failed", "apply_run_id", run.ID, "error", uerr)
		}
		s.refund(ctx, req.UserID)
		return nil, err
	}

	s.logger.Info("apply run queued", "apply_run_id", run.ID, "user_id", run.UserID, "repo", run.FullName())
	return run, nil
}

func (s *Starter) charge(ctx context.Context, userID string) error {
	if s.cfg.CreditCost == 0 {
		return nil
	}

	balance, err := s.credits.Check(ctx, userID)
	if err != nil {
		return fmt.Errorf("checking credits: %w", err)
	}
	if balance < s.cfg.CreditCost {
		return ErrInsufficientCredits
	}

	err = s.credits.Consume(ctx, userID, s.cfg.CreditCost)
	if errors.Is(err, store.ErrInsufficientBalance) {
		return ErrInsufficientCredits
	}
	if err != nil {
		return fmt.Errorf("consuming credits: %w", err)
	}
	return nil
}

func (s *Starter) refund(ctx context.Context, userID string) {
	if s.cfg.CreditCost == 0 {
		return
	}
	if _, err := s.credits.Grant(context.WithoutCancel(ctx), userID, s.cfg.CreditCost); err != nil {
		s.logger.Error("refunding credits failed", "user_id", userID, "error", err)
	}
}

func (r StartRequest) validate() error {
	fields := []struct{ name, value string }{
		{"userId", r.UserID},
		{"auditId", r.AuditID},
		{"fixPackId", r.FixPackID},
		{"repoOwner", r.RepoOwner},
		{"repoName", r.RepoName},
	}
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidRequest, strings.Join(missing, ", "))
	}
	return nil
}
