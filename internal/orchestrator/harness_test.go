package orchestrator

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/onlook-dev/fixpack-pipeline/internal/queue"
	"github.com/onlook-dev/fixpack-pipeline/internal/service"
	"github.com/onlook-dev/fixpack-pipeline/internal/store"
	"github.com/onlook-dev/fixpack-pipeline/internal/store/storetest"
	"github.com/onlook-dev/fixpack-pipeline/models"
	"github.com/stretchr/testify/require"
)

const (
	testUser    = "user-1"
	testAudit   = "audit-1"
	testFixPack = "fp-1"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingRuns remembers every status write that landed.
type recordingRuns struct {
	*store.ApplyRuns

	mu       sync.Mutex
	statuses []models.ApplyRunStatus
}

func (r *recordingRuns) UpdateStatus(ctx context.Context, id string, status models.ApplyRunStatus, upd models.StatusUpdate) error {
	if err := r.ApplyRuns.UpdateStatus(ctx, id, status, upd); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if n := len(r.statuses); n == 0 || r.statuses[n-1] != status {
		r.statuses = append(r.statuses, status)
	}
	return nil
}

func (r *recordingRuns) history() []models.ApplyRunStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.ApplyRunStatus{models.StatusQueued}, r.statuses...)
}

type harness struct {
	t        *testing.T
	host     *fakeHost
	runs     *recordingRuns
	fixPacks *store.FixPacks
	audits   *store.Audits
	credits  *store.Credits
	queue    *queue.Queue
	orch     *Orchestrator
	monitor  *Monitor
	starter  *Starter
}

func tokensFixPack() *models.FixPack {
	return &models.FixPack{
		ID:          testFixPack,
		AuditID:     testAudit,
		UserID:      testUser,
		Type:        models.FixPackTypeToken,
		Title:       "Use brand color tokens",
		Description: "Swap hard-coded red for the brand blue.",
		PatchPreview: models.PatchPreview{Diffs: []models.FileDiff{
			{File: "src/tokens.css", Before: "color: red;", After: "color: blue;"},
		}},
		FilesAffected: []string{"src/tokens.css"},
		IssuesFixed:   []models.Issue{{Title: "Off-brand primary color", Severity: "medium"}},
		CreatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func newHarness(t *testing.T, files map[string]string) *harness {
	t.Helper()
	ctx := context.Background()
	db := storetest.NewSQLite(t)

	if files == nil {
		files = map[string]string{"src/tokens.css": ".btn {\n  color: red;\n}\n", "README.md": "# web\n"}
	}

	h := &harness{
		t:        t,
		host:     newFakeHost(files),
		runs:     &recordingRuns{ApplyRuns: &store.ApplyRuns{DB: db}},
		fixPacks: &store.FixPacks{DB: db},
		audits:   &store.Audits{DB: db},
		credits:  &store.Credits{DB: db},
		queue:    queue.New(db),
	}
	h.host.checks = passing

	require.NoError(t, h.audits.Save(ctx, models.Audit{ID: testAudit, UserID: testUser, Status: models.AuditStatusCompleted}))
	require.NoError(t, h.fixPacks.Save(ctx, tokensFixPack()))
	_, err := h.credits.Grant(ctx, testUser, 3)
	require.NoError(t, err)

	hosting := service.NewFactory(fakeConnector{client: h.host}, DefaultRepairLabel)
	h.orch = New(h.fixPacks, h.runs, h.queue, hosting, Config{MonitorMaxAttempts: 1}, quietLogger())
	h.monitor = NewMonitor(h.runs, hosting, PollWaiter{}, quietLogger())
	h.starter = NewStarter(h.audits, h.fixPacks, h.credits, h.runs.ApplyRuns, h.queue, StarterConfig{CreditCost: 1, ApplyMaxAttempts: 3}, quietLogger())
	return h
}

func (h *harness) start() *models.ApplyRun {
	h.t.Helper()
	run, err := h.starter.StartApply(context.Background(), StartRequest{
		UserID:         testUser,
		AuditID:        testAudit,
		FixPackID:      testFixPack,
		RepoOwner:      "acme",
		RepoName:       "web",
		InstallationID: "777",
	})
	require.NoError(h.t, err)
	return run
}

func (h *harness) payload(run *models.ApplyRun) models.ApplyJobPayload {
	return models.ApplyJobPayload{
		ApplyRunID:     run.ID,
		UserID:         run.UserID,
		AuditID:        run.AuditID,
		FixPackID:      run.FixPackID,
		RepoOwner:      run.RepoOwner,
		RepoName:       run.RepoName,
		InstallationID: run.InstallationID,
	}
}

func (h *harness) get(id string) *models.ApplyRun {
	h.t.Helper()
	run, err := h.runs.Get(context.Background(), id)
	require.NoError(h.t, err)
	return run
}

// claim takes the next due job of class, failing the test when there is none.
func (h *harness) claim(class models.JobClass) *queue.Job {
	h.t.Helper()
	job, err := h.queue.Claim(context.Background(), class, "test-worker")
	require.NoError(h.t, err)
	require.NotNil(h.t, job, "no %s job due", class)
	return job
}

func (h *harness) monitorRequest(run *models.ApplyRun, attempts int) MonitorRequest {
	return MonitorRequest{
		ApplyRunID:     run.ID,
		UserID:         run.UserID,
		RepoOwner:      run.RepoOwner,
		RepoName:       run.RepoName,
		PRNumber:       *run.PRNumber,
		Branch:         *run.Branch,
		InstallationID: run.InstallationID,
		MaxAttempts:    attempts,
		PollInterval:   time.Millisecond,
	}
}

func messages(run *models.ApplyRun) []string {
	out := make([]string, 0, len(run.Logs))
	for _, l := range run.Logs {
		out = append(out, l.Message)
	}
	return out
}
