package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/onlook-dev/fixpack-pipeline/internal/github"
	"github.com/onlook-dev/fixpack-pipeline/internal/patch"
	"github.com/onlook-dev/fixpack-pipeline/internal/queue"
	"github.com/onlook-dev/fixpack-pipeline/internal/service"
	"github.com/onlook-dev/fixpack-pipeline/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchName(t *testing.T) {
	created := time.UnixMilli(1767323045123)

	assert.Equal(t, "cynthia/fix-token-1767323045123", BranchName("", models.FixPackTypeToken, created))
	assert.Equal(t, "bot/fix-layout-1767323045123", BranchName("bot/fix", models.FixPackTypeLayout, created))
}

func TestAttempt_Final(t *testing.T) {
	assert.False(t, Attempt{Number: 1, Max: 3}.Final())
	assert.True(t, Attempt{Number: 3, Max: 3}.Final())
	assert.True(t, Attempt{}.Final())
}

func TestEndToEnd_TokensFix(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)

	run := h.start()
	assert.Equal(t, models.StatusQueued, run.Status)

	job := h.claim(models.JobClassApply)
	require.NoError(t, ApplyHandler(h.orch)(ctx, job))

	applied := h.get(run.ID)
	wantBranch := fmt.Sprintf("cynthia/fix-token-%d", run.CreatedAt.UnixMilli())
	require.NotNil(t, applied.Branch)
	assert.Equal(t, wantBranch, *applied.Branch)
	require.NotNil(t, applied.PRNumber)
	assert.Equal(t, 1, *applied.PRNumber)
	assert.Equal(t, "https://github.com/acme/web/pull/1", *applied.PRURL)
	assert.Equal(t, models.StatusChecksRunning, applied.Status)

	content, ok := h.host.fileOn(wantBranch, "src/tokens.css")
	require.True(t, ok)
	assert.Equal(t, ".btn {\n  color: blue;\n}\n", content)
	main, _ := h.host.fileOn("main", "src/tokens.css")
	assert.Equal(t, ".btn {\n  color: red;\n}\n", main)

	assert.Equal(t, 1, h.host.count("CreateBranch"))
	assert.Equal(t, 1, h.host.count("CreateOrUpdateFile"))
	assert.Equal(t, 1, h.host.count("CreatePullRequest"))
	assert.Equal(t, "fix(token): Use brand color tokens", h.host.prTitle(1))

	fp, err := h.fixPacks.Get(ctx, testFixPack)
	require.NoError(t, err)
	assert.NotNil(t, fp.AppliedAt)

	balance, err := h.credits.Check(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 2, balance)

	monitorJob := h.claim(models.JobClassMonitor)
	assert.Equal(t, models.MonitorJobKey(run.ID), monitorJob.Key)
	require.NoError(t, MonitorHandler(h.monitor, MonitorSettings{PollAttempts: 5, PollInterval: time.Millisecond})(ctx, monitorJob))

	final := h.get(run.ID)
	assert.Equal(t, models.StatusSuccess, final.Status)
	assert.Nil(t, final.Error)
	assert.Equal(t, []models.ApplyRunStatus{
		models.StatusQueued,
		models.StatusRunning,
		models.StatusBranchCreated,
		models.StatusPROpened,
		models.StatusChecksRunning,
		models.StatusSuccess,
	}, h.runs.history())
	assert.Contains(t, messages(final), "Opened pull request #1")
	assert.Contains(t, messages(final), "Patched src/tokens.css (1/1)")
}

func TestApply_SafetyFailureAbortsRemainingDiffs(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, map[string]string{
		"src/tokens.css": "color: red;",
		"src/button.css": "padding: 4px; padding: 4px;",
		"src/card.css":   "margin: 0;",
	})

	fp := tokensFixPack()
	fp.PatchPreview.Diffs = []models.FileDiff{
		{File: "src/tokens.css", Before: "color: red;", After: "color: blue;"},
		{File: "src/button.css", Before: "padding: 4px;", After: "padding: 8px;"},
		{File: "src/card.css", Before: "margin: 0;", After: "margin: 4px;"},
	}
	require.NoError(t, h.fixPacks.Save(ctx, fp))

	run := h.start()
	err := h.orch.Apply(ctx, h.payload(run), Attempt{Number: 1, Max: 3})

	require.Error(t, err)
	assert.True(t, queue.IsPermanent(err))
	var safety *patch.SafetyError
	assert.ErrorAs(t, err, &safety)

	failed := h.get(run.ID)
	assert.Equal(t, models.StatusFailed, failed.Status)
	require.NotNil(t, failed.Error)
	assert.Contains(t, *failed.Error, "src/button.css")
	assert.Contains(t, *failed.Error, "appears 2 times")
	assert.Equal(t, models.LogError, failed.Logs[len(failed.Logs)-1].Level)

	assert.Equal(t, 1, h.host.count("CreateOrUpdateFile"))
	card, _ := h.host.fileOn(*failed.Branch, "src/card.css")
	assert.Equal(t, "margin: 0;", card)
	assert.Equal(t, 0, h.host.count("CreatePullRequest"))

	_, err = h.queue.Latest(ctx, models.MonitorJobKey(run.ID))
	assert.ErrorIs(t, err, queue.ErrNotFound)
}

func TestApply_MissingPatternNamesExpectedText(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, map[string]string{"src/tokens.css": "color: green;"})

	run := h.start()
	err := h.orch.Apply(ctx, h.payload(run), Attempt{Number: 1, Max: 3})

	require.True(t, queue.IsPermanent(err))
	failed := h.get(run.ID)
	assert.Contains(t, *failed.Error, `expected to find: "color: red;"`)
	assert.Equal(t, 0, h.host.count("CreateOrUpdateFile"))
}

func TestApply_PreflightRejectsMissingFiles(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, map[string]string{"README.md": "# web"})

	run := h.start()
	err := h.orch.Apply(ctx, h.payload(run), Attempt{Number: 1, Max: 3})

	require.True(t, queue.IsPermanent(err))
	failed := h.get(run.ID)
	assert.Equal(t, models.StatusFailed, failed.Status)
	assert.Equal(t, "files not found in acme/web@main: src/tokens.css", *failed.Error)
	assert.Equal(t, 0, h.host.count("CreateBranch"))
}

func TestApply_RetryReusesBranchAndPullRequest(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	run := h.start()

	h.host.hook("CreateOrUpdateFile", func(_ context.Context, call int) error {
		if call == 1 {
			return errors.New("502 bad gateway")
		}
		return nil
	})

	err := h.orch.Apply(ctx, h.payload(run), Attempt{Number: 1, Max: 3})
	require.Error(t, err)
	assert.False(t, queue.IsPermanent(err))

	mid := h.get(run.ID)
	assert.Equal(t, models.StatusBranchCreated, mid.Status)
	assert.Nil(t, mid.Error)
	assert.Contains(t, strings.Join(messages(mid), "\n"), "Attempt 1 failed, will retry: writing src/tokens.css")

	require.NoError(t, h.orch.Apply(ctx, h.payload(run), Attempt{Number: 2, Max: 3}))

	done := h.get(run.ID)
	assert.Equal(t, models.StatusChecksRunning, done.Status)
	assert.Equal(t, 2, h.host.count("CreateBranch"))
	assert.Equal(t, 1, h.host.count("ResetBranch"))
	assert.Len(t, h.host.branchNames(), 2)
	assert.Contains(t, messages(done), "Retrying apply (attempt 2 of 3)")
	assert.Contains(t, messages(done), fmt.Sprintf("Reset existing branch %s to main", *done.Branch))
	assert.Equal(t, 1, h.host.count("CreatePullRequest"))
}

func TestApply_RerunAfterPROpenedReusesPullRequest(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	run := h.start()

	// Fail after the PR is opened so the retry walks every step again.
	failMark := true
	h.orch.fixPacks = failingMark{FixPackStore: h.fixPacks, fail: &failMark}

	err := h.orch.Apply(ctx, h.payload(run), Attempt{Number: 1, Max: 3})
	require.Error(t, err)
	assert.Equal(t, models.StatusPROpened, h.get(run.ID).Status)

	failMark = false
	require.NoError(t, h.orch.Apply(ctx, h.payload(run), Attempt{Number: 2, Max: 3}))

	done := h.get(run.ID)
	assert.Equal(t, models.StatusChecksRunning, done.Status)
	assert.Equal(t, 1, h.host.count("CreatePullRequest"))
	assert.Contains(t, messages(done), "Reusing open pull request #1")
	assert.Equal(t, []models.ApplyRunStatus{
		models.StatusQueued,
		models.StatusRunning,
		models.StatusBranchCreated,
		models.StatusPROpened,
		models.StatusChecksRunning,
	}, h.runs.history())
}

type failingMark struct {
	FixPackStore
	fail *bool
}

func (f failingMark) MarkApplied(ctx context.Context, id string, at time.Time) error {
	if *f.fail {
		return errors.New("database is locked")
	}
	return f.FixPackStore.MarkApplied(ctx, id, at)
}

func TestApply_FinalAttemptFailsRun(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	run := h.start()

	h.host.hook("GetDefaultBranch", func(context.Context, int) error {
		return errors.New("connection reset by peer")
	})

	err := h.orch.Apply(ctx, h.payload(run), Attempt{Number: 3, Max: 3})

	require.Error(t, err)
	assert.True(t, queue.IsPermanent(err))
	failed := h.get(run.ID)
	assert.Equal(t, models.StatusFailed, failed.Status)
	assert.Equal(t, "resolving default branch: connection reset by peer", *failed.Error)
}

func TestApply_InterruptedLeavesRunForNextAttempt(t *testing.T) {
	h := newHarness(t, nil)
	run := h.start()

	ctx, cancel := context.WithCancel(context.Background())
	h.host.hook("CreateBranch", func(ctx context.Context, _ int) error {
		cancel()
		return ctx.Err()
	})

	err := h.orch.Apply(ctx, h.payload(run), Attempt{Number: 1, Max: 3})

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, queue.IsPermanent(err))
	interrupted := h.get(run.ID)
	assert.Equal(t, models.StatusRunning, interrupted.Status)
	assert.Nil(t, interrupted.Error)
}

func TestApply_NoCredentialIsPermanent(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	run := h.start()

	hosting := service.NewFactory(fakeConnector{err: github.ErrNoCredential}, DefaultRepairLabel)
	o := New(h.fixPacks, h.runs, h.queue, hosting, Config{}, quietLogger())

	err := o.Apply(ctx, h.payload(run), Attempt{Number: 1, Max: 3})

	assert.True(t, queue.IsPermanent(err))
	assert.ErrorIs(t, err, github.ErrNoCredential)
	assert.Equal(t, models.StatusFailed, h.get(run.ID).Status)
}

func TestApply_RejectsForeignFixPack(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	run := h.start()

	fp := tokensFixPack()
	fp.UserID = "someone-else"
	require.NoError(t, h.fixPacks.Save(ctx, fp))

	err := h.orch.Apply(ctx, h.payload(run), Attempt{Number: 1, Max: 3})

	assert.True(t, queue.IsPermanent(err))
	failed := h.get(run.ID)
	assert.Equal(t, models.StatusFailed, failed.Status)
	assert.Equal(t, errOwnership.Error(), *failed.Error)
	assert.Equal(t, 0, h.host.count("GetDefaultBranch"))
}

func TestApply_PayloadMismatch(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	run := h.start()

	p := h.payload(run)
	p.UserID = "intruder"
	err := h.orch.Apply(ctx, p, Attempt{Number: 1, Max: 3})

	assert.True(t, queue.IsPermanent(err))
	assert.Equal(t, models.StatusFailed, h.get(run.ID).Status)
}

func TestApply_UnknownRun(t *testing.T) {
	h := newHarness(t, nil)

	err := h.orch.Apply(context.Background(), models.ApplyJobPayload{ApplyRunID: "missing"}, Attempt{Number: 1, Max: 3})

	assert.True(t, queue.IsPermanent(err))
}

func TestApply_FinishedRunIsLeftAlone(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	run := h.start()

	msg := "cancelled by operator"
	require.NoError(t, h.runs.UpdateStatus(ctx, run.ID, models.StatusFailed, models.StatusUpdate{Error: &msg}))

	require.NoError(t, h.orch.Apply(ctx, h.payload(run), Attempt{Number: 1, Max: 3}))

	assert.Equal(t, models.StatusFailed, h.get(run.ID).Status)
	assert.Equal(t, 0, h.host.count("GetDefaultBranch"))
}

func TestApply_RedeliveryAfterChecksRunningOnlyEnqueuesMonitor(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	run := h.start()

	require.NoError(t, h.orch.Apply(ctx, h.payload(run), Attempt{Number: 1, Max: 3}))
	first := h.claim(models.JobClassMonitor)
	require.NoError(t, h.queue.Complete(ctx, first))

	calls := h.host.count("CreateBranch")
	require.NoError(t, h.orch.Apply(ctx, h.payload(run), Attempt{Number: 2, Max: 3}))

	assert.Equal(t, calls, h.host.count("CreateBranch"))
	again := h.claim(models.JobClassMonitor)
	assert.NotEqual(t, first.ID, again.ID)
	assert.Equal(t, models.StatusChecksRunning, h.get(run.ID).Status)
}

func TestApply_IdempotentDispatch(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	run := h.start()

	dup, err := h.queue.Enqueue(ctx, models.JobClassApply, models.ApplyJobKey(run.ID), h.payload(run), queue.EnqueueOptions{MaxAttempts: 3})
	require.NoError(t, err)

	pool := queue.NewPool(h.queue, queue.PoolConfig{
		Class:           models.JobClassApply,
		Concurrency:     2,
		PollInterval:    5 * time.Millisecond,
		ShutdownTimeout: time.Second,
	}, ApplyHandler(h.orch), quietLogger())

	poolCtx, stop := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = pool.Run(poolCtx)
	}()
	t.Cleanup(func() {
		stop()
		<-done
	})

	require.Eventually(t, func() bool {
		job, err := h.queue.Get(ctx, dup.ID)
		return err == nil && job.Status == queue.StatusCompleted
	}, 5*time.Second, 10*time.Millisecond)

	counts, err := h.queue.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[models.JobClassApply][queue.StatusCompleted])
	assert.Equal(t, 1, h.host.count("CreateBranch"))
	assert.Equal(t, 1, h.host.count("CreatePullRequest"))
	assert.Equal(t, models.StatusChecksRunning, h.get(run.ID).Status)
}
