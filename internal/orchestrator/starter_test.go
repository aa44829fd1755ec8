package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/onlook-dev/fixpack-pipeline/internal/queue"
	"github.com/onlook-dev/fixpack-pipeline/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() StartRequest {
	return StartRequest{
		UserID:    testUser,
		AuditID:   testAudit,
		FixPackID: testFixPack,
		RepoOwner: "acme",
		RepoName:  "web",
	}
}

func TestStartApply_QueuesRun(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)

	run, err := h.starter.StartApply(ctx, validRequest())
	require.NoError(t, err)

	stored := h.get(run.ID)
	assert.Equal(t, models.StatusQueued, stored.Status)
	assert.Equal(t, testUser, stored.UserID)
	require.Len(t, stored.Logs, 1)
	assert.Equal(t, `Queued fix pack "Use brand color tokens" for acme/web`, stored.Logs[0].Message)

	job, err := h.queue.Latest(ctx, models.ApplyJobKey(run.ID))
	require.NoError(t, err)
	assert.Equal(t, queue.StatusPending, job.Status)
	assert.Equal(t, 3, job.MaxAttempts)

	var payload models.ApplyJobPayload
	require.NoError(t, job.Decode(&payload))
	assert.Equal(t, h.payload(stored), payload)

	balance, err := h.credits.Check(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 2, balance)
}

func TestStartApply_Preconditions(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, h *harness)
		req     func() StartRequest
		wantErr error
	}{
		{
			name:    "missing fields",
			req:     func() StartRequest { r := validRequest(); r.RepoName = " "; return r },
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "unknown audit",
			req:     func() StartRequest { r := validRequest(); r.AuditID = "nope"; return r },
			wantErr: ErrNotFound,
		},
		{
			name: "audit of another user",
			setup: func(t *testing.T, h *harness) {
				require.NoError(t, h.audits.Save(context.Background(), models.Audit{ID: testAudit, UserID: "other", Status: models.AuditStatusCompleted}))
			},
			wantErr: ErrForbidden,
		},
		{
			name: "audit still running",
			setup: func(t *testing.T, h *harness) {
				require.NoError(t, h.audits.Save(context.Background(), models.Audit{ID: testAudit, UserID: testUser, Status: models.AuditStatusRunning}))
			},
			wantErr: ErrAuditNotCompleted,
		},
		{
			name:    "unknown fix pack",
			req:     func() StartRequest { r := validRequest(); r.FixPackID = "nope"; return r },
			wantErr: ErrNotFound,
		},
		{
			name: "fix pack of another user",
			setup: func(t *testing.T, h *harness) {
				fp := tokensFixPack()
				fp.UserID = "other"
				require.NoError(t, h.fixPacks.Save(context.Background(), fp))
			},
			wantErr: ErrForbidden,
		},
		{
			name: "fix pack from another audit",
			setup: func(t *testing.T, h *harness) {
				fp := tokensFixPack()
				fp.AuditID = "audit-2"
				require.NoError(t, h.fixPacks.Save(context.Background(), fp))
			},
			wantErr: ErrForbidden,
		},
		{
			name: "no credits",
			setup: func(t *testing.T, h *harness) {
				require.NoError(t, h.credits.Consume(context.Background(), testUser, 3))
			},
			wantErr: ErrInsufficientCredits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			h := newHarness(t, nil)
			if tt.setup != nil {
				tt.setup(t, h)
			}
			req := validRequest()
			if tt.req != nil {
				req = tt.req()
			}
			before, err := h.credits.Check(ctx, testUser)
			require.NoError(t, err)

			run, err := h.starter.StartApply(ctx, req)

			assert.Nil(t, run)
			assert.ErrorIs(t, err, tt.wantErr)

			counts, err := h.queue.Counts(ctx)
			require.NoError(t, err)
			assert.Empty(t, counts)

			after, err := h.credits.Check(ctx, testUser)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

type failingEnqueuer struct{}

func (failingEnqueuer) Enqueue(context.Context, models.JobClass, string, any, queue.EnqueueOptions) (*queue.Job, error) {
	return nil, errors.New("database is locked")
}

func TestStartApply_RefundsWhenEnqueueFails(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	s := NewStarter(h.audits, h.fixPacks, h.credits, h.runs.ApplyRuns, failingEnqueuer{}, StarterConfig{CreditCost: 1}, quietLogger())

	run, err := s.StartApply(ctx, validRequest())

	assert.Nil(t, run)
	assert.EqualError(t, err, "enqueueing apply job: database is locked")
	balance, err := h.credits.Check(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 3, balance)
}

func TestStartApply_FreeWhenCostIsZero(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	require.NoError(t, h.credits.Consume(ctx, testUser, 3))
	s := NewStarter(h.audits, h.fixPacks, h.credits, h.runs.ApplyRuns, h.queue, StarterConfig{}, quietLogger())

	run, err := s.StartApply(ctx, validRequest())

	require.NoError(t, err)
	assert.Equal(t, models.StatusQueued, run.Status)
}

func TestStartRequest_ValidateListsMissingFields(t *testing.T) {
	err := StartRequest{AuditID: "a"}.validate()

	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.EqualError(t, err, "invalid apply request: missing userId, fixPackId, repoOwner, repoName")
}
