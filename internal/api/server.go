package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onlook-dev/fixpack-pipeline/internal/events"
	"github.com/onlook-dev/fixpack-pipeline/internal/github"
	"github.com/onlook-dev/fixpack-pipeline/internal/metrics"
	"github.com/onlook-dev/fixpack-pipeline/internal/orchestrator"
	"github.com/onlook-dev/fixpack-pipeline/internal/store"
	"github.com/onlook-dev/fixpack-pipeline/models"
)

type ApplyStarter interface {
	StartApply(ctx context.Context, req orchestrator.StartRequest) (*models.ApplyRun, error)
}

type RunReader interface {
	Get(ctx context.Context, id string) (*models.ApplyRun, error)
}

// Deps wires the router. The webhook route is only mounted when WebhookSecret is set,
// so unsigned deliveries can never wake a monitor.
type Deps struct {
	Starter       ApplyStarter
	Runs          RunReader
	Bus           *events.Bus
	WebhookSecret string
	Logger        *slog.Logger
}

type handler struct {
	starter ApplyStarter
	runs    RunReader
	bus     *events.Bus
	secret  []byte
	logger  *slog.Logger
}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := &handler{
		starter: deps.Starter,
		runs:    deps.Runs,
		bus:     deps.Bus,
		secret:  []byte(deps.WebhookSecret),
		logger:  logger,
	}

	r := gin.New()
	r.Use(requestID(), requestLogger(logger), recovery(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())
	if len(h.secret) > 0 {
		r.POST("/webhooks/github", h.webhook)
	}

	v1 := r.Group("/v1", requireUser())
	v1.POST("/apply-runs", h.startApply)
	v1.GET("/apply-runs/:id", h.getApplyRun)

	return r
}

func (h *handler) startApply(c *gin.Context) {
	var req orchestrator.StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	req.UserID = c.GetString(userIDKey)

	run, err := h.starter.StartApply(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, orchestrator.ErrInvalidRequest):
			respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		case errors.Is(err, orchestrator.ErrNotFound):
			respondError(c, http.StatusNotFound, "not_found", err.Error())
		case errors.Is(err, orchestrator.ErrForbidden):
			respondError(c, http.StatusForbidden, "forbidden", err.Error())
		case errors.Is(err, orchestrator.ErrAuditNotCompleted):
			respondError(c, http.StatusConflict, "audit_not_completed", err.Error())
		case errors.Is(err, orchestrator.ErrInsufficientCredits):
			respondError(c, http.StatusPaymentRequired, "insufficient_credits", "not enough credits to apply a fix pack")
		default:
			h.logger.Error("starting apply run failed", "request_id", c.GetString(requestIDKey), "error", err)
			respondError(c, http.StatusInternalServerError, "internal_error", "failed to start apply run")
		}
		return
	}

	c.JSON(http.StatusAccepted, run)
}

// Runs belonging to another user are reported as missing.
func (h *handler) getApplyRun(c *gin.Context) {
	run, err := h.runs.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, "not_found", "apply run not found")
		return
	}
	if err != nil {
		h.logger.Error("loading apply run failed", "apply_run_id", c.Param("id"), "error", err)
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to load apply run")
		return
	}
	if run.UserID != c.GetString(userIDKey) {
		respondError(c, http.StatusNotFound, "not_found", "apply run not found")
		return
	}

	c.JSON(http.StatusOK, run)
}

func (h *handler) webhook(c *gin.Context) {
	note, err := github.ParseCheckEvent(c.Request, h.secret)
	if errors.Is(err, github.ErrUnsupportedEvent) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		h.logger.Warn("rejected webhook delivery", "request_id", c.GetString(requestIDKey), "error", err)
		respondError(c, http.StatusBadRequest, "invalid_webhook", "invalid webhook delivery")
		return
	}

	woken := 0
	if h.bus != nil {
		woken = h.bus.PublishCheck(note)
	}
	h.logger.Debug("check activity", "repo", note.Owner+"/"+note.Repo, "head_sha", note.HeadSHA, "woken", woken)
	c.JSON(http.StatusAccepted, gin.H{"woken": woken})
}
