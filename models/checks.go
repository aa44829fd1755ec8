package models

type CheckStatus string

const (
	CheckStatusQueued     CheckStatus = "queued"
	CheckStatusInProgress CheckStatus = "in_progress"
	CheckStatusCompleted  CheckStatus = "completed"
)

type CheckConclusion string

const (
	ConclusionNone           CheckConclusion = ""
	ConclusionSuccess        CheckConclusion = "success"
	ConclusionFailure        CheckConclusion = "failure"
	ConclusionCancelled      CheckConclusion = "cancelled"
	ConclusionTimedOut       CheckConclusion = "timed_out"
	ConclusionActionRequired CheckConclusion = "action_required"
	ConclusionNeutral        CheckConclusion = "neutral"
	ConclusionSkipped        CheckConclusion = "skipped"
)

// Failing reports whether a completed check run with this conclusion blocks the PR.
func (c CheckConclusion) Failing() bool {
	return c == ConclusionFailure || c == ConclusionTimedOut || c == ConclusionActionRequired
}

type CheckRun struct {
	Name       string
	Status     CheckStatus
	Conclusion CheckConclusion
}

type CheckRunSummary struct {
	Status       CheckStatus
	Conclusion   CheckConclusion
	AllCompleted bool
	AnyFailures  bool
	Total        int
}

// SummarizeCheckRuns classifies the aggregate state of a commit's check runs.
// No check runs at all means CI has not reported yet, which counts as not completed.
func SummarizeCheckRuns(runs []CheckRun) CheckRunSummary {
	if len(runs) == 0 {
		return CheckRunSummary{Status: CheckStatusQueued}
	}

	summary := CheckRunSummary{AllCompleted: true, Total: len(runs)}
	for _, run := range runs {
		if run.Status != CheckStatusCompleted {
			summary.AllCompleted = false
			continue
		}
		if run.Conclusion.Failing() {
			summary.AnyFailures = true
		}
	}

	if !summary.AllCompleted {
		summary.Status = CheckStatusInProgress
		return summary
	}

	summary.Status = CheckStatusCompleted
	summary.Conclusion = ConclusionSuccess
	if summary.AnyFailures {
		summary.Conclusion = ConclusionFailure
	}
	return summary
}
