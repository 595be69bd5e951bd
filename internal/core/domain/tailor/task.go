package tailor

import "time"

// TaskState is a Task's lifecycle state.
type TaskState string

const (
	TaskPending   TaskState = "pending"
	TaskRunning   TaskState = "running"
	TaskCompleted TaskState = "completed"
	TaskFailed    TaskState = "failed"
)

// IsTerminal reports whether the state is one the Task can never leave.
func (s TaskState) IsTerminal() bool {
	return s == TaskCompleted || s == TaskFailed
}

// Progress checkpoints emitted by the pipeline, per spec.md §4.10.
const (
	ProgressStart      = 0
	ProgressParsing    = 10
	ProgressKeywords   = 20
	ProgressSelection  = 40
	ProgressPersisted  = 80
	ProgressComplete   = 100
)

// TailorRequest is the input to a tailoring run.
type TailorRequest struct {
	ResumeSource   string // raw typeset source, or empty if ResumeURL is set
	ResumeURL      string // fetched via ports.ContentFetcher when set
	JobTitle       string
	Company        string
	JobDescription string
	JobURL         string // fetched via ports.ContentFetcher when set
	TargetBullets  int
	UseAI          bool
	RequestedBy    string // authenticated user ID

	// JobRequirements is optional structured fit-scoring input. The web
	// generation flow never supplies it (job postings arrive as free text);
	// batch/API callers that already have structured requirements can set
	// it to get a JobFitScore alongside the ATS score.
	JobRequirements *JobRequirements
}

// TaskResult holds the outcome of a completed pipeline run.
type TaskResult struct {
	VariantID string
	ATSScore  *ATSScore
	FitScore  *JobFitScore
}

// Task is one execution of the tailoring pipeline, addressed by a short
// identifier. A Task is created by the orchestrator, mutated only by its
// own pipeline goroutine, and immutable once terminal.
type Task struct {
	ID        string
	State     TaskState
	Percent   int
	Message   string
	CreatedAt time.Time
	UpdatedAt time.Time

	Result *TaskResult
	Err    string
}

// Snapshot returns a value copy safe to hand to a reader without sharing
// the orchestrator's internal pointer.
func (t *Task) Snapshot() Task {
	cp := *t
	if t.Result != nil {
		r := *t.Result
		cp.Result = &r
	}
	return cp
}
