package orchestrator_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/orchestrator"
	"github.com/SeltikHD/chameleon-vitae/internal/core/ports"
)

const sampleResume = `
\section{Summary}
Backend engineer with a decade of experience building distributed systems at scale.

\section{Experience}
\resumeSubheading{Senior Backend Engineer}{Jan 2020 -- Present}{Acme Corp}{Remote}
\resumeItem{Built a real-time analytics pipeline processing 2B events per day.}
\resumeItem{Led a team of five engineers across two time zones.}
`

type fakeFetcher struct {
	text string
	err  error
}

func (f *fakeFetcher) FetchText(ctx context.Context, url string) (string, error) {
	return f.text, f.err
}

type fakeStorage struct {
	uploaded map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploaded: make(map[string][]byte)}
}

func (s *fakeStorage) Upload(ctx context.Context, req ports.UploadRequest) (*ports.UploadResult, error) {
	data, err := io.ReadAll(req.Content)
	if err != nil {
		return nil, err
	}
	s.uploaded[req.Key] = data
	return &ports.UploadResult{Key: req.Key, Size: int64(len(data))}, nil
}

func (s *fakeStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := s.uploaded[key]
	if !ok {
		return nil, tailor.ErrVariantNotFound
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}

func (s *fakeStorage) Delete(ctx context.Context, key string) error {
	delete(s.uploaded, key)
	return nil
}

func (s *fakeStorage) GetURL(ctx context.Context, key string) (string, error) {
	return "file://" + key, nil
}

func (s *fakeStorage) Close() error { return nil }

type fakeGateway struct {
	saved []ports.TailoringVariant
}

func (g *fakeGateway) SaveVariant(ctx context.Context, v ports.TailoringVariant) (string, error) {
	g.saved = append(g.saved, v)
	return v.ID, nil
}

func (g *fakeGateway) GetVariant(ctx context.Context, id string) (*ports.TailoringVariant, error) {
	for _, v := range g.saved {
		if v.ID == id {
			return &v, nil
		}
	}
	return nil, tailor.ErrVariantNotFound
}

func (g *fakeGateway) ListVariants(ctx context.Context, userID string) ([]ports.TailoringVariant, error) {
	return g.saved, nil
}

func (g *fakeGateway) DeleteVariant(ctx context.Context, id string) error {
	return nil
}

func awaitTerminal(t *testing.T, o *orchestrator.Orchestrator, taskID string) tailor.Task {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		task, err := o.Status(taskID)
		require.NoError(t, err)
		if task.State.IsTerminal() {
			return task
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("task did not reach a terminal state in time")
	return tailor.Task{}
}

func TestOrchestratorCompletesWithoutOptionalCollaborators(t *testing.T) {
	gateway := &fakeGateway{}
	storage := newFakeStorage()

	o := orchestrator.New(nil, nil, nil, storage, gateway, 2026)

	taskID, err := o.Start(context.Background(), tailor.TailorRequest{
		ResumeSource:   sampleResume,
		JobTitle:       "Staff Backend Engineer",
		JobDescription: "Looking for a backend engineer with Kafka and Kubernetes experience.",
		RequestedBy:    "user-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, taskID)

	task := awaitTerminal(t, o, taskID)
	require.Equal(t, tailor.TaskCompleted, task.State)
	require.NotNil(t, task.Result)
	assert.NotEmpty(t, task.Result.VariantID)
	assert.NotNil(t, task.Result.ATSScore)
	assert.Nil(t, task.Result.FitScore, "fit score is only computed when JobRequirements is supplied")

	require.Len(t, gateway.saved, 1)
	assert.Equal(t, "user-1", gateway.saved[0].UserID)
	assert.NotEmpty(t, storage.uploaded)
}

func TestOrchestratorFetchesResumeAndJobFromURLs(t *testing.T) {
	gateway := &fakeGateway{}
	storage := newFakeStorage()
	fetcher := &fakeFetcher{text: sampleResume}

	o := orchestrator.New(fetcher, nil, nil, storage, gateway, 2026)

	taskID, err := o.Start(context.Background(), tailor.TailorRequest{
		ResumeURL:   "https://example.com/resume.tex",
		JobTitle:    "Backend Engineer",
		JobURL:      "https://example.com/job",
		RequestedBy: "user-2",
	})
	require.NoError(t, err)

	task := awaitTerminal(t, o, taskID)
	assert.Equal(t, tailor.TaskCompleted, task.State)
}

func TestOrchestratorFailsOnMissingCollaboratorForURLInput(t *testing.T) {
	o := orchestrator.New(nil, nil, nil, newFakeStorage(), &fakeGateway{}, 2026)

	taskID, err := o.Start(context.Background(), tailor.TailorRequest{
		ResumeURL:   "https://example.com/resume.tex",
		JobTitle:    "Backend Engineer",
		JobURL:      "https://example.com/job",
		RequestedBy: "user-3",
	})
	require.NoError(t, err)

	task := awaitTerminal(t, o, taskID)
	assert.Equal(t, tailor.TaskFailed, task.State)
	assert.Contains(t, task.Err, "external service unavailable")
}

func TestOrchestratorRejectsInvalidRequest(t *testing.T) {
	o := orchestrator.New(nil, nil, nil, nil, nil, 2026)

	_, err := o.Start(context.Background(), tailor.TailorRequest{})
	assert.ErrorIs(t, err, tailor.ErrInputInvalid)
}

func TestOrchestratorStatusUnknownTask(t *testing.T) {
	o := orchestrator.New(nil, nil, nil, nil, nil, 2026)

	_, err := o.Status("does-not-exist")
	assert.ErrorIs(t, err, tailor.ErrTaskNotFound)
}

func TestOrchestratorStreamEmitsUntilTerminal(t *testing.T) {
	gateway := &fakeGateway{}
	storage := newFakeStorage()
	o := orchestrator.New(nil, nil, nil, storage, gateway, 2026)

	taskID, err := o.Start(context.Background(), tailor.TailorRequest{
		ResumeSource:   sampleResume,
		JobTitle:       "Backend Engineer",
		JobDescription: "Backend role requiring Go and PostgreSQL.",
		RequestedBy:    "user-4",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, err := o.Stream(ctx, taskID)
	require.NoError(t, err)

	var last tailor.Task
	for snap := range events {
		last = snap
	}

	assert.True(t, last.State.IsTerminal())
}
