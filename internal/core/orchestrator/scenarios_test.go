package orchestrator_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/orchestrator"
)

type fakeEnhancerBackend struct{}

func (f *fakeEnhancerBackend) EnhanceBullet(ctx context.Context, bulletText, jobTitle string, keywords []string) (string, error) {
	return bulletText + " using Kafka and Kubernetes.", nil
}

func (f *fakeEnhancerBackend) GenerateSummary(ctx context.Context, bullets, skills []string, jobTitle string, keywords []string) (string, error) {
	return "Tailored summary for " + jobTitle + ".", nil
}

func (f *fakeEnhancerBackend) Available(ctx context.Context) bool { return true }

func readPersistedVariant(t *testing.T, storage *fakeStorage, variantID string) tailor.Variant {
	t.Helper()
	raw, ok := storage.uploaded[variantID+"_metadata.json"]
	require.True(t, ok, "variant metadata should have been persisted")

	var v tailor.Variant
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

// Scenario 2 (spec.md §8): AI disabled. Expect bullets_enhanced = 0,
// keywords_added = [], a variant is still produced, and the ATS overall
// score is bit-identical across repeated runs of the same disabled-AI
// request (the idempotence property from spec.md §8, restricted to the
// AI-off path which has no model nondeterminism to account for).
func TestScenarioAIDisabledSkipsEnhancementAndIsDeterministic(t *testing.T) {
	runOnce := func() (tailor.Task, tailor.Variant) {
		gateway := &fakeGateway{}
		storage := newFakeStorage()
		o := orchestrator.New(nil, &fakeEnhancerBackend{}, nil, storage, gateway, 2026)

		taskID, err := o.Start(context.Background(), tailor.TailorRequest{
			ResumeSource:   sampleResume,
			JobTitle:       "Staff Backend Engineer",
			JobDescription: "Looking for a backend engineer with Kafka and Kubernetes experience.",
			RequestedBy:    "user-ai-off",
			UseAI:          false,
		})
		require.NoError(t, err)

		task := awaitTerminal(t, o, taskID)
		require.Equal(t, tailor.TaskCompleted, task.State)

		variant := readPersistedVariant(t, storage, task.Result.VariantID)
		return task, variant
	}

	firstTask, firstVariant := runOnce()
	secondTask, secondVariant := runOnce()

	assert.Equal(t, 0, firstVariant.Enhancement.BulletsEnhanced)
	assert.Empty(t, firstVariant.Enhancement.KeywordsAdded)
	for _, sec := range firstVariant.Content.ExperienceSections {
		for _, sb := range sec.SelectedBullets {
			assert.False(t, sb.WasEnhanced)
		}
	}

	require.NotNil(t, firstTask.Result.ATSScore)
	require.NotNil(t, secondTask.Result.ATSScore)
	assert.Equal(t, firstTask.Result.ATSScore.Overall, secondTask.Result.ATSScore.Overall)
	_ = secondVariant
}

// Scenario 6 (spec.md §8): two start calls in quick succession produce two
// distinct task IDs, two independently-progressing, monotone streams, and
// two distinct persisted variants.
func TestScenarioConcurrentTasksAreIndependent(t *testing.T) {
	gateway := &fakeGateway{}
	storage := newFakeStorage()
	o := orchestrator.New(nil, nil, nil, storage, gateway, 2026)

	taskA, err := o.Start(context.Background(), tailor.TailorRequest{
		ResumeSource:   sampleResume,
		JobTitle:       "Backend Engineer",
		JobDescription: "Looking for Go and Kafka experience.",
		RequestedBy:    "user-a",
	})
	require.NoError(t, err)

	taskB, err := o.Start(context.Background(), tailor.TailorRequest{
		ResumeSource:   sampleResume,
		JobTitle:       "Platform Engineer",
		JobDescription: "Looking for Kubernetes and Terraform experience.",
		RequestedBy:    "user-b",
	})
	require.NoError(t, err)

	require.NotEqual(t, taskA, taskB)

	monotone := func(events []tailor.Task) bool {
		for i := 1; i < len(events); i++ {
			if events[i].Percent < events[i-1].Percent {
				return false
			}
		}
		return true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	streamA, err := o.Stream(ctx, taskA)
	require.NoError(t, err)
	streamB, err := o.Stream(ctx, taskB)
	require.NoError(t, err)

	var eventsA, eventsB []tailor.Task
	doneA, doneB := streamA == nil, streamB == nil
	for !doneA || !doneB {
		select {
		case snap, ok := <-streamA:
			if !ok {
				doneA = true
				continue
			}
			eventsA = append(eventsA, snap)
		case snap, ok := <-streamB:
			if !ok {
				doneB = true
				continue
			}
			eventsB = append(eventsB, snap)
		case <-ctx.Done():
			t.Fatal("timed out waiting for both streams to finish")
		}
	}

	require.NotEmpty(t, eventsA)
	require.NotEmpty(t, eventsB)
	assert.True(t, monotone(eventsA))
	assert.True(t, monotone(eventsB))
	assert.True(t, eventsA[len(eventsA)-1].State.IsTerminal())
	assert.True(t, eventsB[len(eventsB)-1].State.IsTerminal())

	taskStateA := awaitTerminal(t, o, taskA)
	taskStateB := awaitTerminal(t, o, taskB)
	require.Equal(t, tailor.TaskCompleted, taskStateA.State)
	require.Equal(t, tailor.TaskCompleted, taskStateB.State)

	variantA := readPersistedVariant(t, storage, taskStateA.Result.VariantID)
	variantB := readPersistedVariant(t, storage, taskStateB.Result.VariantID)
	assert.NotEqual(t, variantA.ID, variantB.ID)
	assert.NotEqual(t, variantA.SourcePath, variantB.SourcePath)

	require.Len(t, gateway.saved, 2)
}
