package tailor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

func TestTaskStateIsTerminal(t *testing.T) {
	assert.True(t, tailor.TaskCompleted.IsTerminal())
	assert.True(t, tailor.TaskFailed.IsTerminal())
	assert.False(t, tailor.TaskPending.IsTerminal())
	assert.False(t, tailor.TaskRunning.IsTerminal())
}

func TestTaskSnapshotCopiesResultByValue(t *testing.T) {
	task := &tailor.Task{
		ID:    "t1",
		State: tailor.TaskCompleted,
		Result: &tailor.TaskResult{
			VariantID: "v1",
		},
	}

	snap := task.Snapshot()
	snap.Result.VariantID = "mutated"

	assert.Equal(t, "v1", task.Result.VariantID, "mutating the snapshot's result must not affect the original task")
}

func TestTaskSnapshotHandlesNilResult(t *testing.T) {
	task := &tailor.Task{ID: "t1", State: tailor.TaskPending}

	snap := task.Snapshot()

	assert.Nil(t, snap.Result)
}
