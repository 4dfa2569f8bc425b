package viewstate_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uikit/pkg/viewstate"
)

func TestTracker(t *testing.T) {
	t.Parallel()

	t.Run("starts in the initial state", func(t *testing.T) {
		tr := viewstate.NewTracker(taskReady)
		assert.Equal(t, taskReady, tr.Current())
		assert.True(t, tr.View().IsIdle())
	})

	t.Run("set updates current state and derived view", func(t *testing.T) {
		tr := viewstate.NewTracker(taskReady)

		tr.Set(taskInProgress)
		assert.Equal(t, taskInProgress, tr.Current())
		assert.True(t, tr.View().IsProcessing())

		tr.Set(taskFailed)
		assert.True(t, tr.View().IsError())
		assert.ErrorIs(t, tr.View().Err(), errTaskFailed)
	})

	t.Run("notifies subscribers with state and view", func(t *testing.T) {
		tr := viewstate.NewTracker(taskReady)

		var gotStates []taskState
		var gotViews []viewstate.ViewState
		tr.Subscribe(func(s taskState, v viewstate.ViewState) {
			gotStates = append(gotStates, s)
			gotViews = append(gotViews, v)
		})

		tr.Set(taskInProgress)
		tr.Set(taskSucceeded)

		require.Equal(t, []taskState{taskInProgress, taskSucceeded}, gotStates)
		require.Len(t, gotViews, 2)
		assert.True(t, gotViews[0].IsProcessing())
		assert.True(t, gotViews[1].IsIdle())
	})

	t.Run("nil subscriber is ignored", func(t *testing.T) {
		tr := viewstate.NewTracker(taskReady)
		tr.Subscribe(nil)
		tr.Set(taskInProgress)
		assert.Equal(t, taskInProgress, tr.Current())
	})

	t.Run("logs state transitions", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		tr := viewstate.NewTracker(taskReady, viewstate.WithLogger[taskState](log))
		tr.Set(taskInProgress)

		out := buf.String()
		assert.Contains(t, out, "operation state changed")
		assert.Contains(t, out, "from=ready")
		assert.Contains(t, out, "to=in_progress")
		assert.Contains(t, out, "view=processing")
	})
}
