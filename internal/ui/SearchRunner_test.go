package ui

import (
	"context"
	"testing"
	"time"

	"github.com/Mshel/pathviz/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyTestGrid(t *testing.T) *engine.Grid {
	t.Helper()
	grid, err := engine.NewGrid(5, 5)
	require.NoError(t, err)
	grid.PlaceAt(engine.Position{X: 0, Y: 0}, engine.LeftButton)
	grid.PlaceAt(engine.Position{X: 4, Y: 4}, engine.LeftButton)
	return grid
}

func TestSearchRunnerStreamsFramesThenDone(t *testing.T) {
	grid := readyTestGrid(t)
	runner := StartSearchRunner(context.Background(), grid, engine.BFS, 0, 0)

	var explore, path int
	var done *searchDoneMsg
	for msg := range runner.UpdateChannel {
		switch msg := msg.(type) {
		case searchFrameMsg:
			require.Nil(t, done, "frame after done")
			if msg.step.Kind == engine.PathStep {
				path++
				assert.Equal(t, engine.Path, msg.frame[msg.step.Position.Y][msg.step.Position.X])
			} else {
				explore++
			}
		case searchDoneMsg:
			done = &msg
		}
	}

	require.NotNil(t, done)
	require.NoError(t, done.err)
	assert.Equal(t, 8, done.result.Length())
	assert.Equal(t, 7, path)
	assert.Equal(t, done.result.ExpandedCells, explore)
	assert.Equal(t, grid.Snapshot(), done.frame)
}

func TestSearchRunnerReportsNoPath(t *testing.T) {
	grid := readyTestGrid(t)
	for y := 0; y < 5; y++ {
		grid.PlaceAt(engine.Position{X: 2, Y: y}, engine.LeftButton)
	}
	runner := StartSearchRunner(context.Background(), grid, engine.DFS, 0, 0)

	var last any
	for msg := range runner.UpdateChannel {
		last = msg
	}

	done, ok := last.(searchDoneMsg)
	require.True(t, ok)
	assert.ErrorIs(t, done.err, engine.ErrNoPath)
	assert.False(t, done.result.Found)
}

func TestSearchRunnerStopSkipsRemainingFrames(t *testing.T) {
	grid := readyTestGrid(t)
	runner := StartSearchRunner(context.Background(), grid, engine.AStar, time.Hour, time.Hour)

	first := <-runner.UpdateChannel
	_, ok := first.(searchFrameMsg)
	require.True(t, ok)

	runner.Stop()
	runner.Stop()

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for msg := range runner.UpdateChannel {
			_, isFrame := msg.(searchFrameMsg)
			assert.False(t, isFrame, "frame delivered after stop")
		}
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not finish after stop")
	}
}

func TestSearchRunnerStopsWhenContextCancelled(t *testing.T) {
	grid := readyTestGrid(t)
	ctx, cancel := context.WithCancel(context.Background())
	runner := StartSearchRunner(ctx, grid, engine.Dijkstra, time.Hour, time.Hour)

	first := <-runner.UpdateChannel
	_, ok := first.(searchFrameMsg)
	require.True(t, ok)

	// the session going away is the only signal, nobody calls Stop
	cancel()

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for msg := range runner.UpdateChannel {
			_, isFrame := msg.(searchFrameMsg)
			assert.False(t, isFrame, "frame delivered after cancel")
		}
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not close its channel after the context was cancelled")
	}
	assert.True(t, runner.stopped())
}

func TestSearchRunnerWithCancelledContextSendsNothing(t *testing.T) {
	grid := readyTestGrid(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := StartSearchRunner(ctx, grid, engine.BFS, time.Hour, time.Hour)

	var received int
	for range runner.UpdateChannel {
		received++
	}
	assert.Zero(t, received)
}

func TestWaitForSearchUpdateReturnsNilWhenClosed(t *testing.T) {
	updates := make(chan tea.Msg)
	close(updates)
	assert.Nil(t, waitForSearchUpdate(updates)())
}
