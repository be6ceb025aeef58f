package ui

import (
	"context"
	"time"

	"github.com/Mshel/pathviz/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// searchFrameMsg carries a copy of the grid taken right after a step.
type searchFrameMsg struct {
	frame [][]engine.CellType
	step  engine.Step
}

// searchDoneMsg is the last message a runner sends before closing its channel.
type searchDoneMsg struct {
	frame   [][]engine.CellType
	result  engine.SearchResult
	err     error
	elapsed time.Duration
}

// SearchRunner runs one search on its own goroutine and streams frames to
// the UI through UpdateChannel. The grid must not be touched until the
// channel is closed.
type SearchRunner struct {
	UpdateChannel chan tea.Msg

	ctx    context.Context
	cancel context.CancelFunc

	exploreDelay time.Duration
	pathDelay    time.Duration
}

// StartSearchRunner starts the run. Cancelling ctx, for example when an SSH
// session ends, has the same effect as Stop.
func StartSearchRunner(ctx context.Context, grid *engine.Grid, algorithm engine.Algorithm, exploreDelay, pathDelay time.Duration) *SearchRunner {
	runnerCtx, cancel := context.WithCancel(ctx)
	runner := &SearchRunner{
		UpdateChannel: make(chan tea.Msg),
		ctx:           runnerCtx,
		cancel:        cancel,
		exploreDelay:  exploreDelay,
		pathDelay:     pathDelay,
	}
	go runner.run(grid, algorithm)
	return runner
}

// Stop drops the remaining frames, pauses and the final result. The search itself still runs
// to completion because a run cannot be interrupted.
func (r *SearchRunner) Stop() {
	r.cancel()
}

func (r *SearchRunner) stopped() bool {
	return r.ctx.Err() != nil
}

func (r *SearchRunner) run(grid *engine.Grid, algorithm engine.Algorithm) {
	defer close(r.UpdateChannel)
	defer r.cancel()

	log.Debug("Search started", "algorithm", algorithm, "rows", grid.Rows(), "cols", grid.Cols())
	startedAt := time.Now()

	result, err := grid.Search(algorithm, engine.ObserverFunc(func(step engine.Step) {
		if r.stopped() {
			return
		}
		select {
		case r.UpdateChannel <- searchFrameMsg{frame: grid.Snapshot(), step: step}:
		case <-r.ctx.Done():
			return
		}
		if step.Kind == engine.PathStep {
			r.pause(r.pathDelay)
		} else {
			r.pause(r.exploreDelay)
		}
	}))

	elapsed := time.Since(startedAt)
	log.Debug("Search finished", "algorithm", algorithm, "found", result.Found, "expanded", result.ExpandedCells, "elapsed", elapsed)

	if r.stopped() {
		return
	}
	select {
	case r.UpdateChannel <- searchDoneMsg{frame: grid.Snapshot(), result: result, err: err, elapsed: elapsed}:
	case <-r.ctx.Done():
	}
}

func (r *SearchRunner) pause(delay time.Duration) {
	if delay <= 0 {
		return
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-r.ctx.Done():
	}
}

// waitForSearchUpdate blocks for the next runner message. It yields nil once
// the runner has closed its channel.
func waitForSearchUpdate(updates <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-updates
		if !ok {
			return nil
		}
		return msg
	}
}
