package engine

import (
	"container/heap"
	"errors"
	"fmt"
)

var (
	ErrMissingEndpoints = errors.New("start and end must both be placed")
	ErrNoPath           = errors.New("no path found")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// SearchResult is the outcome of one run. Path runs from start to end and is
// empty when nothing was found.
type SearchResult struct {
	Algorithm     Algorithm
	Found         bool
	Path          []Position
	ExpandedCells int
	PathCells     int
}

// Length is the number of moves along the path.
func (r SearchResult) Length() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// RunSearch runs algorithm and reports whether a path was found and marked.
func (g *Grid) RunSearch(algorithm Algorithm, observer Observer) bool {
	result, err := g.Search(algorithm, observer)
	return err == nil && result.Found
}

// Search runs algorithm over the grid, coloring expanded cells Visited and the
// final route Path. It returns ErrMissingEndpoints without touching the grid
// when an endpoint is missing, and ErrNoPath when the end is unreachable; the
// exploration coloring stays in place in that case.
func (g *Grid) Search(algorithm Algorithm, observer Observer) (SearchResult, error) {
	result := SearchResult{Algorithm: algorithm}
	if !algorithm.valid() {
		return result, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algorithm))
	}
	if !g.hasStart || !g.hasEnd {
		return result, ErrMissingEndpoints
	}

	g.ClearSearch()

	run := &searchRun{
		grid:     g,
		observer: observer,
		start:    g.start,
		end:      g.end,
	}

	var found bool
	switch algorithm {
	case AStar:
		found = run.aStar()
	case Dijkstra:
		found = run.dijkstra()
	case BFS:
		found = run.traverse(false)
	case DFS:
		found = run.traverse(true)
	}

	result.ExpandedCells = run.expanded
	if !found {
		return result, ErrNoPath
	}

	result.Found = true
	result.Path = run.tracePath()
	result.PathCells = run.pathCells
	return result, nil
}

// searchRun holds the state of a single invocation.
type searchRun struct {
	grid     *Grid
	observer Observer
	start    Position
	end      Position

	sequence  int
	expanded  int
	pathCells int
}

func (r *searchRun) notify(step Step) {
	if r.observer != nil {
		r.observer.OnStep(step)
	}
}

// discovered reports whether p already has a route; the start always does.
func (r *searchRun) discovered(p Position) bool {
	if p == r.start {
		return true
	}
	_, ok := r.grid.cell(p).Predecessor()
	return ok
}

func (r *searchRun) markVisited(p Position) {
	if p == r.start || p == r.end {
		return
	}
	r.grid.cell(p).SetType(Visited)
}

// explored closes one expansion step.
func (r *searchRun) explored(p Position) {
	r.expanded++
	r.notify(Step{Kind: ExploreStep, Position: p, Index: r.expanded})
}

func (r *searchRun) push(frontier *priorityFrontier, p Position, priority, cost int) {
	r.sequence++
	heap.Push(frontier, &frontierItem{
		position: p,
		priority: priority,
		cost:     cost,
		sequence: r.sequence,
	})
}

func (r *searchRun) index(p Position) int {
	return p.Y*r.grid.cols + p.X
}

// tracePath walks predecessors back from the end, marking every cell between
// the endpoints as Path, and returns the route in start to end order.
func (r *searchRun) tracePath() []Position {
	path := []Position{r.end}
	current := r.end
	for current != r.start {
		previous, ok := r.grid.cell(current).Predecessor()
		if !ok {
			break
		}
		if previous != r.start {
			r.grid.cell(previous).SetType(Path)
			r.pathCells++
			r.notify(Step{Kind: PathStep, Position: previous, Index: r.pathCells})
		}
		path = append(path, previous)
		current = previous
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
