package engine

import (
	"container/heap"
	"math"
)

// dijkstra settles cells in distance order and stops once the end is settled.
// Distances and the settled set live only for this run; predecessors go into
// the cells so the shared path tracing can follow them.
func (r *searchRun) dijkstra() bool {
	cellCount := r.grid.rows * r.grid.cols
	distance := make([]int, cellCount)
	for i := range distance {
		distance[i] = math.MaxInt
	}
	settled := make([]bool, cellCount)

	open := make(priorityFrontier, 0)
	heap.Init(&open)

	distance[r.index(r.start)] = 0
	r.push(&open, r.start, 0, 0)

	for open.Len() > 0 {
		item := heap.Pop(&open).(*frontierItem)
		currentIndex := r.index(item.position)
		if settled[currentIndex] {
			continue
		}
		settled[currentIndex] = true
		r.markVisited(item.position)

		if item.position == r.end {
			break
		}

		for _, next := range r.grid.NeighborsOf(item.position) {
			nextIndex := r.index(next)
			neighbor := r.grid.cell(next)
			if neighbor.Type() == Wall || settled[nextIndex] {
				continue
			}

			candidate := item.cost + 1
			if candidate < distance[nextIndex] {
				distance[nextIndex] = candidate
				neighbor.SetPredecessor(item.position)
				neighbor.SetCostSoFar(candidate)
				r.push(&open, next, candidate, candidate)
			}
		}

		r.explored(item.position)
	}

	return settled[r.index(r.end)]
}
