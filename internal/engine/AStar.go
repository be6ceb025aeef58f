package engine

import "container/heap"

// aStar expands cells by lowest g + h with the Manhattan heuristic. Improved
// cells are pushed again instead of being re-keyed, so entries whose cost no
// longer matches the cell are skipped when popped.
func (r *searchRun) aStar() bool {
	open := make(priorityFrontier, 0)
	heap.Init(&open)

	startCell := r.grid.cell(r.start)
	startCell.SetCostSoFar(0)
	startCell.SetHeuristic(ManhattanDistance(r.start, r.end))
	r.push(&open, r.start, startCell.TotalCost(), 0)

	for open.Len() > 0 {
		item := heap.Pop(&open).(*frontierItem)
		current := r.grid.cell(item.position)

		if item.cost > current.CostSoFar() {
			continue
		}

		if item.position == r.end {
			return true
		}

		r.markVisited(item.position)

		for _, next := range r.grid.NeighborsOf(item.position) {
			neighbor := r.grid.cell(next)
			if neighbor.Type() == Wall {
				continue
			}

			tentative := current.CostSoFar() + 1
			if !r.discovered(next) || tentative < neighbor.CostSoFar() {
				neighbor.SetPredecessor(item.position)
				neighbor.SetCostSoFar(tentative)
				neighbor.SetHeuristic(ManhattanDistance(next, r.end))
				r.push(&open, next, neighbor.TotalCost(), tentative)
			}
		}

		r.explored(item.position)
	}

	return false
}
