package engine

// traverse runs breadth-first search over a FIFO frontier, or depth-first
// search when lifo is set. A cell enters the frontier at most once: the first
// time it is discovered.
func (r *searchRun) traverse(lifo bool) bool {
	frontier := []Position{r.start}

	for len(frontier) > 0 {
		var current Position
		if lifo {
			current = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
		} else {
			current = frontier[0]
			frontier = frontier[1:]
		}

		if current == r.end {
			return true
		}

		r.markVisited(current)

		currentCost := r.grid.cell(current).CostSoFar()
		for _, next := range r.grid.NeighborsOf(current) {
			neighbor := r.grid.cell(next)
			if neighbor.Type() == Wall || r.discovered(next) {
				continue
			}
			neighbor.SetPredecessor(current)
			neighbor.SetCostSoFar(currentCost + 1)
			frontier = append(frontier, next)
		}

		r.explored(current)
	}

	return false
}
