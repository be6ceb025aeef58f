package engine

// PlaceAt applies a click on p. Out of bounds clicks are ignored.
//
// Left places the start, then the end, then walls on empty cells. Right clears
// the cell and, when it showed an endpoint, waits for that endpoint again. A
// marker may be dropped on the other marker's cell, which makes start and end
// coincide; the cell shows the marker placed last and a right click removes
// only that one, leaving the other marker drawn.
func (g *Grid) PlaceAt(p Position, button Button) {
	if !g.IsValid(p) {
		return
	}

	target := g.cell(p)

	switch button {
	case LeftButton:
		switch g.Phase() {
		case AwaitingStart:
			target.SetType(Start)
			g.start, g.hasStart = p, true
		case AwaitingEnd:
			target.SetType(End)
			g.end, g.hasEnd = p, true
		default:
			g.AddWall(p)
		}
	case RightButton:
		switch target.Type() {
		case Start:
			g.start, g.hasStart = Position{}, false
		case End:
			g.end, g.hasEnd = Position{}, false
		}
		target.SetType(Empty)

		switch {
		case g.hasStart && g.start == p:
			target.SetType(Start)
		case g.hasEnd && g.end == p:
			target.SetType(End)
		}
	}
}

// AddWall turns an empty cell into a wall and reports whether it did.
func (g *Grid) AddWall(p Position) bool {
	if !g.IsValid(p) {
		return false
	}
	target := g.cell(p)
	if target.Type() != Empty {
		return false
	}
	target.SetType(Wall)
	return true
}

// Reset empties every cell and forgets both endpoints.
func (g *Grid) Reset() {
	for row := range g.cells {
		for col := range g.cells[row] {
			g.cells[row][col].SetType(Empty)
			g.cells[row][col].ResetSearchData()
		}
	}
	g.start, g.hasStart = Position{}, false
	g.end, g.hasEnd = Position{}, false
}

// ClearSearch removes Visited and Path coloring and the search bookkeeping of
// the last run. Walls and endpoints stay.
func (g *Grid) ClearSearch() {
	for row := range g.cells {
		for col := range g.cells[row] {
			current := &g.cells[row][col]
			if current.Type() == Visited || current.Type() == Path {
				current.SetType(Empty)
			}
			current.ResetSearchData()
		}
	}
}
