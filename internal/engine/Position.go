package engine

// Position is a cell coordinate: X is the column, Y is the row.
type Position struct {
	X int
	Y int
}

// Directions lists the neighbor offsets in visiting order: up, left, right, down.
var Directions = []Position{
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
}

func (p Position) Add(offset Position) Position {
	return Position{X: p.X + offset.X, Y: p.Y + offset.Y}
}

// ManhattanDistance is the admissible heuristic for a 4-connected unit-cost grid.
func ManhattanDistance(from, to Position) int {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	dy := from.Y - to.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
