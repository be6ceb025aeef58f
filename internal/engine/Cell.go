package engine

import "fmt"

type CellType int

const (
	Empty CellType = iota
	Wall
	Start
	End
	Visited
	Path
)

func (t CellType) String() string {
	switch t {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case End:
		return "end"
	case Visited:
		return "visited"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("CellType(%d)", int(t))
	}
}

// Cell is a single grid position plus the bookkeeping written by a search run.
// The predecessor is a coordinate into the owning Grid, never a reference.
type Cell struct {
	position Position
	cellType CellType

	costSoFar int
	heuristic int
	totalCost int

	predecessor    Position
	hasPredecessor bool
}

func newCell(x, y int) Cell {
	return Cell{position: Position{X: x, Y: y}, cellType: Empty}
}

func (c *Cell) Position() Position { return c.position }
func (c *Cell) Type() CellType     { return c.cellType }
func (c *Cell) SetType(t CellType) { c.cellType = t }

func (c *Cell) CostSoFar() int { return c.costSoFar }
func (c *Cell) Heuristic() int { return c.heuristic }
func (c *Cell) TotalCost() int { return c.totalCost }

// SetCostSoFar updates g and keeps f = g + h.
func (c *Cell) SetCostSoFar(cost int) {
	c.costSoFar = cost
	c.totalCost = c.costSoFar + c.heuristic
}

// SetHeuristic updates h and keeps f = g + h.
func (c *Cell) SetHeuristic(estimate int) {
	c.heuristic = estimate
	c.totalCost = c.costSoFar + c.heuristic
}

// Predecessor reports the cell this one was reached from during the last run.
func (c *Cell) Predecessor() (Position, bool) {
	return c.predecessor, c.hasPredecessor
}

func (c *Cell) SetPredecessor(p Position) {
	c.predecessor = p
	c.hasPredecessor = true
}

// ResetSearchData clears costs and the predecessor link before a run.
func (c *Cell) ResetSearchData() {
	c.costSoFar = 0
	c.heuristic = 0
	c.totalCost = 0
	c.predecessor = Position{}
	c.hasPredecessor = false
}
