package engine

import (
	"errors"
	"fmt"
)

var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

type Button int

const (
	LeftButton Button = iota
	RightButton
)

// PlacementPhase tells what the next left click on the grid means.
type PlacementPhase int

const (
	AwaitingStart PlacementPhase = iota
	AwaitingEnd
	Ready
)

func (p PlacementPhase) String() string {
	switch p {
	case AwaitingStart:
		return "place start"
	case AwaitingEnd:
		return "place end"
	default:
		return "ready"
	}
}

// Grid owns a fixed rows x cols block of cells together with the start and end
// markers. It is not safe for concurrent use.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell

	start    Position
	hasStart bool
	end      Position
	hasEnd   bool
}

func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}

	cells := make([][]Cell, rows)
	for row := 0; row < rows; row++ {
		cells[row] = make([]Cell, cols)
		for col := 0; col < cols; col++ {
			cells[row][col] = newCell(col, row)
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// IsValid reports whether p lies inside the grid.
func (g *Grid) IsValid(p Position) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

func (g *Grid) cell(p Position) *Cell {
	return &g.cells[p.Y][p.X]
}

// CellAt returns a copy of the cell at p.
func (g *Grid) CellAt(p Position) (Cell, bool) {
	if !g.IsValid(p) {
		return Cell{}, false
	}
	return *g.cell(p), true
}

// TypeAt returns the cell type at p, or Empty when p is out of bounds.
func (g *Grid) TypeAt(p Position) CellType {
	if !g.IsValid(p) {
		return Empty
	}
	return g.cell(p).Type()
}

func (g *Grid) Start() (Position, bool) { return g.start, g.hasStart }
func (g *Grid) End() (Position, bool)   { return g.end, g.hasEnd }

func (g *Grid) AwaitingStart() bool { return !g.hasStart }
func (g *Grid) AwaitingEnd() bool   { return !g.hasEnd }

func (g *Grid) Phase() PlacementPhase {
	switch {
	case !g.hasStart:
		return AwaitingStart
	case !g.hasEnd:
		return AwaitingEnd
	default:
		return Ready
	}
}

// NeighborsOf returns the in-bounds orthogonal neighbors of p in the order up,
// left, right, down.
func (g *Grid) NeighborsOf(p Position) []Position {
	neighbors := make([]Position, 0, len(Directions))
	for _, dir := range Directions {
		next := p.Add(dir)
		if g.IsValid(next) {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

// Snapshot copies every cell type, indexed [row][col].
func (g *Grid) Snapshot() [][]CellType {
	frame := make([][]CellType, g.rows)
	for row := range g.cells {
		frame[row] = make([]CellType, g.cols)
		for col := range g.cells[row] {
			frame[row][col] = g.cells[row][col].cellType
		}
	}
	return frame
}

// Count returns how many cells currently hold type t.
func (g *Grid) Count(t CellType) int {
	count := 0
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col].cellType == t {
				count++
			}
		}
	}
	return count
}
