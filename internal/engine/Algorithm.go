package engine

import (
	"fmt"
	"strings"
)

type Algorithm int

const (
	AStar Algorithm = iota
	Dijkstra
	BFS
	DFS
)

// Algorithms lists every algorithm in selector order.
var Algorithms = []Algorithm{AStar, Dijkstra, BFS, DFS}

func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "A*"
	case Dijkstra:
		return "Dijkstra"
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

func (a Algorithm) valid() bool {
	return a >= AStar && a <= DFS
}

// ParseAlgorithm accepts the display name or a short alias such as "astar".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a*", "astar", "a-star":
		return AStar, nil
	case "dijkstra":
		return Dijkstra, nil
	case "bfs", "breadth-first":
		return BFS, nil
	case "dfs", "depth-first":
		return DFS, nil
	}
	return AStar, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
