package engine

type StepKind int

const (
	// ExploreStep fires once per expanded cell.
	ExploreStep StepKind = iota
	// PathStep fires once per cell marked Path, starting next to the end.
	PathStep
)

func (k StepKind) String() string {
	if k == PathStep {
		return "path"
	}
	return "explore"
}

// Step describes one observable change made by a search run. Index counts
// steps of the same kind starting at 1.
type Step struct {
	Kind     StepKind
	Position Position
	Index    int
}

// Observer is called synchronously by the search after every step. It may block
// to pace an animation but must not start another search on the same grid.
type Observer interface {
	OnStep(step Step)
}

type ObserverFunc func(step Step)

func (f ObserverFunc) OnStep(step Step) { f(step) }
