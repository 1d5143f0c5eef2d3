package builder

// Method name constants used to prefix errors with the constructor name.
const (
	MethodCycle        = "Cycle"
	MethodPath         = "Path"
	MethodStar         = "Star"
	MethodComplete     = "Complete"
	MethodRandomSparse = "RandomSparse"
	MethodIsolated     = "Isolated"
	MethodScoped       = "Scoped"
)

// Parameter minima.
const (
	MinCycleNodes    = 3
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinCompleteNodes = 1
	MinRandomNodes   = 1
	MinIsolatedNodes = 1

	MinProbability = 0.0
	MaxProbability = 1.0
)

// Direction selects how an undirected link i–j is stored as sent pairs.
type Direction int

const (
	// Forward emits i→j.
	Forward Direction = iota
	// Backward emits j→i.
	Backward
	// Both emits i→j and j→i.
	Both
	// Alternate emits the k-th link forward for even k and backward for odd k.
	Alternate
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Both:
		return "both"
	case Alternate:
		return "alternate"
	default:
		return "unknown"
	}
}
