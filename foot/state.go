package foot

import "fmt"

// State describes how a body is supported by the ground beneath it.
type State uint8

const (
	// Grounded means the body is standing on a surface that is upright enough to be stable.
	Grounded State = iota
	// Sliding means the body overlaps walkable geometry, but the surface under it is too steep to stand on.
	Sliding
	// Airborn means no walkable geometry was found under the body.
	Airborn
)

// String ...
func (s State) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Sliding:
		return "sliding"
	case Airborn:
		return "airborn"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Supported returns true if the state is Grounded or Sliding.
func (s State) Supported() bool {
	return s == Grounded || s == Sliding
}
