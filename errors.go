package tanuki

import "fmt"

// Kind classifies an InvariantError.
type Kind int

const (
	// KindBadConfig marks a VoxelConfig violating its own invariants
	// (max_y <= min_y, or a height not a multiple of the subchunk
	// width).
	KindBadConfig Kind = iota
	// KindOutOfRange marks an access past a region's owned volume.
	KindOutOfRange
)

func (k Kind) String() string {
	switch k {
	case KindBadConfig:
		return "bad_config"
	case KindOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// InvariantError is raised (via panic, per spec.md §7's treatment of
// programmer-error invariant violations) when a caller breaks an
// invariant the types can't enforce statically — an invalid
// VoxelConfig, primarily.
type InvariantError struct {
	Kind Kind
	Msg  string
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("tanuki: %s: %s", e.Kind, e.Msg)
}
