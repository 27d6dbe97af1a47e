package segpath

// Mode selects how a Path reacts to modification.
//
// A Path[Mutable] updates itself in place and hands back the same pointer, so
// every reference observes the change. A Path[Immutable] never touches its own
// storage: each modification returns a new, independent value.
type Mode interface {
	Mutable | Immutable
}

// Mutable paths are modified in place.
type Mutable struct{}

// Immutable paths produce a new value on every modification.
type Immutable struct{}

func isImmutable[M Mode]() bool {
	var mode M
	_, ok := any(mode).(Immutable)
	return ok
}
