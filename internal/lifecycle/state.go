package lifecycle

// State is the authoritative lifecycle state of a block. It is advanced by
// real-world events recorded against the block, never by the projector.
type State string

// Stable values (store these exact strings in DB).
const (
	StatePlanned    State = "PLANNED"
	StateGrowing    State = "GROWING"
	StateFruiting   State = "FRUITING"
	StateHarvesting State = "HARVESTING"
	StateCleaning   State = "CLEANING"
	StateEmpty      State = "EMPTY" // terminal for one cycle, re-entry point for the next
)

// order is the linear progression of one cultivation cycle.
var order = []State{
	StatePlanned,
	StateGrowing,
	StateFruiting,
	StateHarvesting,
	StateCleaning,
	StateEmpty,
}

// States returns the lifecycle states in cycle order.
func States() []State {
	out := make([]State, len(order))
	copy(out, order)
	return out
}

// Valid reports whether s is a known lifecycle state.
func (s State) Valid() bool {
	for _, st := range order {
		if st == s {
			return true
		}
	}
	return false
}

// Next returns the state following s in the cycle. The second return is false
// for StateEmpty, whose only continuation is re-entry via a new planting.
func (s State) Next() (State, bool) {
	for i, st := range order {
		if st == s && i+1 < len(order) {
			return order[i+1], true
		}
	}
	return "", false
}

// Active reports whether the block is inside a cultivation cycle.
func (s State) Active() bool {
	return s.Valid() && s != StateEmpty
}

// CanTransition reports whether from -> to is a legal single transition:
// one step forward through the cycle, or re-entry from EMPTY to PLANNED.
func CanTransition(from, to State) bool {
	if from == StateEmpty && to == StatePlanned {
		return true
	}
	next, ok := from.Next()
	return ok && next == to
}
