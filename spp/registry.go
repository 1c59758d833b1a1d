package spp

// LegRegistry is the append-only leg universe: a stable mapping from leg
// identifier to a dense 0-based index.
//
// Indices are assigned in insertion order and never reassigned or
// removed; the registry only grows (during the initial legs.csv load and
// again when incidence inference discovers unseen legs). The structure
// enforces the stability invariant instead of leaving it to discipline
// around a plain map.
//
// Not safe for concurrent mutation; in particular the registry must not
// grow while matrix construction is reading it.
type LegRegistry struct {
	ids   []string
	index map[string]int
}

// NewLegRegistry returns an empty registry.
func NewLegRegistry() *LegRegistry {
	return &LegRegistry{index: make(map[string]int)}
}

// Add returns the index of id, appending it at the next dense index if
// unseen. Existing indices are never disturbed.
//
// Complexity: amortized O(1).
func (r *LegRegistry) Add(id string) int {
	if i, ok := r.index[id]; ok {
		return i
	}
	i := len(r.ids)
	r.ids = append(r.ids, id)
	r.index[id] = i

	return i
}

// Index returns the index of id and whether it is registered.
func (r *LegRegistry) Index(id string) (int, bool) {
	i, ok := r.index[id]

	return i, ok
}

// ID returns the leg identifier at index i. Caller guarantees bounds.
func (r *LegRegistry) ID(i int) string { return r.ids[i] }

// Len returns the current universe size m.
func (r *LegRegistry) Len() int { return len(r.ids) }
