package editors

// Hierarchy is an explicit table of nominal type ancestry. Each entry maps a
// qualified type name to its proper ancestors, nearest first, excluding the
// universal root. The table is assembled once by the loader from static
// metadata; no live reflection is involved.
//
// A Hierarchy is immutable once population has completed, so lookups are safe
// from concurrent goroutines without locking.
type Hierarchy struct {
	ancestors map[string][]string
}

// NewHierarchy returns an empty hierarchy.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{ancestors: make(map[string][]string)}
}

// Register records a type and its proper ancestor chain, nearest first.
// Registering a type again replaces its chain.
func (h *Hierarchy) Register(typeName string, ancestors ...string) {
	chain := make([]string, len(ancestors))
	copy(chain, ancestors)
	h.ancestors[typeName] = chain
}

// Ancestors returns the proper ancestor chain of typeName, nearest first.
// Types never registered have an empty chain.
func (h *Hierarchy) Ancestors(typeName string) []string {
	chain := h.ancestors[typeName]
	out := make([]string, len(chain))
	copy(out, chain)
	return out
}

// Known reports whether typeName was registered.
func (h *Hierarchy) Known(typeName string) bool {
	_, ok := h.ancestors[typeName]
	return ok
}

// Types returns the registered type names in no particular order.
func (h *Hierarchy) Types() []string {
	names := make([]string, 0, len(h.ancestors))
	for name := range h.ancestors {
		names = append(names, name)
	}
	return names
}

// IsCompatible reports whether candidate is the target type or descends from
// it. The check is reflexive and follows only the declared ancestor chain; a
// candidate that was never registered matches solely by name equality.
func (h *Hierarchy) IsCompatible(candidate, target string) bool {
	if candidate == target {
		return true
	}
	for _, ancestor := range h.ancestors[candidate] {
		if ancestor == target {
			return true
		}
	}
	return false
}
