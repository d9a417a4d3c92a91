package editors

import "sort"

// DedicatedCriteria describes a dedicated-registration filter as plain data:
// a registration matches when its component type is an ancestor of (or equal
// to) OwnerType and its attribute key equals AttributeKey. Key equality is
// mandatory; type compatibility alone is not sufficient.
type DedicatedCriteria struct {
	OwnerType    string
	AttributeKey string
}

func (c DedicatedCriteria) matches(reg DedicatedRegistration, h *Hierarchy) bool {
	return reg.AttributeKey == c.AttributeKey &&
		h.IsCompatible(c.OwnerType, reg.ComponentType)
}

// TypeCriteria describes a type-registration filter as plain data: a
// registration matches when the attribute's declared type is compatible with
// the registration's value type and the attribute's constraints are satisfied
// under the registration's quantifier.
type TypeCriteria struct {
	DeclaredType string
	Constraints  ConstraintSet
}

func (c TypeCriteria) matches(reg TypeRegistration, h *Hierarchy) bool {
	return h.IsCompatible(c.DeclaredType, reg.ValueType) &&
		Satisfies(c.Constraints, reg.SupportedConstraints, reg.Quantifier)
}

// Selection reports which registration a resolution chose. Exactly one of
// Dedicated and Type is non-nil.
type Selection struct {
	Dedicated *DedicatedRegistration
	Type      *TypeRegistration
}

// ID returns the chosen registration's diagnostic ID.
func (s Selection) ID() string {
	if s.Dedicated != nil {
		return s.Dedicated.ID
	}
	if s.Type != nil {
		return s.Type.ID
	}
	return ""
}

// factory returns the chosen registration's factory.
func (s Selection) factory() Factory {
	if s.Dedicated != nil {
		return s.Dedicated.Factory
	}
	return s.Type.Factory
}

// Resolver picks the editor registration responsible for a component
// attribute. Both collaborators are explicit dependencies so the resolver can
// be exercised against synthetic registries in tests.
//
// A Resolver is stateless beyond its references and may be shared freely
// between goroutines once the registry and hierarchy are populated.
type Resolver struct {
	registry  *Registry
	hierarchy *Hierarchy
}

// NewResolver creates a resolver over the given registry and hierarchy.
// Both must be fully populated before the first call to Resolve.
func NewResolver(registry *Registry, hierarchy *Hierarchy) *Resolver {
	return &Resolver{registry: registry, hierarchy: hierarchy}
}

// Resolve returns a fresh editor instance for the attribute, or a
// *NotFoundError when no registration qualifies. That is the only failure
// mode: every internal check is total over its inputs.
func (r *Resolver) Resolve(ownerType string, attr AttributeDescriptor) (Editor, error) {
	sel, err := r.Select(ownerType, attr)
	if err != nil {
		return nil, err
	}
	return sel.factory()(), nil
}

// Select runs the resolution algorithm but stops short of instantiating the
// editor, reporting which registration won instead. Tooling that only needs
// to explain a resolution uses this entry point.
func (r *Resolver) Select(ownerType string, attr AttributeDescriptor) (Selection, error) {
	if sel, ok := r.selectDedicated(ownerType, attr); ok {
		return sel, nil
	}
	if sel, ok := r.selectType(attr); ok {
		return sel, nil
	}
	return Selection{}, &NotFoundError{OwnerType: ownerType, Attribute: attr}
}

// selectDedicated returns the first dedicated registration matching the owner
// type and attribute key. Dedicated registrations are assumed curated, so
// first match in registration order is authoritative.
func (r *Resolver) selectDedicated(ownerType string, attr AttributeDescriptor) (Selection, bool) {
	crit := DedicatedCriteria{OwnerType: ownerType, AttributeKey: attr.Key}
	for i := range r.registry.dedicated {
		if crit.matches(r.registry.dedicated[i], r.hierarchy) {
			reg := r.registry.dedicated[i]
			return Selection{Dedicated: &reg}, true
		}
	}
	return Selection{}, false
}

// selectType filters type registrations by compatibility and constraint
// satisfaction, ranks the survivors, and returns the top one.
func (r *Resolver) selectType(attr AttributeDescriptor) (Selection, bool) {
	crit := TypeCriteria{DeclaredType: attr.DeclaredType, Constraints: attr.Constraints}

	var candidates []TypeRegistration
	for i := range r.registry.typed {
		if crit.matches(r.registry.typed[i], r.hierarchy) {
			candidates = append(candidates, r.registry.typed[i])
		}
	}
	if len(candidates) == 0 {
		return Selection{}, false
	}

	// Constraint-aware registrations outrank constraint-free ones, but only
	// when the attribute itself is constrained. Within each group registration
	// order is preserved.
	if attr.Constraints.Len() > 0 {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].SupportedConstraints.Len() > 0 &&
				candidates[j].SupportedConstraints.Len() == 0
		})
	}

	return Selection{Type: &candidates[0]}, true
}
