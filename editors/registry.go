package editors

// Registry holds all known editor registrations, partitioned into dedicated
// (component + attribute specific) and type (value-type specific) entries.
// Both partitions preserve registration order, which is significant: dedicated
// lookup is first-match and type ranking falls back to registration order.
//
// A Registry is populated once by a loader collaborator and is read-only
// thereafter. The Add methods must not be called concurrently with reads; once
// population has completed-before the first resolution, no locking is needed
// on the read path.
type Registry struct {
	dedicated []DedicatedRegistration
	typed     []TypeRegistration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// AddDedicated appends a dedicated registration. Population phase only.
func (r *Registry) AddDedicated(reg DedicatedRegistration) {
	r.dedicated = append(r.dedicated, reg)
}

// AddType appends a type registration. Population phase only.
func (r *Registry) AddType(reg TypeRegistration) {
	r.typed = append(r.typed, reg)
}

// Dedicated returns the dedicated registrations in registration order.
// Returns a copy to prevent external mutation.
func (r *Registry) Dedicated() []DedicatedRegistration {
	out := make([]DedicatedRegistration, len(r.dedicated))
	copy(out, r.dedicated)
	return out
}

// TypeEditors returns the type registrations in registration order.
// Returns a copy to prevent external mutation.
func (r *Registry) TypeEditors() []TypeRegistration {
	out := make([]TypeRegistration, len(r.typed))
	copy(out, r.typed)
	return out
}

// NumDedicated returns the number of dedicated registrations.
func (r *Registry) NumDedicated() int { return len(r.dedicated) }

// NumType returns the number of type registrations.
func (r *Registry) NumType() int { return len(r.typed) }
