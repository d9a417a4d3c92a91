// Package editors implements attribute-to-editor resolution for component
// attributes. See doc.go for an overview.
package editors

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ConstraintKind tags an extra semantic restriction on an attribute's value,
// such as "range" or "pattern". Kinds are opaque identifiers: the engine only
// ever compares them for equality.
type ConstraintKind string

// ConstraintSet is an unordered, duplicate-free collection of constraint kinds.
// The zero value is an empty set and is safe to query.
type ConstraintSet map[ConstraintKind]struct{}

// NewConstraintSet builds a set from the given kinds. Duplicates collapse.
func NewConstraintSet(kinds ...ConstraintKind) ConstraintSet {
	s := make(ConstraintSet, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether the set contains the given kind.
func (s ConstraintSet) Has(k ConstraintKind) bool {
	_, ok := s[k]
	return ok
}

// Len returns the number of kinds in the set.
func (s ConstraintSet) Len() int { return len(s) }

// Kinds returns the kinds in lexical order. Useful for deterministic output;
// resolution itself never depends on this order.
func (s ConstraintSet) Kinds() []ConstraintKind {
	kinds := make([]ConstraintKind, 0, len(s))
	for k := range s {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// String returns a stable human-readable rendering, e.g. "{pattern, range}".
func (s ConstraintSet) String() string {
	parts := make([]string, 0, len(s))
	for _, k := range s.Kinds() {
		parts = append(parts, string(k))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// MarshalJSON renders the set as a sorted array of kinds.
func (s ConstraintSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Kinds())
}

// UnmarshalJSON accepts an array of kinds. Duplicates collapse.
func (s *ConstraintSet) UnmarshalJSON(data []byte) error {
	var kinds []ConstraintKind
	if err := json.Unmarshal(data, &kinds); err != nil {
		return err
	}
	*s = NewConstraintSet(kinds...)
	return nil
}

// Quantifier selects how a type registration's supported constraint kinds are
// matched against an attribute's declared constraints: every declared kind
// must be supported (QuantifierAll) or at least one must be (QuantifierAny).
type Quantifier int

const (
	QuantifierAll Quantifier = iota
	QuantifierAny
)

// String returns the canonical spelling used in registration files.
func (q Quantifier) String() string {
	switch q {
	case QuantifierAll:
		return "all"
	case QuantifierAny:
		return "any"
	default:
		return "unknown"
	}
}

// ParseQuantifier parses the registration-file spelling of a quantifier.
func ParseQuantifier(s string) (Quantifier, error) {
	switch strings.ToLower(s) {
	case "all":
		return QuantifierAll, nil
	case "any":
		return QuantifierAny, nil
	default:
		return QuantifierAll, fmt.Errorf("unknown quantifier %q (want \"all\" or \"any\")", s)
	}
}

// MarshalJSON implements json.Marshaler for Quantifier.
func (q Quantifier) MarshalJSON() ([]byte, error) {
	return []byte(`"` + q.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Quantifier.
func (q *Quantifier) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	parsed, err := ParseQuantifier(str)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// AttributeDescriptor identifies one configurable attribute of a component.
// Descriptors are value types owned by the caller's component metadata; the
// engine treats them as read-only.
type AttributeDescriptor struct {
	Key          string        `json:"key"`           // Stable identifier, unique within a component type
	DeclaredType string        `json:"declared_type"` // Nominal value type name, e.g. "core.Double"
	Constraints  ConstraintSet `json:"constraints,omitempty"`
}

// String renders the descriptor for diagnostics.
func (a AttributeDescriptor) String() string {
	if a.Constraints.Len() == 0 {
		return fmt.Sprintf("%s (%s)", a.Key, a.DeclaredType)
	}
	return fmt.Sprintf("%s (%s, constraints %s)", a.Key, a.DeclaredType, a.Constraints)
}

// Editor is the opaque capability a registration's factory produces. The
// engine requires nothing of it beyond instantiability; rendering and binding
// belong to the presentation layer.
type Editor interface{}

// Factory produces a fresh editor instance for a resolved registration.
// Factories must be callable with no further input and must not depend on
// engine state.
type Factory func() Editor

// DedicatedRegistration binds an editor to one specific component type and
// attribute key pair. Dedicated registrations take precedence over type
// registrations and are matched in registration order.
type DedicatedRegistration struct {
	ID            string  `json:"id,omitempty"` // Loader-assigned, diagnostics only
	ComponentType string  `json:"component_type"`
	AttributeKey  string  `json:"attribute_key"`
	Factory       Factory `json:"-"`
}

// TypeRegistration binds an editor to an attribute value type, optionally
// declaring which constraint kinds it honors and under which quantifier.
type TypeRegistration struct {
	ID                   string        `json:"id,omitempty"` // Loader-assigned, diagnostics only
	ValueType            string        `json:"value_type"`
	SupportedConstraints ConstraintSet `json:"supported_constraints,omitempty"`
	Quantifier           Quantifier    `json:"quantifier"`
	Factory              Factory       `json:"-"`
}
