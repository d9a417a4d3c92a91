// Package editors implements the attribute-to-editor resolution engine:
// given a component's type and a descriptor of one of its configurable
// attributes, it determines which registered editor is responsible for
// presenting and mutating that attribute's value.
//
// # Model
//
// Editors are registered in two partitions. Dedicated registrations target one
// specific component type + attribute key pair and always take precedence.
// Type registrations target an attribute value type generically, optionally
// declaring which constraint kinds they honor and under which quantifier
// (all declared constraints, or any one of them).
//
// Resolution proceeds in two passes:
//
//  1. Dedicated pass: the first dedicated registration (in registration
//     order) whose component type is compatible with the owner and whose
//     attribute key matches wins outright.
//  2. Type pass: type registrations are filtered by value-type compatibility
//     and constraint satisfaction. Survivors that declare constraint support
//     outrank those that do not, but only when the attribute itself is
//     constrained; ties keep registration order. The top survivor wins.
//
// If both passes come up empty, Resolve returns a *NotFoundError.
//
// Type compatibility is a nominal check over an explicit Hierarchy table
// (qualified name equality, or any proper ancestor's name), assembled from
// static metadata rather than live reflection.
//
// # Usage
//
//	hierarchy := editors.NewHierarchy()
//	hierarchy.Register("acme.Clustering", "acme.ClusteringBase")
//
//	registry := editors.NewRegistry()
//	registry.AddType(editors.TypeRegistration{
//		ValueType:            "core.Double",
//		SupportedConstraints: editors.NewConstraintSet("range"),
//		Quantifier:           editors.QuantifierAll,
//		Factory:              newRangeEditor,
//	})
//
//	resolver := editors.NewResolver(registry, hierarchy)
//	editor, err := resolver.Resolve("acme.Clustering", editors.AttributeDescriptor{
//		Key:          "threshold",
//		DeclaredType: "core.Double",
//		Constraints:  editors.NewConstraintSet("range"),
//	})
//
// # Concurrency
//
// The engine is read-only over an immutable registry and hierarchy. Provided
// population happens-before the first resolution, Resolve is safe to call
// from any number of goroutines with no locking: it is synchronous, performs
// no I/O, and is bounded by the number of registrations.
package editors
