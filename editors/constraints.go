package editors

// Satisfies reports whether an attribute's declared constraints are honored by
// an editor's supported constraint kinds under the given quantifier.
//
// An attribute with no constraints is satisfied unconditionally. Otherwise,
// QuantifierAll requires every declared kind to be supported and QuantifierAny
// requires at least one. Unknown kinds on either side are inert: they simply
// never match.
func Satisfies(attribute, supported ConstraintSet, q Quantifier) bool {
	if attribute.Len() == 0 {
		return true
	}

	// Universal quantifier seeded true; existential seeded false.
	all := true
	any := false
	for kind := range attribute {
		contains := supported.Has(kind)
		all = all && contains
		any = any || contains
	}

	if q == QuantifierAll {
		return all
	}
	return any
}
