package editors

import (
	"encoding/json"
	"testing"
)

func TestParseQuantifier(t *testing.T) {
	cases := []struct {
		in      string
		want    Quantifier
		wantErr bool
	}{
		{"all", QuantifierAll, false},
		{"any", QuantifierAny, false},
		{"ALL", QuantifierAll, false},
		{"Any", QuantifierAny, false},
		{"most", QuantifierAll, true},
		{"", QuantifierAll, true},
	}

	for _, tc := range cases {
		got, err := ParseQuantifier(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseQuantifier(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseQuantifier(%q) failed: %v", tc.in, err)
		} else if got != tc.want {
			t.Errorf("ParseQuantifier(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestConstraintSet_JSON(t *testing.T) {
	data, err := json.Marshal(NewConstraintSet("range", "pattern"))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `["pattern","range"]` {
		t.Errorf("Marshal = %s, want sorted array", data)
	}

	var s ConstraintSet
	if err := json.Unmarshal([]byte(`["range","range","enum"]`), &s); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if s.Len() != 2 || !s.Has("range") || !s.Has("enum") {
		t.Errorf("Unmarshal produced %s", s)
	}
}

func TestAttributeDescriptor_String(t *testing.T) {
	attr := AttributeDescriptor{Key: "threshold", DeclaredType: "core.Double"}
	if got := attr.String(); got != "threshold (core.Double)" {
		t.Errorf("String() = %q", got)
	}

	attr.Constraints = NewConstraintSet("range")
	if got := attr.String(); got != "threshold (core.Double, constraints {range})" {
		t.Errorf("String() = %q", got)
	}
}
