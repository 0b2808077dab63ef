package feature

import "testing"

func TestParseKind(t *testing.T) {
	testCases := []struct {
		tag  string
		kind Kind
		ok   bool
	}{
		{"real", Real, true},
		{"categorical", Categorical, true},
		{"integer", 0, false},
		{"Real", 0, false},
		{"", 0, false},
	}
	for _, tc := range testCases {
		kind, err := ParseKind(tc.tag)
		if tc.ok && err != nil {
			t.Errorf("parsing %q: unexpected error %v", tc.tag, err)
			continue
		}
		if !tc.ok && err == nil {
			t.Errorf("parsing %q: expected an error, got none", tc.tag)
			continue
		}
		if kind != tc.kind {
			t.Errorf("parsing %q: got %v, expected %v", tc.tag, kind, tc.kind)
		}
	}
}

func TestKindValid(t *testing.T) {
	if !Real.Valid() || !Categorical.Valid() {
		t.Errorf("declared kinds should be valid")
	}
	if Kind(0).Valid() || Kind(17).Valid() {
		t.Errorf("undeclared kinds should not be valid")
	}
}

func TestNew(t *testing.T) {
	f, err := New("age", Real)
	if err != nil {
		t.Fatalf("building a real feature: unexpected error %v", err)
	}
	if f.Name() != "age" || f.Kind() != Real {
		t.Errorf("got feature %v, expected age (real)", f)
	}
	if _, err := New("age", Kind(42)); err == nil {
		t.Errorf("building a feature of an undeclared kind: expected an error, got none")
	}
}

func TestFeatureValid(t *testing.T) {
	testCases := []struct {
		feature *Feature
		value   interface{}
		ok      bool
	}{
		{NewReal("age"), 30.5, true},
		{NewReal("age"), "30.5", false},
		{NewReal("age"), 30, false},
		{NewReal("age"), nil, false},
		{NewCategorical("color"), "red", true},
		{NewCategorical("color"), "", true},
		{NewCategorical("color"), 1.0, false},
		{NewCategorical("color"), nil, false},
	}
	for _, tc := range testCases {
		ok, err := tc.feature.Valid(tc.value)
		if ok != tc.ok {
			t.Errorf("validating %v on %v: got %v, expected %v", tc.value, tc.feature, ok, tc.ok)
		}
		if tc.ok && err != nil {
			t.Errorf("validating %v on %v: unexpected error %v", tc.value, tc.feature, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("validating %v on %v: expected an error, got none", tc.value, tc.feature)
		}
	}
}
