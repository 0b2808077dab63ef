package dataset

import (
	"reflect"
	"testing"

	"github.com/saplingml/sapling/feature"
)

func testFeatures() []*feature.Feature {
	return []*feature.Feature{feature.NewReal("age"), feature.NewCategorical("plan")}
}

func TestNewAndAppend(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Errorf("building a dataset without features: expected an error, got none")
	}
	ds, err := New(testFeatures())
	if err != nil {
		t.Fatalf("building a dataset: unexpected error %v", err)
	}
	if ds.Count() != 0 {
		t.Errorf("a fresh dataset counts %d samples, expected 0", ds.Count())
	}
	if err := ds.Append([]interface{}{30.0, "basic"}, "yes"); err != nil {
		t.Fatalf("appending a valid sample: unexpected error %v", err)
	}
	if err := ds.Append([]interface{}{45.0, "premium"}, "no"); err != nil {
		t.Fatalf("appending a valid sample: unexpected error %v", err)
	}
	if ds.Count() != 2 {
		t.Errorf("got %d samples, expected 2", ds.Count())
	}
	if !reflect.DeepEqual(ds.Labels(), []string{"yes", "no"}) {
		t.Errorf("got labels %v, expected [yes no]", ds.Labels())
	}
	if !reflect.DeepEqual(ds.Rows()[1], []interface{}{45.0, "premium"}) {
		t.Errorf("got row %v, expected [45 premium]", ds.Rows()[1])
	}

	badRows := [][]interface{}{
		{30.0},               // too narrow
		{30.0, "basic", 1.0}, // too wide
		{"30", "basic"},      // wrong type for the real feature
		{30.0, 1.0},          // wrong type for the categorical feature
	}
	for _, row := range badRows {
		if err := ds.Append(row, "yes"); err == nil {
			t.Errorf("appending %v: expected an error, got none", row)
		}
	}
	if ds.Count() != 2 {
		t.Errorf("rejected samples changed the count to %d", ds.Count())
	}
}

func TestLabelEncoder(t *testing.T) {
	le := NewLabelEncoder([]string{"no", "yes", "no", "maybe", "yes"})
	if !reflect.DeepEqual(le.Classes(), []string{"maybe", "no", "yes"}) {
		t.Fatalf("got classes %v, expected them in lexicographical order", le.Classes())
	}
	y, err := le.Transform([]string{"yes", "maybe", "no"})
	if err != nil {
		t.Fatalf("transforming known labels: unexpected error %v", err)
	}
	if !reflect.DeepEqual(y, []int{2, 0, 1}) {
		t.Errorf("got classes %v, expected [2 0 1]", y)
	}
	labels, err := le.Inverse(y)
	if err != nil {
		t.Fatalf("inverting known classes: unexpected error %v", err)
	}
	if !reflect.DeepEqual(labels, []string{"yes", "maybe", "no"}) {
		t.Errorf("got labels %v, expected the round trip to be exact", labels)
	}
	if _, err := le.Transform([]string{"nope"}); err == nil {
		t.Errorf("transforming an unknown label: expected an error, got none")
	}
	if _, err := le.Inverse([]int{3}); err == nil {
		t.Errorf("inverting an out-of-range class: expected an error, got none")
	}
	if _, err := le.Inverse([]int{-1}); err == nil {
		t.Errorf("inverting a negative class: expected an error, got none")
	}
	if class, ok := le.Class("no"); !ok || class != 1 {
		t.Errorf("got (%d, %v) looking up label no, expected (1, true)", class, ok)
	}
	if _, ok := le.Class("nope"); ok {
		t.Errorf("looking up an unknown label: expected ok to be false")
	}
}

func TestLabelEncoderIsDeterministic(t *testing.T) {
	a := NewLabelEncoder([]string{"b", "a", "c"})
	b := NewLabelEncoder([]string{"c", "c", "a", "b"})
	if !reflect.DeepEqual(a.Classes(), b.Classes()) {
		t.Errorf("encoders fitted on the same label set disagree: %v vs %v", a.Classes(), b.Classes())
	}
}

func TestSplit(t *testing.T) {
	ds, err := New(testFeatures())
	if err != nil {
		t.Fatalf("building a dataset: unexpected error %v", err)
	}
	for i := 0; i < 20; i++ {
		label := "no"
		if i%2 == 0 {
			label = "yes"
		}
		if err := ds.Append([]interface{}{float64(i), "basic"}, label); err != nil {
			t.Fatalf("appending sample %d: unexpected error %v", i, err)
		}
	}

	train, test, err := ds.Split(0.25, 1)
	if err != nil {
		t.Fatalf("splitting: unexpected error %v", err)
	}
	if test.Count() != 5 {
		t.Errorf("got %d test samples, expected 5", test.Count())
	}
	if train.Count()+test.Count() != ds.Count() {
		t.Errorf("split lost samples: %d + %d != %d", train.Count(), test.Count(), ds.Count())
	}
	if ds.Count() != 20 {
		t.Errorf("splitting mutated the dataset, which now counts %d samples", ds.Count())
	}

	seen := make(map[float64]int)
	for _, part := range []*Dataset{train, test} {
		for _, row := range part.Rows() {
			seen[row[0].(float64)]++
		}
	}
	for i := 0; i < 20; i++ {
		if seen[float64(i)] != 1 {
			t.Errorf("sample %d appears %d times across the split, expected exactly once", i, seen[float64(i)])
		}
	}

	trainAgain, testAgain, err := ds.Split(0.25, 1)
	if err != nil {
		t.Fatalf("splitting again: unexpected error %v", err)
	}
	if !reflect.DeepEqual(testAgain.Rows(), test.Rows()) || !reflect.DeepEqual(trainAgain.Rows(), train.Rows()) {
		t.Errorf("splitting twice with the same seed gave different partitions")
	}

	for _, fraction := range []float64{0, 1, -0.5, 1.5} {
		if _, _, err := ds.Split(fraction, 1); err == nil {
			t.Errorf("splitting with fraction %v: expected an error, got none", fraction)
		}
	}
}
