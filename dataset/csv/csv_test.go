package csv

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/saplingml/sapling/dataset"
	"github.com/saplingml/sapling/feature"
)

func testFeatures() []*feature.Feature {
	return []*feature.Feature{feature.NewReal("age"), feature.NewCategorical("plan")}
}

func TestReadDataset(t *testing.T) {
	content := `plan,churned,age
basic,yes,30.5
premium,no,45
`
	ds, err := ReadDataset(strings.NewReader(content), testFeatures(), "churned")
	if err != nil {
		t.Fatalf("reading: unexpected error %v", err)
	}
	if ds.Count() != 2 {
		t.Fatalf("got %d samples, expected 2", ds.Count())
	}
	if !reflect.DeepEqual(ds.Rows()[0], []interface{}{30.5, "basic"}) {
		t.Errorf("got row %v, expected the columns reordered to feature order", ds.Rows()[0])
	}
	if !reflect.DeepEqual(ds.Labels(), []string{"yes", "no"}) {
		t.Errorf("got labels %v, expected [yes no]", ds.Labels())
	}
}

func TestReadDatasetUnlabelled(t *testing.T) {
	content := `age,plan
30.5,basic
45,premium
`
	ds, err := ReadDataset(strings.NewReader(content), testFeatures(), "")
	if err != nil {
		t.Fatalf("reading: unexpected error %v", err)
	}
	if !reflect.DeepEqual(ds.Labels(), []string{"", ""}) {
		t.Errorf("got labels %v, expected them all empty", ds.Labels())
	}
}

func TestReadDatasetErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		label   string
	}{
		{"empty stream", "", "churned"},
		{"unknown column", "age,plan,churned,extra\n30,basic,yes,x\n", "churned"},
		{"missing label column", "age,plan\n30,basic\n", "churned"},
		{"missing feature column", "age,churned\n30,yes\n", "churned"},
		{"unparsable real value", "age,plan,churned\nthirty,basic,yes\n", "churned"},
		{"ragged record", "age,plan,churned\n30,basic\n", "churned"},
	}
	for _, tc := range testCases {
		if _, err := ReadDataset(strings.NewReader(tc.content), testFeatures(), tc.label); err == nil {
			t.Errorf("%s: expected an error, got none", tc.name)
		}
	}
}

func TestWriteDataset(t *testing.T) {
	ds, err := dataset.New(testFeatures())
	if err != nil {
		t.Fatalf("building a dataset: unexpected error %v", err)
	}
	if err := ds.Append([]interface{}{30.5, "basic"}, "yes"); err != nil {
		t.Fatalf("appending: unexpected error %v", err)
	}
	if err := ds.Append([]interface{}{45.0, "premium"}, "no"); err != nil {
		t.Fatalf("appending: unexpected error %v", err)
	}
	var buf bytes.Buffer
	if err := WriteDataset(&buf, ds, "churned"); err != nil {
		t.Fatalf("writing: unexpected error %v", err)
	}
	expected := `age,plan,churned
30.5,basic,yes
45,premium,no
`
	if buf.String() != expected {
		t.Errorf("got %q, expected %q", buf.String(), expected)
	}
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	ds, err := dataset.New(testFeatures())
	if err != nil {
		t.Fatalf("building a dataset: unexpected error %v", err)
	}
	if err := ds.Append([]interface{}{0.125, "has,comma"}, "yes"); err != nil {
		t.Fatalf("appending: unexpected error %v", err)
	}
	var buf bytes.Buffer
	if err := WriteDataset(&buf, ds, "churned"); err != nil {
		t.Fatalf("writing: unexpected error %v", err)
	}
	read, err := ReadDataset(&buf, ds.Features(), "churned")
	if err != nil {
		t.Fatalf("reading back: unexpected error %v", err)
	}
	if !reflect.DeepEqual(read.Rows(), ds.Rows()) || !reflect.DeepEqual(read.Labels(), ds.Labels()) {
		t.Errorf("round trip changed the dataset: got %v %v", read.Rows(), read.Labels())
	}
}
