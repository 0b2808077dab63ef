/*
Package dataset provides an in-memory collection of labelled samples
bound to an ordered slice of features, which classifiers are trained on
and backends read from and write to.
*/
package dataset

import (
	"fmt"

	"github.com/saplingml/sapling/feature"
)

/*
Dataset is a rectangular collection of samples: every row holds one
value per feature, in feature order, plus a raw label value.
*/
type Dataset struct {
	features []*feature.Feature
	rows     [][]interface{}
	labels   []string
}

/*
New takes an ordered slice of features and returns an empty dataset with
them, or an error if the slice is empty.
*/
func New(features []*feature.Feature) (*Dataset, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("cannot build a dataset without features")
	}
	fs := make([]*feature.Feature, len(features))
	copy(fs, features)
	return &Dataset{features: fs}, nil
}

/*
Append takes a sample row and its raw label and adds them to the
dataset, or returns an error if the row's width or value types disagree
with the dataset's features.
*/
func (ds *Dataset) Append(row []interface{}, label string) error {
	if len(row) != len(ds.features) {
		return fmt.Errorf("sample has %d values for %d features", len(row), len(ds.features))
	}
	for j, f := range ds.features {
		if _, err := f.Valid(row[j]); err != nil {
			return err
		}
	}
	ds.rows = append(ds.rows, row)
	ds.labels = append(ds.labels, label)
	return nil
}

/*
Features returns the dataset's features, in column order.
*/
func (ds *Dataset) Features() []*feature.Feature {
	fs := make([]*feature.Feature, len(ds.features))
	copy(fs, ds.features)
	return fs
}

/*
Rows returns the dataset's sample rows, in insertion order. The result
aliases the dataset's storage and must not be mutated.
*/
func (ds *Dataset) Rows() [][]interface{} {
	return ds.rows
}

/*
Labels returns the raw label values of the dataset's samples, aligned
with Rows.
*/
func (ds *Dataset) Labels() []string {
	return ds.labels
}

/*
Count returns the number of samples in the dataset.
*/
func (ds *Dataset) Count() int {
	return len(ds.rows)
}
