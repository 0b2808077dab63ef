/*
Package csv reads and writes datasets as CSV streams whose header names
the dataset's features and label column.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/saplingml/sapling/dataset"
	"github.com/saplingml/sapling/feature"
)

/*
ReadDataset takes an io.Reader for a CSV stream, a slice of features and
the name of the label column and returns a dataset with the samples
parsed from the stream or an error.

The header or first row of the CSV content must contain the name of
every given feature and the label column; every header column must be
one of the two. An empty label name declares an unlabelled stream: no
label column is expected and every sample gets an empty label. Values
of real features are parsed as floating point numbers, values of
categorical features are taken verbatim.
*/
func ReadDataset(reader io.Reader, features []*feature.Feature, label string) (*dataset.Dataset, error) {
	ds, err := dataset.New(features)
	if err != nil {
		return nil, err
	}
	featuresByName := make(map[string]*feature.Feature, len(features))
	for _, f := range features {
		featuresByName[f.Name()] = f
	}
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	column := make(map[string]int, len(features))
	labelColumn := -1
	for i, name := range header {
		if label != "" && name == label {
			labelColumn = i
			continue
		}
		if _, known := featuresByName[name]; !known {
			return nil, fmt.Errorf("reading header: column %q is neither a feature nor the label", name)
		}
		column[name] = i
	}
	if label != "" && labelColumn < 0 {
		return nil, fmt.Errorf("reading header: label column %q not found", label)
	}
	if len(column) != len(features) {
		for _, f := range features {
			if _, ok := column[f.Name()]; !ok {
				return nil, fmt.Errorf("reading header: feature column %q not found", f.Name())
			}
		}
	}
	for l := 2; ; l++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		row := make([]interface{}, len(features))
		for j, f := range features {
			raw := record[column[f.Name()]]
			switch f.Kind() {
			case feature.Real:
				v, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return nil, fmt.Errorf("parsing line %d: value %q for real feature %s: %v", l, raw, f.Name(), err)
				}
				row[j] = v
			case feature.Categorical:
				row[j] = raw
			default:
				return nil, fmt.Errorf("feature %s has %v", f.Name(), f.Kind())
			}
		}
		rawLabel := ""
		if labelColumn >= 0 {
			rawLabel = record[labelColumn]
		}
		if err := ds.Append(row, rawLabel); err != nil {
			return nil, fmt.Errorf("parsing line %d: %v", l, err)
		}
	}
	return ds, nil
}

/*
WriteDataset takes an io.Writer, a dataset and the name of the label
column and writes the dataset as CSV to the writer: a header with the
feature names and the label name, then one record per sample.
*/
func WriteDataset(writer io.Writer, ds *dataset.Dataset, label string) error {
	w := csv.NewWriter(writer)
	features := ds.Features()
	header := make([]string, 0, len(features)+1)
	for _, f := range features {
		header = append(header, f.Name())
	}
	header = append(header, label)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %v", err)
	}
	labels := ds.Labels()
	for i, row := range ds.Rows() {
		record := make([]string, 0, len(row)+1)
		for j, f := range features {
			switch f.Kind() {
			case feature.Real:
				record = append(record, strconv.FormatFloat(row[j].(float64), 'g', -1, 64))
			case feature.Categorical:
				record = append(record, row[j].(string))
			default:
				return fmt.Errorf("feature %s has %v", f.Name(), f.Kind())
			}
		}
		record = append(record, labels[i])
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing sample %d: %v", i, err)
		}
	}
	w.Flush()
	return w.Error()
}
