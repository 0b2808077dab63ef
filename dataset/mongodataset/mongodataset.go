/*
Package mongodataset reads and writes datasets on a MongoDB database:
one document per sample in a samples collection, one document field per
feature plus the label field.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/saplingml/sapling/dataset"
	"github.com/saplingml/sapling/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const samplesCollectionName = "samples"

/*
Collection is a handle on the samples collection of a MongoDB database
from which a dataset can be read and to which samples can be written.
*/
type Collection struct {
	session  *mgo.Session
	features []*feature.Feature
	label    string
}

/*
Open takes a MongoDB database session, a slice of features and the name
of the label field and returns a Collection that works on the default
database for that session, or an error if a feature or label name cannot
be used as a document field or an index cannot be ensured.
*/
func Open(session *mgo.Session, features []*feature.Feature, label string) (*Collection, error) {
	c := &Collection{session: session, features: features, label: label}
	names := make([]string, 0, len(features)+1)
	for _, f := range features {
		names = append(names, f.Name())
	}
	names = append(names, label)
	for _, name := range names {
		if name == "_id" {
			return nil, fmt.Errorf("invalid field name %q: reserved collection field", name)
		}
		if strings.ContainsAny(name, ".$") {
			return nil, fmt.Errorf("invalid field name %q: contains reserved characters %q or %q", name, ".", "$")
		}
	}
	if err := c.ensureIndexes(); err != nil {
		return nil, err
	}
	return c, nil
}

/*
Read takes a context and returns a dataset with every sample document in
the collection or an error. Real feature fields must hold numeric values
and categorical and label fields textual values.
*/
func (c *Collection) Read(ctx context.Context) (*dataset.Dataset, error) {
	ds, err := dataset.New(c.features)
	if err != nil {
		return nil, err
	}
	iter := c.samplesCollection().Find(nil).Iter()
	defer iter.Close()
	var doc bson.M
	for i := 0; iter.Next(&doc); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := make([]interface{}, len(c.features))
		for j, f := range c.features {
			value, ok := doc[f.Name()]
			if !ok {
				return nil, fmt.Errorf("sample document %d has no field %q", i, f.Name())
			}
			switch f.Kind() {
			case feature.Real:
				switch v := value.(type) {
				case float64:
					row[j] = v
				case int:
					row[j] = float64(v)
				case int64:
					row[j] = float64(v)
				default:
					return nil, fmt.Errorf("sample document %d: real feature %s holds a %T", i, f.Name(), value)
				}
			case feature.Categorical:
				v, ok := value.(string)
				if !ok {
					return nil, fmt.Errorf("sample document %d: categorical feature %s holds a %T", i, f.Name(), value)
				}
				row[j] = v
			default:
				return nil, fmt.Errorf("feature %s has %v", f.Name(), f.Kind())
			}
		}
		label, ok := doc[c.label]
		if !ok {
			return nil, fmt.Errorf("sample document %d has no label field %q", i, c.label)
		}
		if err := ds.Append(row, fmt.Sprintf("%v", label)); err != nil {
			return nil, fmt.Errorf("reading sample document %d: %v", i, err)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("reading samples: %v", err)
	}
	return ds, nil
}

/*
Write takes a context and a dataset and inserts one document per sample
into the collection. It returns the number of samples written or an
error.
*/
func (c *Collection) Write(ctx context.Context, ds *dataset.Dataset) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	labels := ds.Labels()
	docs := make([]interface{}, 0, ds.Count())
	for i, row := range ds.Rows() {
		doc := make(bson.M, len(c.features)+1)
		for j, f := range c.features {
			doc[f.Name()] = row[j]
		}
		doc[c.label] = labels[i]
		docs = append(docs, doc)
	}
	if err := c.samplesCollection().Insert(docs...); err != nil {
		return 0, fmt.Errorf("inserting samples: %v", err)
	}
	return len(docs), nil
}

func (c *Collection) ensureIndexes() error {
	for _, f := range c.features {
		index := mgo.Index{
			Key:        []string{f.Name()},
			Background: true,
			Sparse:     true,
		}
		if err := c.samplesCollection().EnsureIndex(index); err != nil {
			return fmt.Errorf("ensuring index on %s: %v", f.Name(), err)
		}
	}
	return nil
}

func (c *Collection) samplesCollection() *mgo.Collection {
	return c.session.DB("").C(samplesCollectionName)
}
