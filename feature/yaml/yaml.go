/*
Package yaml provides methods to parse feature.Feature specifications,
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"
	"sort"

	"github.com/saplingml/sapling/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadFeatures takes a slice of bytes with a feature specification in YML and
returns a slice of features parsed from it or an error.
The YML is expected to be an object containing a features property. The value
for this should be an object with a property for each feature with its name
and either a string value of 'real' or 'categorical', or a list of category
values, which also declares a categorical feature.
Features are returned sorted by name so that parsing the same document always
yields the same slice.
*/
func ReadFeatures(md []byte) ([]*feature.Feature, error) {
	metadata := struct {
		Features map[string]interface{}
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if metadata.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	features := []*feature.Feature{}
	for fn, vs := range metadata.Features {
		switch kind := vs.(type) {
		case string:
			k, err := feature.ParseKind(kind)
			if err != nil {
				return nil, fmt.Errorf("feature %s: %v", fn, err)
			}
			f, err := feature.New(fn, k)
			if err != nil {
				return nil, err
			}
			features = append(features, f)
		case []interface{}:
			features = append(features, feature.NewCategorical(fn))
		default:
			return nil, fmt.Errorf("invalid declaration of type %T for feature %s", vs, fn)
		}
	}
	sort.Slice(features, func(i, j int) bool {
		return features[i].Name() < features[j].Name()
	})
	return features, nil
}

/*
ReadFeaturesFromFile takes a filepath string, reads its contents and uses
ReadFeatures to parse it and return a slice of parsed features or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadFeaturesFromFile(filepath string) ([]*feature.Feature, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	features, err := ReadFeatures(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %v", filepath, err)
	}
	return features, err
}
