/*
Package feature describes the columns a classifier learns from: every
feature has a name and one of a closed set of kinds.
*/
package feature

import "fmt"

/*
Kind is the type of the values a feature can take. It is a closed
enumeration: every switch on a Kind must handle Real and Categorical and
treat anything else as a programming error.
*/
type Kind int

const (
	// Real features take float64 values.
	Real Kind = iota + 1
	// Categorical features take string values from an open set of
	// categories.
	Categorical
)

/*
ParseKind takes a kind tag string and returns the Kind it names or an
error if the tag is not "real" or "categorical".
*/
func ParseKind(tag string) (Kind, error) {
	switch tag {
	case "real":
		return Real, nil
	case "categorical":
		return Categorical, nil
	}
	return 0, fmt.Errorf("unknown feature kind %q", tag)
}

/*
Valid returns whether the kind is one of the declared Kind values.
*/
func (k Kind) Valid() bool {
	return k == Real || k == Categorical
}

func (k Kind) String() string {
	switch k {
	case Real:
		return "real"
	case Categorical:
		return "categorical"
	}
	return fmt.Sprintf("unknown kind %d", int(k))
}

/*
Feature represents a property that can be observed on a sample: a named
column of a fixed kind.
*/
type Feature struct {
	name string
	kind Kind
}

/*
New takes a name and a kind and returns a feature with them, or an error
if the kind is not a declared one.
*/
func New(name string, kind Kind) (*Feature, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("feature %s: %v", name, kind)
	}
	return &Feature{name: name, kind: kind}, nil
}

/*
NewReal takes a name string and returns a real-valued feature with the
given name.
*/
func NewReal(name string) *Feature {
	return &Feature{name: name, kind: Real}
}

/*
NewCategorical takes a name string and returns a categorical feature with
the given name.
*/
func NewCategorical(name string) *Feature {
	return &Feature{name: name, kind: Categorical}
}

/*
Name returns a string with the name of the feature
*/
func (f *Feature) Name() string {
	return f.name
}

/*
Kind returns the kind of the feature
*/
func (f *Feature) Kind() Kind {
	return f.kind
}

/*
Valid receives a value and returns a boolean and an error. For real
features the value must be a float64, for categorical features a string.
When the value has the kind's type the method returns true and nil,
otherwise false and an error describing the reason.
*/
func (f *Feature) Valid(value interface{}) (bool, error) {
	switch f.kind {
	case Real:
		if _, ok := value.(float64); !ok {
			return false, fmt.Errorf("real feature %s expects float64 value, got %T value", f.name, value)
		}
	case Categorical:
		if _, ok := value.(string); !ok {
			return false, fmt.Errorf("categorical feature %s expects string value, got %T value", f.name, value)
		}
	default:
		return false, fmt.Errorf("feature %s has %v", f.name, f.kind)
	}
	return true, nil
}

func (f *Feature) String() string {
	return fmt.Sprintf("%s (%v)", f.name, f.kind)
}
