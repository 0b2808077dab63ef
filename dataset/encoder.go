package dataset

import (
	"fmt"
	"sort"
)

/*
LabelEncoder maps raw label values to dense integer classes and back.
Classes are assigned in lexicographical order of the raw labels, so
fitting the encoder on the same label set always produces the same
mapping.
*/
type LabelEncoder struct {
	classToInt map[string]int
	intToClass []string
}

/*
NewLabelEncoder takes a slice of raw label values and returns an encoder
fitted to the distinct labels among them.
*/
func NewLabelEncoder(labels []string) *LabelEncoder {
	distinct := make(map[string]bool)
	for _, label := range labels {
		distinct[label] = true
	}
	classes := make([]string, 0, len(distinct))
	for label := range distinct {
		classes = append(classes, label)
	}
	sort.Strings(classes)
	le := &LabelEncoder{
		classToInt: make(map[string]int, len(classes)),
		intToClass: classes,
	}
	for i, label := range classes {
		le.classToInt[label] = i
	}
	return le
}

/*
Transform takes a slice of raw labels and returns their integer classes,
or an error on a label the encoder was not fitted on.
*/
func (le *LabelEncoder) Transform(labels []string) ([]int, error) {
	result := make([]int, len(labels))
	for i, label := range labels {
		class, ok := le.classToInt[label]
		if !ok {
			return nil, fmt.Errorf("unknown label %q", label)
		}
		result[i] = class
	}
	return result, nil
}

/*
Inverse takes a slice of integer classes and returns their raw labels,
or an error on a class outside the fitted range.
*/
func (le *LabelEncoder) Inverse(classes []int) ([]string, error) {
	result := make([]string, len(classes))
	for i, class := range classes {
		if class < 0 || class >= len(le.intToClass) {
			return nil, fmt.Errorf("unknown class %d", class)
		}
		result[i] = le.intToClass[class]
	}
	return result, nil
}

/*
Class returns the integer class of a raw label and whether the encoder
knows it.
*/
func (le *LabelEncoder) Class(label string) (int, bool) {
	class, ok := le.classToInt[label]
	return class, ok
}

/*
Classes returns the raw labels the encoder was fitted on, in class
order.
*/
func (le *LabelEncoder) Classes() []string {
	classes := make([]string, len(le.intToClass))
	copy(classes, le.intToClass)
	return classes
}
