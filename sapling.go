/*
Package sapling grows binary decision-tree classifiers by greedy
recursive partitioning under the Gini impurity criterion, over samples
mixing real-valued and categorical features.
*/
package sapling

import (
	"fmt"
	"sort"

	"github.com/saplingml/sapling/feature"
	"github.com/saplingml/sapling/tree"
)

// ClassifierError represents an error related to the use of a Classifier.
type ClassifierError string

/*
ErrNotFitted is the error returned when a classifier is asked to predict
before it has been fitted to any training data.
*/
const ErrNotFitted = ClassifierError("classifier has not been fitted")

func (ce ClassifierError) Error() string {
	return string(ce)
}

/*
Option configures a Classifier on construction.
*/
type Option func(*Classifier)

/*
MaxDepth records a limit on the depth of the grown tree.
*/
func MaxDepth(n int) Option {
	return func(c *Classifier) {
		c.maxDepth = n
	}
}

/*
MinSamplesSplit records a limit on the size of a node for it to be split.
*/
func MinSamplesSplit(n int) Option {
	return func(c *Classifier) {
		c.minSamplesSplit = n
	}
}

/*
MinSamplesLeaf records a limit on the size of a grown leaf.
*/
func MinSamplesLeaf(n int) Option {
	return func(c *Classifier) {
		c.minSamplesLeaf = n
	}
}

/*
PositiveClass sets the label whose empirical rate within a node orders
the categories of categorical features before split search. It defaults
to 1.
*/
func PositiveClass(label int) Option {
	return func(c *Classifier) {
		c.positive = label
	}
}

/*
Classifier is a binary decision-tree classifier over samples whose
columns are described by a fixed slice of features. Real columns are
split on thresholds, categorical columns on sets of category values.

The growth limits accepted through MaxDepth, MinSamplesSplit and
MinSamplesLeaf are recorded but the growing procedure currently stops
only on pure or single-sample nodes.
TODO: enforce the growth limits in the stopping rule.
*/
type Classifier struct {
	features        []*feature.Feature
	maxDepth        int
	minSamplesSplit int
	minSamplesLeaf  int
	positive        int
	root            *tree.Node
}

/*
New takes a slice of features describing the columns of the sample
matrices the classifier will see, in column order, and a set of options,
and returns a classifier or an error if the slice is empty or any
feature is of an unknown kind. The feature slice is fixed for the
lifetime of the classifier.
*/
func New(features []*feature.Feature, opts ...Option) (*Classifier, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("cannot build a classifier without features")
	}
	fs := make([]*feature.Feature, len(features))
	for i, f := range features {
		if f == nil {
			return nil, fmt.Errorf("feature %d is nil", i)
		}
		if !f.Kind().Valid() {
			return nil, fmt.Errorf("feature %s has %v", f.Name(), f.Kind())
		}
		fs[i] = f
	}
	c := &Classifier{features: fs, positive: 1}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

/*
Features returns the slice of features the classifier was built with, in
column order.
*/
func (c *Classifier) Features() []*feature.Feature {
	fs := make([]*feature.Feature, len(c.features))
	copy(fs, c.features)
	return fs
}

/*
Root returns the root node of the grown tree, or nil before Fit.
*/
func (c *Classifier) Root() *tree.Node {
	return c.root
}

/*
Depth returns the depth of the grown tree: 0 for a single terminal root
(and before Fit), 1 plus the deepest subtree otherwise.
*/
func (c *Classifier) Depth() int {
	if c.root == nil {
		return 0
	}
	return c.root.Depth()
}

/*
Fit takes a sample matrix and a label vector of matching row count and
grows the classifier's tree from them. The matrix rows must have one
value per feature, of the feature's kind. Fit replaces any previously
grown tree and does not mutate its inputs.
*/
func (c *Classifier) Fit(X [][]interface{}, y []int) error {
	if len(X) == 0 {
		return fmt.Errorf("cannot fit on an empty sample matrix")
	}
	if len(X) != len(y) {
		return fmt.Errorf("fitting: %d sample rows but %d labels", len(X), len(y))
	}
	if err := c.checkMatrix(X); err != nil {
		return fmt.Errorf("fitting: %v", err)
	}
	root := &tree.Node{}
	if err := c.fitNode(X, y, root); err != nil {
		return fmt.Errorf("fitting: %v", err)
	}
	c.root = root
	return nil
}

/*
Predict takes a sample matrix and returns the predicted class for each
of its rows, in row order. It returns an error if the classifier has not
been fitted or if the matrix's columns disagree with the features the
classifier was built with.
*/
func (c *Classifier) Predict(X [][]interface{}) ([]int, error) {
	if c.root == nil {
		return nil, ErrNotFitted
	}
	if err := c.checkMatrix(X); err != nil {
		return nil, fmt.Errorf("predicting: %v", err)
	}
	predictions := make([]int, len(X))
	for i, row := range X {
		class, err := c.root.Decide(row)
		if err != nil {
			return nil, fmt.Errorf("predicting row %d: %v", i, err)
		}
		predictions[i] = class
	}
	return predictions, nil
}

func (c *Classifier) checkMatrix(X [][]interface{}) error {
	for i, row := range X {
		if len(row) != len(c.features) {
			return fmt.Errorf("row %d has %d values for %d features", i, len(row), len(c.features))
		}
		for j, f := range c.features {
			if _, err := f.Valid(row[j]); err != nil {
				return fmt.Errorf("row %d: %v", i, err)
			}
		}
	}
	return nil
}

/*
fitNode fills node in place for the given subsample and recurses on the
partition of the winning split. A node becomes terminal when its labels
are pure, when it holds at most one sample, or when no feature offers a
usable split, in which case it predicts the majority class with ties
going to the smallest label.
*/
func (c *Classifier) fitNode(X [][]interface{}, y []int, node *tree.Node) error {
	if len(y) <= 1 || pure(y) {
		node.Class = y[0]
		return nil
	}

	var (
		found        bool
		bestImpurity float64
		bestColumn   int
		bestBoundary float64
		bestMask     []bool
		bestRanks    map[string]int
	)
	for col, f := range c.features {
		var vector []float64
		var ranks map[string]int
		switch f.Kind() {
		case feature.Real:
			vector = make([]float64, len(X))
			for i, row := range X {
				vector[i] = row[col].(float64)
			}
		case feature.Categorical:
			ranks = c.rankCategories(X, y, col)
			vector = make([]float64, len(X))
			for i, row := range X {
				vector[i] = float64(ranks[row[col].(string)])
			}
		default:
			return fmt.Errorf("feature %s has %v", f.Name(), f.Kind())
		}
		if constant(vector) {
			continue
		}
		s, ok := FindBestSplit(vector, y)
		if !ok {
			continue
		}
		if !found || s.BestImpurity < bestImpurity {
			found = true
			bestImpurity = s.BestImpurity
			bestColumn = col
			bestBoundary = s.BestThreshold
			bestMask = make([]bool, len(vector))
			for i, v := range vector {
				bestMask[i] = v < s.BestThreshold
			}
			bestRanks = ranks
		}
	}

	if !found {
		node.Class = majorityClass(y)
		return nil
	}

	if bestRanks == nil {
		node.Rule = &tree.Threshold{Col: bestColumn, Value: bestBoundary}
	} else {
		var members []string
		for category, rank := range bestRanks {
			if float64(rank) < bestBoundary {
				members = append(members, category)
			}
		}
		node.Rule = tree.NewCategories(bestColumn, members)
	}

	node.Left = &tree.Node{}
	node.Right = &tree.Node{}
	leftX, leftY, rightX, rightY := partition(X, y, bestMask)
	if err := c.fitNode(leftX, leftY, node.Left); err != nil {
		return err
	}
	return c.fitNode(rightX, rightY, node.Right)
}

/*
rankCategories builds the per-node ranking table of a categorical
column: categories are ordered by ascending rate of the positive class
among the node's samples holding them, with equal rates ordered
lexicographically, and mapped to their position in that order. Only
categories present in the subsample appear in the table.
*/
func (c *Classifier) rankCategories(X [][]interface{}, y []int, col int) map[string]int {
	counts := make(map[string]int)
	positives := make(map[string]int)
	for i, row := range X {
		category := row[col].(string)
		counts[category]++
		if y[i] == c.positive {
			positives[category]++
		}
	}
	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		ri := float64(positives[categories[i]]) / float64(counts[categories[i]])
		rj := float64(positives[categories[j]]) / float64(counts[categories[j]])
		if ri != rj {
			return ri < rj
		}
		return categories[i] < categories[j]
	})
	ranks := make(map[string]int, len(categories))
	for rank, category := range categories {
		ranks[category] = rank
	}
	return ranks
}

func pure(y []int) bool {
	for _, label := range y[1:] {
		if label != y[0] {
			return false
		}
	}
	return true
}

func constant(vector []float64) bool {
	for _, v := range vector[1:] {
		if v != vector[0] {
			return false
		}
	}
	return true
}

// majorityClass returns the most frequent label, ties going to the
// smallest one.
func majorityClass(y []int) int {
	counts := make(map[int]int)
	for _, label := range y {
		counts[label]++
	}
	classes := make([]int, 0, len(counts))
	for class := range counts {
		classes = append(classes, class)
	}
	sort.Ints(classes)
	best := classes[0]
	for _, class := range classes[1:] {
		if counts[class] > counts[best] {
			best = class
		}
	}
	return best
}

func partition(X [][]interface{}, y []int, mask []bool) (leftX [][]interface{}, leftY []int, rightX [][]interface{}, rightY []int) {
	for i, left := range mask {
		if left {
			leftX = append(leftX, X[i])
			leftY = append(leftY, y[i])
		} else {
			rightX = append(rightX, X[i])
			rightY = append(rightY, y[i])
		}
	}
	return leftX, leftY, rightX, rightY
}
