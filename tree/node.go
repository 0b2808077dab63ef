/*
Package tree provides the binary decision-tree structure grown by the
classifier: nodes owning their children and the routing rules internal
nodes apply to samples.
*/
package tree

import (
	"fmt"
	"sort"
	"strings"
)

/*
Rule represents the routing decision of an internal node.

Its Column method returns the index of the feature column the rule
inspects. Its Route method takes the sample's value at that column and
returns true to descend to the left child and false to descend to the
right one, or an error if the value's type does not match the rule.
*/
type Rule interface {
	Column() int
	Route(value interface{}) (bool, error)
}

/*
Threshold is a Rule on a real feature: samples whose value at the column
is strictly below the threshold value go left, all others go right.
*/
type Threshold struct {
	Col   int
	Value float64
}

/*
Categories is a Rule on a categorical feature: samples whose raw category
value at the column belongs to the member set go left, all others go
right.
*/
type Categories struct {
	Col     int
	members map[string]bool
}

/*
NewCategories takes a column index and a slice of category values and
returns a Categories rule routing members of the slice to the left.
*/
func NewCategories(col int, members []string) *Categories {
	set := make(map[string]bool, len(members))
	for _, m := range members {
		set[m] = true
	}
	return &Categories{Col: col, members: set}
}

// Column returns the index of the feature column the rule inspects.
func (t *Threshold) Column() int {
	return t.Col
}

func (t *Threshold) Route(value interface{}) (bool, error) {
	v, ok := value.(float64)
	if !ok {
		return false, fmt.Errorf("routing on column %d: expected float64 value, got %T value", t.Col, value)
	}
	return v < t.Value, nil
}

func (t *Threshold) String() string {
	return fmt.Sprintf("x[%d] < %v", t.Col, t.Value)
}

// Column returns the index of the feature column the rule inspects.
func (c *Categories) Column() int {
	return c.Col
}

func (c *Categories) Route(value interface{}) (bool, error) {
	v, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("routing on column %d: expected string value, got %T value", c.Col, value)
	}
	return c.members[v], nil
}

/*
Members returns the category values the rule routes to the left, sorted.
*/
func (c *Categories) Members() []string {
	members := make([]string, 0, len(c.members))
	for m := range c.members {
		members = append(members, m)
	}
	sort.Strings(members)
	return members
}

func (c *Categories) String() string {
	return fmt.Sprintf("x[%d] in {%s}", c.Col, strings.Join(c.Members(), ", "))
}

/*
Node is a node of the tree: either a terminal node predicting Class, when
Rule is nil, or an internal node owning exactly two children that samples
are routed between by the Rule. Nodes are filled in place while the tree
is grown and never mutated afterwards.
*/
type Node struct {
	// The class predicted for samples that reach this node, meaningful
	// only on terminal nodes.
	Class int
	// The routing rule of an internal node, nil on terminal nodes.
	Rule Rule
	// The children samples are routed between. Both are nil on terminal
	// nodes and both are set on internal ones.
	Left, Right *Node
}

/*
Terminal returns whether the node is a terminal one.
*/
func (n *Node) Terminal() bool {
	return n.Rule == nil
}

/*
Decide takes a sample row and descends the subtree under the node
following its rules until a terminal node is reached, whose class is
returned. It returns an error if a rule inspects a column the row does
not have or a value of the wrong type.
*/
func (n *Node) Decide(row []interface{}) (int, error) {
	for !n.Terminal() {
		col := n.Rule.Column()
		if col < 0 || col >= len(row) {
			return 0, fmt.Errorf("deciding sample: rule on column %d, row has %d columns", col, len(row))
		}
		left, err := n.Rule.Route(row[col])
		if err != nil {
			return 0, fmt.Errorf("deciding sample: %v", err)
		}
		if left {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Class, nil
}

/*
Depth returns the depth of the subtree under the node: 0 for a terminal
node, 1 plus the deepest child's depth otherwise.
*/
func (n *Node) Depth() int {
	if n.Terminal() {
		return 0
	}
	ld := n.Left.Depth()
	rd := n.Right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

/*
Count returns the number of nodes in the subtree under the node,
including the node itself.
*/
func (n *Node) Count() int {
	if n.Terminal() {
		return 1
	}
	return 1 + n.Left.Count() + n.Right.Count()
}

/*
Walk takes a bottomup boolean and an error-returning function on a node,
and goes through the subtree under the node running the function with
every traversed node. Walk calls the function with a parent node before
its children if bottomup is false, and after them if bottomup is true.
If a call to the function returns an error the walk is aborted and the
error returned.
*/
func (n *Node) Walk(bottomup bool, f func(*Node) error) error {
	if !bottomup {
		if err := f(n); err != nil {
			return err
		}
	}
	if !n.Terminal() {
		if err := n.Left.Walk(bottomup, f); err != nil {
			return err
		}
		if err := n.Right.Walk(bottomup, f); err != nil {
			return err
		}
	}
	if bottomup {
		return f(n)
	}
	return nil
}
