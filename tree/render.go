package tree

import (
	"fmt"
	"strings"
)

/*
String renders the subtree under the node as an ASCII tree, one line per
node, with children indented under their parent. The left child is
always rendered first.
*/
func (n *Node) String() string {
	if n.Terminal() {
		return fmt.Sprintf("(class %d)\n", n.Class)
	}
	result := fmt.Sprintf("{ %v }\n|\n", n.Rule)
	children := []*Node{n.Left, n.Right}
	for i, child := range children {
		for j, line := range strings.Split(child.String(), "\n") {
			if len(line) == 0 {
				continue
			}
			if j == 0 {
				result = fmt.Sprintf("%s|__%s\n", result, line)
			} else if i == len(children)-1 {
				result = fmt.Sprintf("%s   %s\n", result, line)
			} else {
				result = fmt.Sprintf("%s|  %s\n", result, line)
			}
		}
	}
	return result
}
