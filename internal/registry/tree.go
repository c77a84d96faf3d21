package registry

import (
	"fmt"
	"io"
)

// PrintTree prints the dependency tree with box-drawing characters.
func PrintTree(w io.Writer, root *Node) {
	printNode(w, root, "", true, true)
}

func printNode(w io.Writer, node *Node, prefix string, isLast, isRoot bool) {
	if node == nil {
		return
	}

	label := node.Name
	if node.Deduped {
		label += " (deduped)"
	} else if node.Component != nil && len(node.Component.Dependencies) > 0 {
		label += fmt.Sprintf(" [+%d packages]", len(node.Component.Dependencies))
	}

	childPrefix := prefix
	if isRoot {
		fmt.Fprintf(w, "  %s\n", label)
	} else {
		connector := "├── "
		if isLast {
			connector = "└── "
		}
		fmt.Fprintf(w, "  %s%s%s\n", prefix, connector, label)
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}
	}

	for i, child := range node.Children {
		printNode(w, child, childPrefix, i == len(node.Children)-1, false)
	}
}
