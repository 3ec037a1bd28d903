package layout

import (
	"fmt"
	"io"
	"strings"
)

// PrintTree writes a human-readable dump of node and its descendants'
// cached rectangles to w, in the style of a directory listing: one line
// per node, indentation showing nesting, box-drawing connectors showing
// siblings.
//
// PrintTree never influences layout; it only reads whatever Layout
// already wrote into cache. Call it after Layout, not instead of it.
func PrintTree[N comparable](w io.Writer, node N, cache Cache[N], tree Tree[N], label func(N) string) {
	printNode(w, node, cache, tree, label, "", true)
}

func printNode[N comparable](w io.Writer, node N, cache Cache[N], tree Tree[N], label func(N) string, prefix string, isRoot bool) {
	x, y := cache.PosX(node), cache.PosY(node)
	width, height := cache.Width(node), cache.Height(node)

	name := ""
	if label != nil {
		name = label(node)
	}
	if name == "" {
		name = fmt.Sprintf("%v", node)
	}

	connector := ""
	if !isRoot {
		connector = prefix
	}
	fmt.Fprintf(w, "%s%s  [x=%.0f y=%.0f w=%.0f h=%.0f]\n", connector, name, x, y, width, height)

	children := tree.Children(node)
	childPrefix := prefix
	if !isRoot {
		if strings.HasSuffix(prefix, "├─ ") {
			childPrefix = strings.TrimSuffix(prefix, "├─ ") + "│  "
		} else if strings.HasSuffix(prefix, "└─ ") {
			childPrefix = strings.TrimSuffix(prefix, "└─ ") + "   "
		}
	}

	for i, child := range children {
		last := i == len(children)-1
		branch := "├─ "
		if last {
			branch = "└─ "
		}
		printNode(w, child, cache, tree, label, childPrefix+branch, false)
	}
}
