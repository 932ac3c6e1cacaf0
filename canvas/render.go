package canvas

import (
	"fmt"
	"sort"
	"strings"
)

// Render draws the tree with box glyphs for terminal display. Properties
// are appended in name order so output is stable.
func Render(roots []*Node) string {
	builder := &strings.Builder{}
	for _, root := range roots {
		renderWithin(builder, root, "", true)
	}
	return builder.String()
}

func renderWithin(out *strings.Builder, node *Node, prefix string, last bool) {
	joint := "├── "
	if last {
		joint = "└── "
	}
	fmt.Fprintf(out, "%s%s%s%s\n", prefix, joint, node.Kind, propSummary(node.Props))
	if last {
		prefix += "    "
	} else {
		prefix += "│   "
	}
	for at, child := range node.Children {
		renderWithin(out, child, prefix, at == len(node.Children)-1)
	}
}

func propSummary(props map[string]interface{}) string {
	if len(props) == 0 {
		return ""
	}
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", name, props[name]))
	}
	return " [" + strings.Join(parts, " ") + "]"
}
