// Package canvas holds the component tree edited on one screen: a recursive
// widget structure with persistent (copy-on-write) mutation operations.
// Every operation returns a new root slice and leaves the given one intact,
// so earlier holders never observe edits.
package canvas

// Node is one placed widget instance. Props are advisory at this layer;
// their types are checked against the registry where the user submits an
// edit, not inside tree operations.
type Node struct {
	ID       string                 `json:"id"`
	Kind     string                 `json:"kind"`
	Props    map[string]interface{} `json:"props"`
	Children []*Node                `json:"children,omitempty"`
}

// shallow returns a copy of the node with its own children slice, sharing
// the child subtrees themselves.
func (it *Node) shallow() *Node {
	children := make([]*Node, len(it.Children))
	copy(children, it.Children)
	return &Node{
		ID:       it.ID,
		Kind:     it.Kind,
		Props:    it.Props,
		Children: children,
	}
}

// Clone is a full deep copy, including property maps.
func (it *Node) Clone() *Node {
	props := make(map[string]interface{}, len(it.Props))
	for key, value := range it.Props {
		props[key] = value
	}
	children := make([]*Node, 0, len(it.Children))
	for _, child := range it.Children {
		children = append(children, child.Clone())
	}
	return &Node{
		ID:       it.ID,
		Kind:     it.Kind,
		Props:    props,
		Children: children,
	}
}

// Contains reports whether the given identifier names this node or any of
// its descendants.
func (it *Node) Contains(id string) bool {
	if it.ID == id {
		return true
	}
	for _, child := range it.Children {
		if child.Contains(id) {
			return true
		}
	}
	return false
}

func (it *Node) size() int {
	total := 1
	for _, child := range it.Children {
		total += child.size()
	}
	return total
}
