package canvas

import (
	"errors"
	"fmt"
)

var (
	ErrParentNotFound = errors.New("parent not found")
	ErrNodeNotFound   = errors.New("node not found")
)

// Find locates a node by identifier, depth first, parents before children.
// Identifiers are expected to be unique; with duplicates the first one met
// in traversal order wins.
func Find(roots []*Node, id string) (*Node, bool) {
	for _, root := range roots {
		if found, ok := findWithin(root, id); ok {
			return found, true
		}
	}
	return nil, false
}

func findWithin(node *Node, id string) (*Node, bool) {
	if node.ID == id {
		return node, true
	}
	for _, child := range node.Children {
		if found, ok := findWithin(child, id); ok {
			return found, true
		}
	}
	return nil, false
}

// Insert appends the child to the end of the parent's child sequence and
// returns new roots. The containment rules are consulted first; rejection
// leaves the tree untouched.
func Insert(roots []*Node, parentID string, child *Node, caps Capability) ([]*Node, error) {
	parent, ok := Find(roots, parentID)
	if !ok {
		return roots, fmt.Errorf("insert under %q: %w", parentID, ErrParentNotFound)
	}
	if err := CanContain(caps, parent.Kind, child.Kind); err != nil {
		return roots, err
	}
	result := make([]*Node, 0, len(roots))
	for _, root := range roots {
		updated, _ := insertWithin(root, parentID, child)
		result = append(result, updated)
	}
	return result, nil
}

func insertWithin(node *Node, parentID string, child *Node) (*Node, bool) {
	if node.ID == parentID {
		fresh := node.shallow()
		fresh.Children = append(fresh.Children, child)
		return fresh, true
	}
	for at, candidate := range node.Children {
		if updated, ok := insertWithin(candidate, parentID, child); ok {
			fresh := node.shallow()
			fresh.Children[at] = updated
			return fresh, true
		}
	}
	return node, false
}

// SetProps replaces the full property map of the node. It is a replacement,
// not a merge; callers wanting partial updates merge before calling.
func SetProps(roots []*Node, id string, props map[string]interface{}) ([]*Node, error) {
	if _, ok := Find(roots, id); !ok {
		return roots, fmt.Errorf("update of %q: %w", id, ErrNodeNotFound)
	}
	result := make([]*Node, 0, len(roots))
	for _, root := range roots {
		updated, _ := setPropsWithin(root, id, props)
		result = append(result, updated)
	}
	return result, nil
}

func setPropsWithin(node *Node, id string, props map[string]interface{}) (*Node, bool) {
	if node.ID == id {
		fresh := node.shallow()
		fresh.Props = props
		return fresh, true
	}
	for at, candidate := range node.Children {
		if updated, ok := setPropsWithin(candidate, id, props); ok {
			fresh := node.shallow()
			fresh.Children[at] = updated
			return fresh, true
		}
	}
	return node, false
}

// Delete removes the node and its whole subtree. A missing identifier is a
// no-op returning the roots unchanged, so repeated deletes are harmless.
func Delete(roots []*Node, id string) []*Node {
	result := make([]*Node, 0, len(roots))
	changed := false
	for _, root := range roots {
		if root.ID == id {
			changed = true
			continue
		}
		updated, ok := deleteWithin(root, id)
		changed = changed || ok
		result = append(result, updated)
	}
	if !changed {
		return roots
	}
	return result
}

func deleteWithin(node *Node, id string) (*Node, bool) {
	for at, candidate := range node.Children {
		if candidate.ID == id {
			fresh := node.shallow()
			fresh.Children = append(fresh.Children[:at], fresh.Children[at+1:]...)
			return fresh, true
		}
		if updated, ok := deleteWithin(candidate, id); ok {
			fresh := node.shallow()
			fresh.Children[at] = updated
			return fresh, true
		}
	}
	return node, false
}

// Move detaches a node and appends it under another parent. Moving a node
// under itself or its own descendant is refused, as is any placement the
// containment rules reject.
func Move(roots []*Node, id, parentID string, caps Capability) ([]*Node, error) {
	node, ok := Find(roots, id)
	if !ok {
		return roots, fmt.Errorf("move of %q: %w", id, ErrNodeNotFound)
	}
	if node.Contains(parentID) {
		return roots, fmt.Errorf("cannot move %q under its own subtree", node.Kind)
	}
	parent, ok := Find(roots, parentID)
	if !ok {
		return roots, fmt.Errorf("move under %q: %w", parentID, ErrParentNotFound)
	}
	if err := CanContain(caps, parent.Kind, node.Kind); err != nil {
		return roots, err
	}
	detached := Delete(roots, id)
	return Insert(detached, parentID, node, caps)
}

// Walk visits every node depth first, parents before children.
func Walk(roots []*Node, visit func(node *Node, depth int)) {
	for _, root := range roots {
		walkWithin(root, 0, visit)
	}
}

func walkWithin(node *Node, depth int, visit func(node *Node, depth int)) {
	visit(node, depth)
	for _, child := range node.Children {
		walkWithin(child, depth+1, visit)
	}
}

// Size counts every node in all roots.
func Size(roots []*Node) int {
	total := 0
	for _, root := range roots {
		total += root.size()
	}
	return total
}
