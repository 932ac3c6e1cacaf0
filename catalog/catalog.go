// Package catalog is the static widget registry: every widget kind the
// editor can place, its editable properties, and whether it may own
// children. The registry is built once at startup and injected into tree
// operations as an explicit dependency.
package catalog

import (
	"errors"
	"fmt"

	"github.com/appdraft/appdraft/canvas"
	"github.com/google/uuid"
)

var ErrUnknownKind = errors.New("unknown widget kind")

type Category string

const (
	Layout  Category = "layout"
	Content Category = "content"
	Input   Category = "input"
)

var Categories = []Category{Layout, Content, Input}

type ValueType string

const (
	StringValue  ValueType = "string"
	NumberValue  ValueType = "number"
	BooleanValue ValueType = "boolean"
	ColorValue   ValueType = "color"
	EnumValue    ValueType = "enum"
	ObjectValue  ValueType = "object"
)

// Property describes one editable property of a widget kind. Options is
// only meaningful for enum properties.
type Property struct {
	Name    string
	Label   string
	Type    ValueType
	Default interface{}
	Options []string
}

// Definition is the immutable capability profile of one widget kind.
type Definition struct {
	Kind            string
	Name            string
	Category        Category
	CanHaveChildren bool
	Properties      []Property
}

func (it *Definition) Property(name string) (*Property, bool) {
	for at := range it.Properties {
		if it.Properties[at].Name == name {
			return &it.Properties[at], true
		}
	}
	return nil, false
}

type Registry struct {
	kinds map[string]*Definition
	order []string
}

func newRegistry(definitions ...*Definition) *Registry {
	result := &Registry{kinds: make(map[string]*Definition, len(definitions))}
	for _, entry := range definitions {
		result.kinds[entry.Kind] = entry
		result.order = append(result.order, entry.Kind)
	}
	return result
}

func (it *Registry) Lookup(kind string) (*Definition, bool) {
	found, ok := it.kinds[kind]
	return found, ok
}

func (it *Registry) Known(kind string) bool {
	_, ok := it.kinds[kind]
	return ok
}

// ContainerKind satisfies canvas.Capability: the declared base rule for
// containment, before kind-specific overrides.
func (it *Registry) ContainerKind(kind string) bool {
	found, ok := it.kinds[kind]
	return ok && found.CanHaveChildren
}

// Kinds lists every registered kind in palette order.
func (it *Registry) Kinds() []string {
	result := make([]string, len(it.order))
	copy(result, it.order)
	return result
}

// ByCategory groups the palette, keeping registration order inside each
// category.
func (it *Registry) ByCategory() map[Category][]*Definition {
	result := make(map[Category][]*Definition)
	for _, kind := range it.order {
		entry := it.kinds[kind]
		result[entry.Category] = append(result[entry.Category], entry)
	}
	return result
}

// DefaultInstance builds a fresh node of the kind: a new identifier, the
// registered default property values, and no children. Identifiers are
// unique for the lifetime of the session, never recycled.
func (it *Registry) DefaultInstance(kind string) (*canvas.Node, error) {
	entry, ok := it.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	props := make(map[string]interface{}, len(entry.Properties))
	for _, property := range entry.Properties {
		if property.Default != nil {
			props[property.Name] = property.Default
		}
	}
	return &canvas.Node{
		ID:    uuid.NewString(),
		Kind:  kind,
		Props: props,
	}, nil
}
