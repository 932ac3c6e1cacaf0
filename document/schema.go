// Package document is the serialization bridge between in-memory projects
// and the JSON document the generation backend consumes.
package document

import (
	"fmt"
	"regexp"
	"strings"
)

// Document is the top-level wire format.
type Document struct {
	AppName     string   `json:"app_name"`
	PackageName string   `json:"package_name"`
	Screens     []Screen `json:"screens"`
}

type Screen struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Route      string      `json:"route"`
	IsHome     bool        `json:"is_home"`
	Components []Component `json:"components"`
}

// Component is the wire shape of one tree node. Node identifiers are
// implementation internal and deliberately absent here.
type Component struct {
	Type     string                 `json:"type"`
	Props    map[string]interface{} `json:"props"`
	Children []Component            `json:"children"`
}

var (
	namePattern    = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
	packagePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)+$`)
	routePattern   = regexp.MustCompile(`^/[a-z0-9_/-]*$`)
)

// Problem is one field-level schema complaint.
type Problem struct {
	Field  string
	Detail string
}

func (it Problem) String() string {
	return fmt.Sprintf("%s: %s", it.Field, it.Detail)
}

// SchemaError aggregates every problem found in a document. Validation is
// all or nothing; a failing document never yields a partial project.
type SchemaError struct {
	Problems []Problem
}

func (it *SchemaError) Error() string {
	parts := make([]string, 0, len(it.Problems))
	for _, problem := range it.Problems {
		parts = append(parts, problem.String())
	}
	return fmt.Sprintf("document has %d problem(s): %s", len(it.Problems), strings.Join(parts, "; "))
}

func (it *SchemaError) add(field, form string, details ...interface{}) {
	it.Problems = append(it.Problems, Problem{Field: field, Detail: fmt.Sprintf(form, details...)})
}

func (it *SchemaError) orNil() error {
	if len(it.Problems) == 0 {
		return nil
	}
	return it
}

// KindChecker is the slice of the widget registry validation needs.
type KindChecker interface {
	Known(kind string) bool
}

// Validate checks the structural rules of the schema: identifier patterns,
// required fields, route shape and uniqueness, and that every component
// kind is registered. The home-screen count is not a structural rule; see
// ExportChecks.
func Validate(doc *Document, kinds KindChecker) error {
	failed := &SchemaError{}
	if doc == nil {
		failed.add("document", "is missing")
		return failed
	}
	if !namePattern.MatchString(doc.AppName) {
		failed.add("app_name", "must match [a-z_][a-z0-9_]*, got %q", doc.AppName)
	}
	if !packagePattern.MatchString(doc.PackageName) {
		failed.add("package_name", "must be a dotted identifier like com.example.app, got %q", doc.PackageName)
	}
	if len(doc.Screens) == 0 {
		failed.add("screens", "at least one screen is required")
	}
	seen := make(map[string]int)
	for at, screen := range doc.Screens {
		field := fmt.Sprintf("screens[%d]", at)
		if !namePattern.MatchString(screen.ID) {
			failed.add(field+".id", "must match [a-z_][a-z0-9_]*, got %q", screen.ID)
		}
		if len(strings.TrimSpace(screen.Name)) == 0 {
			failed.add(field+".name", "is required")
		}
		if !routePattern.MatchString(screen.Route) {
			failed.add(field+".route", "must start with / and use [a-z0-9_/-], got %q", screen.Route)
		}
		if previous, ok := seen[screen.Route]; ok {
			failed.add(field+".route", "duplicates screens[%d].route %q", previous, screen.Route)
		} else {
			seen[screen.Route] = at
		}
		for no, component := range screen.Components {
			validateComponent(failed, fmt.Sprintf("%s.components[%d]", field, no), component, kinds)
		}
	}
	return failed.orNil()
}

func validateComponent(failed *SchemaError, field string, component Component, kinds KindChecker) {
	if len(component.Type) == 0 {
		failed.add(field+".type", "is required")
	} else if kinds != nil && !kinds.Known(component.Type) {
		failed.add(field+".type", "unknown widget kind %q", component.Type)
	}
	for no, child := range component.Children {
		validateComponent(failed, fmt.Sprintf("%s.children[%d]", field, no), child, kinds)
	}
}

// ExportChecks reports advisory problems that matter to the backend but do
// not make a document malformed: the start screen expectation.
func ExportChecks(doc *Document) []Problem {
	homes := 0
	for _, screen := range doc.Screens {
		if screen.IsHome {
			homes += 1
		}
	}
	switch homes {
	case 1:
		return nil
	case 0:
		return []Problem{{Field: "screens", Detail: "no screen is marked as home"}}
	default:
		return []Problem{{Field: "screens", Detail: fmt.Sprintf("%d screens are marked as home", homes)}}
	}
}
