package canvas

import (
	"errors"
	"fmt"
)

var ErrContainment = errors.New("containment violation")

// Capability is the slice of the widget registry the containment rules
// need. The registry is injected here instead of being reached for as a
// global, so the tree stays testable on its own.
type Capability interface {
	ContainerKind(kind string) bool
}

// rule is one override row: parent kind, child kind (or "*" for any), and
// the verdict. Rows are checked in order before the declared capability of
// the parent kind applies.
type rule struct {
	parent string
	child  string
	allow  bool
}

const anyKind = "*"

// Overrides on top of the declared capability flags. ListView accepts item
// injection no matter what its flag says; AppBar is self-contained chrome
// and accepts nothing; pure leaf content and input kinds are never parents.
var containmentRules = []rule{
	{"AppBar", anyKind, false},
	{"ListView", anyKind, true},
	{"Text", anyKind, false},
	{"Button", anyKind, false},
	{"TextField", anyKind, false},
	{"Icon", anyKind, false},
	{"Image", anyKind, false},
	{"SizedBox", anyKind, false},
}

// CanContain decides whether a child of the given kind may be placed under
// a parent of the given kind. A nil result allows the placement; otherwise
// the error names both kinds.
func CanContain(caps Capability, parentKind, childKind string) error {
	for _, row := range containmentRules {
		if row.parent != parentKind {
			continue
		}
		if row.child != anyKind && row.child != childKind {
			continue
		}
		if row.allow {
			return nil
		}
		return violation(parentKind, childKind)
	}
	if caps != nil && caps.ContainerKind(parentKind) {
		return nil
	}
	return violation(parentKind, childKind)
}

func violation(parentKind, childKind string) error {
	return fmt.Errorf("%w: %q cannot contain %q", ErrContainment, parentKind, childKind)
}
