package set_test

import (
	"testing"

	"github.com/appdraft/appdraft/hamlet"
	"github.com/appdraft/appdraft/set"
)

func TestKeysComeBackSorted(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	source := map[string]int{"zeta": 1, "alpha": 2, "mid": 3}
	must.Equal([]string{"alpha", "mid", "zeta"}, set.Keys(source))
}

func TestMembership(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	values := []string{"Text", "Button", "Row"}
	must.True(set.Member("Button", values))
	wont.True(set.Member("Chart", values))
}
