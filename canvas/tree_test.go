package canvas_test

import (
	"errors"
	"testing"

	"github.com/appdraft/appdraft/canvas"
	"github.com/appdraft/appdraft/catalog"
	"github.com/appdraft/appdraft/hamlet"
)

func errorsIs(err, target error) bool {
	return errors.Is(err, target)
}

func scaffoldWith(t *testing.T, reg *catalog.Registry, kinds ...string) []*canvas.Node {
	t.Helper()
	root, err := reg.DefaultInstance("Scaffold")
	if err != nil {
		t.Fatal(err)
	}
	roots := []*canvas.Node{root}
	for _, kind := range kinds {
		child, err := reg.DefaultInstance(kind)
		if err != nil {
			t.Fatal(err)
		}
		roots, err = canvas.Insert(roots, root.ID, child, reg)
		if err != nil {
			t.Fatal(err)
		}
	}
	return roots
}

func TestFindIsDepthFirstParentBeforeChildren(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	reg := catalog.Builtin()
	roots := scaffoldWith(t, reg, "Column", "Text")

	found, ok := canvas.Find(roots, roots[0].ID)
	must.True(ok)
	must.Equal("Scaffold", found.Kind)

	_, ok = canvas.Find(roots, "no-such-id")
	wont.True(ok)
}

func TestInsertAppendsToEndOfChildSequence(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	reg := catalog.Builtin()
	roots := scaffoldWith(t, reg, "Row", "Column")

	must.Equal(2, len(roots[0].Children))
	must.Equal("Row", roots[0].Children[0].Kind)
	must.Equal("Column", roots[0].Children[1].Kind)
}

func TestInsertUnknownParentFails(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	reg := catalog.Builtin()
	roots := scaffoldWith(t, reg)
	child, _ := reg.DefaultInstance("Text")

	_, err := canvas.Insert(roots, "missing", child, reg)
	must.True(errorsIs(err, canvas.ErrParentNotFound))
}

func TestInsertLeavesOriginalTreeUntouched(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	reg := catalog.Builtin()
	roots := scaffoldWith(t, reg)
	child, _ := reg.DefaultInstance("Text")

	updated, err := canvas.Insert(roots, roots[0].ID, child, reg)
	must.Nil(err)
	must.Equal(0, len(roots[0].Children))
	must.Equal(1, len(updated[0].Children))
}

func TestDefaultTextChildCarriesHelloWorld(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	reg := catalog.Builtin()
	roots := scaffoldWith(t, reg, "Text")

	must.Equal(1, len(roots[0].Children))
	child := roots[0].Children[0]
	must.Equal("Text", child.Kind)
	must.Equal("Hello World", child.Props["text"])
}

func TestSetPropsReplacesWholePropertyMap(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	reg := catalog.Builtin()
	roots := scaffoldWith(t, reg, "Text")
	id := roots[0].Children[0].ID

	wanted := map[string]interface{}{"text": "Bye"}
	updated, err := canvas.SetProps(roots, id, wanted)
	must.Nil(err)

	found, ok := canvas.Find(updated, id)
	must.True(ok)
	must.Equal(wanted, found.Props)
	// Replacement, not merge: the defaults are gone.
	_, kept := found.Props["fontSize"]
	wont.True(kept)

	// The old tree still carries the old values.
	before, _ := canvas.Find(roots, id)
	must.Equal("Hello World", before.Props["text"])
}

func TestSetPropsOnMissingNodeIsHardFailure(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	reg := catalog.Builtin()
	roots := scaffoldWith(t, reg)

	_, err := canvas.SetProps(roots, "missing", map[string]interface{}{})
	must.True(errorsIs(err, canvas.ErrNodeNotFound))
}

func TestDeleteRemovesWholeSubtree(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	reg := catalog.Builtin()
	roots := scaffoldWith(t, reg, "Column")
	column := roots[0].Children[0]
	text, _ := reg.DefaultInstance("Text")
	roots, err := canvas.Insert(roots, column.ID, text, reg)
	must.Nil(err)

	updated := canvas.Delete(roots, column.ID)
	must.Equal(0, len(updated[0].Children))
	_, ok := canvas.Find(updated, text.ID)
	wont.True(ok)
}

func TestDeleteMissingIdIsIdempotentNoop(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	reg := catalog.Builtin()
	roots := scaffoldWith(t, reg, "Text")

	updated := canvas.Delete(roots, "never-existed")
	must.Equal(roots, updated)
}

func TestMoveReattachesUnderNewParent(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	reg := catalog.Builtin()
	roots := scaffoldWith(t, reg, "Row", "Column")
	row := roots[0].Children[0]
	column := roots[0].Children[1]
	text, _ := reg.DefaultInstance("Text")
	roots, err := canvas.Insert(roots, row.ID, text, reg)
	must.Nil(err)

	moved, err := canvas.Move(roots, text.ID, column.ID, reg)
	must.Nil(err)
	freshRow, _ := canvas.Find(moved, row.ID)
	freshColumn, _ := canvas.Find(moved, column.ID)
	must.Equal(0, len(freshRow.Children))
	must.Equal(1, len(freshColumn.Children))
	must.Equal(text.ID, freshColumn.Children[0].ID)
}

func TestMoveUnderOwnDescendantIsRefused(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	reg := catalog.Builtin()
	roots := scaffoldWith(t, reg, "Column")
	column := roots[0].Children[0]
	inner, _ := reg.DefaultInstance("Container")
	roots, err := canvas.Insert(roots, column.ID, inner, reg)
	must.Nil(err)

	_, err = canvas.Move(roots, column.ID, inner.ID, reg)
	wont.Nil(err)
}

func TestSizeCountsEveryNode(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	reg := catalog.Builtin()
	roots := scaffoldWith(t, reg, "Row", "Text")
	must.Equal(3, canvas.Size(roots))
}

func TestRenderShowsKindsWithGlyphs(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	reg := catalog.Builtin()
	roots := scaffoldWith(t, reg, "Text")
	drawn := canvas.Render(roots)
	must.Match("Scaffold", drawn)
	must.Match("└── Text", drawn)
	must.Match("text=Hello World", drawn)
}
