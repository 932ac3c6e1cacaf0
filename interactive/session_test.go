package interactive

import (
	"testing"

	"github.com/appdraft/appdraft/catalog"
	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/document"
	"github.com/appdraft/appdraft/hamlet"
	"github.com/appdraft/appdraft/project"
	"github.com/appdraft/appdraft/storage"
)

func demoSession(t *testing.T) *Session {
	t.Helper()
	common.ForceHome(t.TempDir())
	t.Cleanup(func() { common.ForceHome("") })
	store, err := storage.Open()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	reg := catalog.Builtin()
	root, err := reg.DefaultInstance("Scaffold")
	if err != nil {
		t.Fatal(err)
	}
	doc := document.FromProject(project.New("demo", "demo_app", "com.example.demo", root))
	if err := store.Save("demo", doc, storage.Meta{}); err != nil {
		t.Fatal(err)
	}
	session, err := NewSession(store, reg, "demo")
	if err != nil {
		t.Fatal(err)
	}
	return session
}

func TestSessionStartsOnHomePageClean(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	session := demoSession(t)
	must.Equal("/", session.CurrentPage().Route)
	wont.True(session.Dirty())
}

func TestAddChildMarksSessionDirty(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	session := demoSession(t)
	rootID := session.CurrentPage().Roots[0].ID
	must.Nil(session.AddChild(rootID, "Text"))
	must.True(session.Dirty())
	must.Equal(1, len(session.CurrentPage().Roots[0].Children))
}

func TestAddChildHonorsContainmentRules(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	session := demoSession(t)
	rootID := session.CurrentPage().Roots[0].ID
	must.Nil(session.AddChild(rootID, "Text"))
	textID := session.CurrentPage().Roots[0].Children[0].ID
	wont.Nil(session.AddChild(textID, "Button"))
}

func TestSetPropMergesOverExistingValues(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	session := demoSession(t)
	rootID := session.CurrentPage().Roots[0].ID
	must.Nil(session.AddChild(rootID, "Text"))
	node := session.CurrentPage().Roots[0].Children[0]
	must.Nil(session.SetProp(node.ID, "text", "Greetings"))

	updated := session.CurrentPage().Roots[0].Children[0]
	must.Equal("Greetings", updated.Props["text"])
	_, kept := updated.Props["fontSize"]
	must.True(kept)
}

func TestPageNavigationByRoute(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	session := demoSession(t)
	must.Nil(session.AddPage("Profile", "/profile"))
	must.Equal("/profile", session.CurrentPage().Route)
	must.Nil(session.SelectRoute("/"))
	must.Equal("/", session.CurrentPage().Route)
	wont.Nil(session.SelectRoute("/nowhere"))
}

func TestSaveClearsDirtyFlag(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	session := demoSession(t)
	rootID := session.CurrentPage().Roots[0].ID
	must.Nil(session.AddChild(rootID, "Text"))
	must.Nil(session.Save())
	wont.True(session.Dirty())
}

func TestCommandBarTokenization(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	session := demoSession(t)
	model := NewModel(session)
	model.execute(`add Text`)
	must.Equal(1, len(session.CurrentPage().Roots[0].Children))

	model.cursor = 1
	model.rebuildRows()
	model.execute(`set text="Hello there"`)
	must.Equal("Hello there", session.CurrentPage().Roots[0].Children[0].Props["text"])
}
