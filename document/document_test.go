package document_test

import (
	"strings"
	"testing"

	"github.com/appdraft/appdraft/canvas"
	"github.com/appdraft/appdraft/catalog"
	"github.com/appdraft/appdraft/document"
	"github.com/appdraft/appdraft/hamlet"
	"github.com/appdraft/appdraft/project"
	"github.com/google/go-cmp/cmp"
)

func nestedProject(t *testing.T) *project.Project {
	t.Helper()
	reg := catalog.Builtin()
	build := func(kind string) *canvas.Node {
		node, err := reg.DefaultInstance(kind)
		if err != nil {
			t.Fatal(err)
		}
		return node
	}
	// Three nested containers, each holding one text leaf.
	outer, middle, inner := build("Container"), build("Container"), build("Container")
	for at, holder := range []*canvas.Node{outer, middle, inner} {
		leaf := build("Text")
		leaf.Props["text"] = []string{"alpha", "beta", "gamma"}[at]
		holder.Children = append(holder.Children, leaf)
	}
	middle.Children = append(middle.Children, inner)
	outer.Children = append(outer.Children, middle)

	result := project.New("demo", "demo_app", "com.example.demo", build("Scaffold"))
	result.Pages[0].Roots[0].Children = []*canvas.Node{outer}
	return result
}

func TestRoundTripPreservesShapeRoutesAndValues(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	reg := catalog.Builtin()
	original := nestedProject(t)

	doc := document.FromProject(original)
	blob, err := document.Encode(doc)
	must.Nil(err)
	parsed, err := document.Decode(blob)
	must.Nil(err)

	rebuilt, err := document.ToProject("demo", parsed, reg)
	must.Nil(err)

	must.Equal(len(original.Pages), len(rebuilt.Pages))
	must.Equal(original.Pages[0].Route, rebuilt.Pages[0].Route)
	must.Equal(original.AppName, rebuilt.AppName)
	must.Equal(original.PackageName, rebuilt.PackageName)

	// Identifiers are regenerated on reload; compare the documents, which
	// carry kind, props, and child order but no ids.
	again := document.FromProject(rebuilt)
	if diff := cmp.Diff(doc, again); diff != "" {
		t.Errorf("document changed across round trip:\n%s", diff)
	}

	// Nesting depth of the container chain survives: Scaffold, then three
	// Containers each holding a Text.
	node := rebuilt.Pages[0].Roots[0].Children[0]
	texts := []string{}
	for depth := 0; depth < 3; depth++ {
		must.Equal("Container", node.Kind)
		texts = append(texts, node.Children[0].Props["text"].(string))
		if depth < 2 {
			node = node.Children[1]
		}
	}
	must.Equal([]string{"alpha", "beta", "gamma"}, texts)
}

func TestValidateCollectsFieldLevelProblems(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	reg := catalog.Builtin()
	doc := &document.Document{
		AppName:     "Demo App",
		PackageName: "demo",
		Screens: []document.Screen{
			{ID: "Home!", Name: "", Route: "profile", Components: []document.Component{{Type: "Carousel"}}},
			{ID: "other", Name: "Other", Route: "profile"},
		},
	}
	err := document.Validate(doc, reg)
	wont.Nil(err)
	failed, ok := err.(*document.SchemaError)
	must.True(ok)

	fields := []string{}
	for _, problem := range failed.Problems {
		fields = append(fields, problem.Field)
	}
	joined := strings.Join(fields, " ")
	must.Match("app_name", joined)
	must.Match("package_name", joined)
	must.Match(`screens\[0\].id`, joined)
	must.Match(`screens\[0\].name`, joined)
	must.Match(`screens\[0\].route`, joined)
	must.Match(`screens\[0\].components\[0\].type`, joined)
	must.Match(`screens\[1\].route`, joined)
}

func TestToProjectNeverReturnsPartialResult(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	reg := catalog.Builtin()
	doc := &document.Document{
		AppName:     "demo_app",
		PackageName: "com.example.demo",
		Screens: []document.Screen{
			{ID: "home", Name: "Home", Route: "/", IsHome: true,
				Components: []document.Component{{Type: "NoSuchWidget"}}},
		},
	}
	rebuilt, err := document.ToProject("demo", doc, reg)
	wont.Nil(err)
	must.Nil(rebuilt)
}

func TestToProjectRejectsMissingDocument(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	rebuilt, err := document.ToProject("demo", nil, catalog.Builtin())
	wont.Nil(err)
	must.Nil(rebuilt)
	failed, ok := err.(*document.SchemaError)
	must.True(ok)
	must.Match("document", failed.Error())
}

func TestDecodeReportsDamageAsSchemaError(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	_, err := document.Decode([]byte(`{"app_name": 42}`))
	wont.Nil(err)
	_, ok := err.(*document.SchemaError)
	must.True(ok)

	_, err = document.Decode([]byte(`not json at all`))
	wont.Nil(err)
}

func TestExportChecksWatchTheHomeScreen(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	doc := document.FromProject(nestedProject(t))
	must.Equal(0, len(document.ExportChecks(doc)))

	doc.Screens[0].IsHome = false
	problems := document.ExportChecks(doc)
	must.Equal(1, len(problems))
	must.Match("no screen is marked as home", problems[0].Detail)
}

func TestFingerprintTracksContent(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	doc := document.FromProject(nestedProject(t))
	first := document.Fingerprint(doc)
	second := document.Fingerprint(doc)
	must.Equal(first, second)
	must.Equal(16, len(first))

	doc.AppName = "other_app"
	wont.Equal(first, document.Fingerprint(doc))
}
