package draft_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/appdraft/appdraft/draft"
	"github.com/appdraft/appdraft/hamlet"
)

func TestManifestRoundTrip(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	filename := filepath.Join(t.TempDir(), draft.ManifestName)
	wanted := &draft.Manifest{
		Project:     "demo",
		AppName:     "demo_app",
		PackageName: "com.example.demo",
		Endpoint:    "https://forge.example.com",
	}
	must.Nil(draft.Save(filename, wanted))

	loaded, err := draft.Load(filename)
	must.Nil(err)
	must.Equal(wanted, loaded)
}

func TestDiscoverWalksUpward(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	top := t.TempDir()
	nested := filepath.Join(top, "screens", "drafts")
	must.Nil(os.MkdirAll(nested, 0o750))
	must.Nil(draft.Save(filepath.Join(top, draft.ManifestName), &draft.Manifest{Project: "demo"}))

	found := draft.Discover(nested)
	must.True(found != nil)
	must.Equal("demo", found.Project)
}

func TestDiscoverWithoutManifestIsNil(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Nil(draft.Discover(t.TempDir()))
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, wont := hamlet.Specifications(t)

	filename := filepath.Join(t.TempDir(), draft.ManifestName)
	must := os.WriteFile(filename, []byte("project: demo\ntheme: dark\n"), 0o644)
	if must != nil {
		t.Fatal(must)
	}
	_, err := draft.Load(filename)
	wont.Nil(err)
}
