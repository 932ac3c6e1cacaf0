package storage_test

import (
	"errors"
	"testing"

	"github.com/appdraft/appdraft/catalog"
	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/document"
	"github.com/appdraft/appdraft/hamlet"
	"github.com/appdraft/appdraft/project"
	"github.com/appdraft/appdraft/storage"
)

func demoDocument(t *testing.T) *document.Document {
	t.Helper()
	reg := catalog.Builtin()
	root, err := reg.DefaultInstance("Scaffold")
	if err != nil {
		t.Fatal(err)
	}
	return document.FromProject(project.New("demo", "demo_app", "com.example.demo", root))
}

func openTempStore(t *testing.T) *storage.Store {
	t.Helper()
	common.ForceHome(t.TempDir())
	t.Cleanup(func() { common.ForceHome("") })
	store, err := storage.Open()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveLoadRoundTrip(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	store := openTempStore(t)
	doc := demoDocument(t)
	must.Nil(store.Save("demo", doc, storage.Meta{Description: "example"}))
	must.True(store.Has("demo"))

	loaded, meta, err := store.Load("demo")
	must.Nil(err)
	must.Equal(doc.AppName, loaded.AppName)
	must.Equal(1, len(loaded.Screens))
	must.Equal("example", meta.Description)
	must.Equal(document.Fingerprint(doc), meta.Fingerprint)
	must.True(meta.UpdatedAt > 0)
}

func TestLoadMissingProjectFails(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	store := openTempStore(t)
	_, _, err := store.Load("ghost")
	must.True(errors.Is(err, storage.ErrProjectMissing))
}

func TestListSummarizesProjects(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	store := openTempStore(t)
	must.Nil(store.Save("alpha", demoDocument(t), storage.Meta{}))
	must.Nil(store.Save("beta", demoDocument(t), storage.Meta{RemoteID: "42"}))

	entries, err := store.List()
	must.Nil(err)
	must.Equal(2, len(entries))
	must.Equal("alpha", entries[0].Name)
	must.Equal("beta", entries[1].Name)
	must.Equal("42", entries[1].RemoteID)
	must.Equal(1, entries[0].Screens)
}

func TestDeleteIsIdempotent(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	store := openTempStore(t)
	must.Nil(store.Save("demo", demoDocument(t), storage.Meta{}))
	must.Nil(store.Delete("demo"))
	wont.True(store.Has("demo"))
	must.Nil(store.Delete("demo"))
}

func TestRenameRefusesToClobber(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	store := openTempStore(t)
	must.Nil(store.Save("one", demoDocument(t), storage.Meta{}))
	must.Nil(store.Save("two", demoDocument(t), storage.Meta{}))

	err := store.Rename("one", "two")
	must.True(errors.Is(err, storage.ErrProjectExists))

	must.Nil(store.Rename("one", "three"))
	must.True(store.Has("three"))
	_, _, err = store.Load("one")
	must.True(errors.Is(err, storage.ErrProjectMissing))
}
