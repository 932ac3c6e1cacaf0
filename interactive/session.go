package interactive

import (
	"fmt"

	"github.com/appdraft/appdraft/canvas"
	"github.com/appdraft/appdraft/catalog"
	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/document"
	"github.com/appdraft/appdraft/journal"
	"github.com/appdraft/appdraft/project"
	"github.com/appdraft/appdraft/storage"
)

// Session is the editing state behind the TUI: one project, one selected
// page, and the dirty flag deciding whether quitting saves.
type Session struct {
	store  *storage.Store
	reg    *catalog.Registry
	name   string
	meta   storage.Meta
	proj   *project.Project
	pageAt int
	dirty  bool
}

func NewSession(store *storage.Store, reg *catalog.Registry, name string) (*Session, error) {
	doc, meta, err := store.Load(name)
	if err != nil {
		return nil, err
	}
	proj, err := document.ToProject(name, doc, reg)
	if err != nil {
		return nil, err
	}
	proj.Description = meta.Description
	proj.RemoteID = meta.RemoteID
	return &Session{store: store, reg: reg, name: name, meta: meta, proj: proj}, nil
}

func (it *Session) CurrentPage() *project.Page {
	if it.pageAt >= len(it.proj.Pages) {
		it.pageAt = 0
	}
	return it.proj.Pages[it.pageAt]
}

func (it *Session) replaceRoots(roots []*canvas.Node) error {
	pages, err := project.ReplaceRoots(it.proj.Pages, it.CurrentPage().ID, roots)
	if err != nil {
		return err
	}
	it.proj.Pages = pages
	it.dirty = true
	return nil
}

// AddChild places a fresh default instance of the kind under the parent.
func (it *Session) AddChild(parentID, kind string) error {
	child, err := it.reg.DefaultInstance(kind)
	if err != nil {
		return err
	}
	roots, err := canvas.Insert(it.CurrentPage().Roots, parentID, child, it.reg)
	if err != nil {
		return err
	}
	return it.replaceRoots(roots)
}

// SetProp type-checks one property edit and applies it merged over the
// node's current properties, so a single-field edit drops nothing.
func (it *Session) SetProp(id, name, text string) error {
	node, ok := canvas.Find(it.CurrentPage().Roots, id)
	if !ok {
		return fmt.Errorf("node %q: %w", id, canvas.ErrNodeNotFound)
	}
	entry, ok := it.reg.Lookup(node.Kind)
	if !ok {
		return fmt.Errorf("%w: %q", catalog.ErrUnknownKind, node.Kind)
	}
	value, err := catalog.ParseValue(entry, name, text)
	if err != nil {
		return err
	}
	merged := make(map[string]interface{}, len(node.Props)+1)
	for key, old := range node.Props {
		merged[key] = old
	}
	merged[name] = value
	roots, err := canvas.SetProps(it.CurrentPage().Roots, id, merged)
	if err != nil {
		return err
	}
	return it.replaceRoots(roots)
}

func (it *Session) DeleteNode(id string) {
	roots := canvas.Delete(it.CurrentPage().Roots, id)
	common.Error("roots", it.replaceRoots(roots))
}

func (it *Session) MoveNode(id, parentID string) error {
	roots, err := canvas.Move(it.CurrentPage().Roots, id, parentID, it.reg)
	if err != nil {
		return err
	}
	return it.replaceRoots(roots)
}

// SelectRoute switches to the page owning the route.
func (it *Session) SelectRoute(route string) error {
	for at, page := range it.proj.Pages {
		if page.Route == route {
			it.pageAt = at
			return nil
		}
	}
	return fmt.Errorf("route %q: %w", route, project.ErrPageNotFound)
}

// AddPage creates and selects a new page.
func (it *Session) AddPage(name, route string) error {
	pages, err := project.AddPage(it.proj.Pages, project.NewPage(name, route, false))
	if err != nil {
		return err
	}
	it.proj.Pages = pages
	it.pageAt = len(pages) - 1
	it.dirty = true
	return nil
}

func (it *Session) Save() error {
	err := it.store.Save(it.name, document.FromProject(it.proj), it.meta)
	if err != nil {
		return err
	}
	it.dirty = false
	common.Error("journal", journal.Post(it.name, "edit-save", "saved from interactive editor"))
	return nil
}

func (it *Session) Dirty() bool {
	return it.dirty
}
