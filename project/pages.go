// Package project models the persisted unit: an ordered collection of
// routed pages, each owning one component tree. Page operations follow the
// same copy-on-write discipline as the canvas package.
package project

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/appdraft/appdraft/canvas"
	"github.com/google/uuid"
)

var (
	ErrInvalidRoute   = errors.New("invalid route")
	ErrDuplicateRoute = errors.New("duplicate route")
	ErrLastPage       = errors.New("cannot delete the last page")
	ErrPageNotFound   = errors.New("page not found")
)

var (
	routePattern = regexp.MustCompile(`^/[a-z0-9_/-]*$`)
	slugStrip    = regexp.MustCompile(`[^a-z0-9_]+`)
)

// Page is one screen of the target application.
type Page struct {
	ID    string
	Slug  string
	Name  string
	Route string
	Home  bool
	Roots []*canvas.Node
}

func (it *Page) shallow() *Page {
	fresh := *it
	return &fresh
}

// NewPage allocates a page with a fresh identifier and a slug derived from
// the display name.
func NewPage(name, route string, home bool) *Page {
	return &Page{
		ID:    uuid.NewString(),
		Slug:  Slugify(name),
		Name:  name,
		Route: route,
		Home:  home,
	}
}

// Slugify turns a display name into a screen identifier the document
// schema accepts: lowercase, [a-z_][a-z0-9_]*.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = slugStrip.ReplaceAllString(slug, "")
	if len(slug) == 0 || (slug[0] >= '0' && slug[0] <= '9') {
		slug = "screen_" + slug
	}
	return slug
}

func ValidRoute(route string) bool {
	return routePattern.MatchString(route)
}

// AddPage appends a page. The route must validate and must not collide
// with any existing page, case sensitive.
func AddPage(pages []*Page, page *Page) ([]*Page, error) {
	if !ValidRoute(page.Route) {
		return pages, fmt.Errorf("%w: %q", ErrInvalidRoute, page.Route)
	}
	for _, existing := range pages {
		if existing.Route == page.Route {
			return pages, fmt.Errorf("%w: %q", ErrDuplicateRoute, page.Route)
		}
	}
	result := make([]*Page, 0, len(pages)+1)
	result = append(result, pages...)
	return append(result, page), nil
}

// DeletePage removes the page and its whole tree. A project always keeps
// at least one page; a missing identifier is a harmless no-op.
func DeletePage(pages []*Page, id string) ([]*Page, error) {
	if _, ok := FindPage(pages, id); !ok {
		return pages, nil
	}
	if len(pages) == 1 {
		return pages, ErrLastPage
	}
	result := make([]*Page, 0, len(pages)-1)
	for _, page := range pages {
		if page.ID != id {
			result = append(result, page)
		}
	}
	return result, nil
}

// PageFields carries a partial page update; nil fields stay untouched.
type PageFields struct {
	Name  *string
	Route *string
	Home  *bool
}

// UpdatePage applies partial fields. A route change re-validates against
// every other page's route.
func UpdatePage(pages []*Page, id string, fields PageFields) ([]*Page, error) {
	at := -1
	for index, page := range pages {
		if page.ID == id {
			at = index
			break
		}
	}
	if at < 0 {
		return pages, fmt.Errorf("update of %q: %w", id, ErrPageNotFound)
	}
	if fields.Route != nil {
		if !ValidRoute(*fields.Route) {
			return pages, fmt.Errorf("%w: %q", ErrInvalidRoute, *fields.Route)
		}
		for index, page := range pages {
			if index != at && page.Route == *fields.Route {
				return pages, fmt.Errorf("%w: %q", ErrDuplicateRoute, *fields.Route)
			}
		}
	}
	fresh := pages[at].shallow()
	if fields.Name != nil {
		fresh.Name = *fields.Name
		fresh.Slug = Slugify(*fields.Name)
	}
	if fields.Route != nil {
		fresh.Route = *fields.Route
	}
	if fields.Home != nil {
		fresh.Home = *fields.Home
	}
	result := make([]*Page, len(pages))
	copy(result, pages)
	result[at] = fresh
	return result, nil
}

// ReplaceRoots swaps one page's component tree for an edited one.
func ReplaceRoots(pages []*Page, id string, roots []*canvas.Node) ([]*Page, error) {
	at := -1
	for index, page := range pages {
		if page.ID == id {
			at = index
			break
		}
	}
	if at < 0 {
		return pages, fmt.Errorf("roots of %q: %w", id, ErrPageNotFound)
	}
	fresh := pages[at].shallow()
	fresh.Roots = roots
	result := make([]*Page, len(pages))
	copy(result, pages)
	result[at] = fresh
	return result, nil
}

func FindPage(pages []*Page, id string) (*Page, bool) {
	for _, page := range pages {
		if page.ID == id {
			return page, true
		}
	}
	return nil, false
}

func PageByRoute(pages []*Page, route string) (*Page, bool) {
	for _, page := range pages {
		if page.Route == route {
			return page, true
		}
	}
	return nil, false
}

// HomeCount reports how many pages are flagged home. Exactly one is the
// correctness expectation; the model keeps it advisory and callers warn.
func HomeCount(pages []*Page) int {
	count := 0
	for _, page := range pages {
		if page.Home {
			count += 1
		}
	}
	return count
}
