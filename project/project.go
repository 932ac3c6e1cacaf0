package project

import (
	"github.com/appdraft/appdraft/canvas"
)

// Project is the unit the editor holds in memory and the store persists.
// RemoteID is empty until the backend has accepted the project once.
type Project struct {
	Name        string
	Description string
	AppName     string
	PackageName string
	RemoteID    string
	Pages       []*Page
}

// New builds a project with a single home page at "/" rooted in a Scaffold
// equivalent provided by the caller.
func New(name, appName, packageName string, root *canvas.Node) *Project {
	home := NewPage("Home", "/", true)
	if root != nil {
		home.Roots = []*canvas.Node{root}
	}
	return &Project{
		Name:        name,
		AppName:     appName,
		PackageName: packageName,
		Pages:       []*Page{home},
	}
}

// FallbackPage picks the page the view should select after the given page
// disappeared: the first remaining one.
func FallbackPage(pages []*Page) (*Page, bool) {
	if len(pages) == 0 {
		return nil, false
	}
	return pages[0], true
}
