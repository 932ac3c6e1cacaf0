package document

import (
	"github.com/appdraft/appdraft/canvas"
	"github.com/appdraft/appdraft/project"
	"github.com/google/uuid"
)

// FromProject projects the whole page collection into the wire document.
// The conversion is loss free for kinds, properties, child order, and
// structural shape; node identifiers stay behind.
func FromProject(source *project.Project) *Document {
	screens := make([]Screen, 0, len(source.Pages))
	for _, page := range source.Pages {
		screens = append(screens, Screen{
			ID:         page.Slug,
			Name:       page.Name,
			Route:      page.Route,
			IsHome:     page.Home,
			Components: encodeNodes(page.Roots),
		})
	}
	return &Document{
		AppName:     source.AppName,
		PackageName: source.PackageName,
		Screens:     screens,
	}
}

func encodeNodes(roots []*canvas.Node) []Component {
	result := make([]Component, 0, len(roots))
	for _, root := range roots {
		result = append(result, encodeNode(root))
	}
	return result
}

func encodeNode(node *canvas.Node) Component {
	props := make(map[string]interface{}, len(node.Props))
	for name, value := range node.Props {
		props[name] = value
	}
	return Component{
		Type:     node.Kind,
		Props:    props,
		Children: encodeNodes(node.Children),
	}
}

// ToProject validates the document and rebuilds the in-memory project.
// Node and page identifiers are regenerated; the schema never carried
// them, so they are not stable across an export/import round trip.
func ToProject(name string, doc *Document, kinds KindChecker) (*project.Project, error) {
	if err := Validate(doc, kinds); err != nil {
		return nil, err
	}
	pages := make([]*project.Page, 0, len(doc.Screens))
	for _, screen := range doc.Screens {
		page := project.NewPage(screen.Name, screen.Route, screen.IsHome)
		page.Slug = screen.ID
		page.Roots = decodeComponents(screen.Components)
		pages = append(pages, page)
	}
	return &project.Project{
		Name:        name,
		AppName:     doc.AppName,
		PackageName: doc.PackageName,
		Pages:       pages,
	}, nil
}

func decodeComponents(components []Component) []*canvas.Node {
	result := make([]*canvas.Node, 0, len(components))
	for _, component := range components {
		result = append(result, decodeComponent(component))
	}
	return result
}

func decodeComponent(component Component) *canvas.Node {
	props := make(map[string]interface{}, len(component.Props))
	for name, value := range component.Props {
		props[name] = value
	}
	return &canvas.Node{
		ID:       uuid.NewString(),
		Kind:     component.Type,
		Props:    props,
		Children: decodeComponents(component.Children),
	}
}
