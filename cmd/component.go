package cmd

import (
	"strings"

	"github.com/appdraft/appdraft/canvas"
	"github.com/appdraft/appdraft/catalog"
	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/pretty"
	"github.com/appdraft/appdraft/project"

	"github.com/spf13/cobra"
)

var (
	componentPageFlag   string
	componentParentFlag string
)

// chosenPage picks the page a component command works on: the --page flag
// (route or slug) when given, otherwise the first page.
func chosenPage(proj *project.Project) *project.Page {
	if len(componentPageFlag) > 0 {
		return pageByIdentity(proj.Pages, componentPageFlag)
	}
	page, ok := project.FallbackPage(proj.Pages)
	pretty.Guard(ok, 1, "Project %q has no pages.", proj.Name)
	return page
}

// nodeByPrefix resolves a node from a unique identifier prefix, so users
// can type the short head of an id instead of the whole thing.
func nodeByPrefix(roots []*canvas.Node, prefix string) *canvas.Node {
	var found *canvas.Node
	count := 0
	canvas.Walk(roots, func(node *canvas.Node, _ int) {
		if strings.HasPrefix(node.ID, prefix) {
			found = node
			count += 1
		}
	})
	pretty.Guard(count > 0, 1, "No component with id %q on this page.", prefix)
	pretty.Guard(count == 1, 1, "Id %q matches %d components, give more characters.", prefix, count)
	return found
}

func applyRoots(proj *project.Project, page *project.Page, roots []*canvas.Node) {
	pages, err := project.ReplaceRoots(proj.Pages, page.ID, roots)
	pretty.Guard(err == nil, 1, "%v", err)
	proj.Pages = pages
}

var componentCmd = &cobra.Command{
	Use:     "component",
	Aliases: []string{"comp", "widget"},
	Short:   "Group of commands for editing the component tree of a page.",
	Long:    "Group of commands for editing the component tree of a page.",
}

var componentAddCmd = &cobra.Command{
	Use:   "add <kind>",
	Short: "Add a widget of the given kind under a parent component.",
	Long:  "Add a widget of the given kind under a parent component.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		proj, meta := loadProject(store, resolveProject())
		page := chosenPage(proj)
		parentID := componentParentFlag
		if len(parentID) == 0 {
			pretty.Guard(len(page.Roots) > 0, 1, "Page %q has no components, nothing to attach under.", page.Route)
			parentID = page.Roots[0].ID
		} else {
			parentID = nodeByPrefix(page.Roots, parentID).ID
		}
		reg := catalog.Builtin()
		child, err := reg.DefaultInstance(args[0])
		pretty.Guard(err == nil, 1, "%v", err)
		roots, err := canvas.Insert(page.Roots, parentID, child, reg)
		pretty.Guard(err == nil, 1, "%v", err)
		applyRoots(proj, page, roots)
		saveProject(store, proj, meta, "component-add", "added %s on %s", args[0], page.Route)
		common.Stdout("%s\n", child.ID)
		pretty.Ok()
	},
}

var componentSetCmd = &cobra.Command{
	Use:   "set <id> <name=value>+",
	Short: "Set properties on a component. Values are type checked.",
	Long:  "Set properties on a component. Values are type checked.",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		proj, meta := loadProject(store, resolveProject())
		page := chosenPage(proj)
		node := nodeByPrefix(page.Roots, args[0])
		reg := catalog.Builtin()
		entry, ok := reg.Lookup(node.Kind)
		pretty.Guard(ok, 1, "Unknown widget kind %q.", node.Kind)
		merged := make(map[string]interface{}, len(node.Props)+len(args)-1)
		for key, old := range node.Props {
			merged[key] = old
		}
		for _, pair := range args[1:] {
			name, text, found := strings.Cut(pair, "=")
			pretty.Guard(found, 1, "Expected name=value, got %q.", pair)
			value, err := catalog.ParseValue(entry, name, text)
			pretty.Guard(err == nil, 1, "%v", err)
			merged[name] = value
		}
		roots, err := canvas.SetProps(page.Roots, node.ID, merged)
		pretty.Guard(err == nil, 1, "%v", err)
		applyRoots(proj, page, roots)
		saveProject(store, proj, meta, "component-set", "updated %s on %s", node.Kind, page.Route)
		pretty.Ok()
	},
}

var componentDelCmd = &cobra.Command{
	Use:     "del <id>",
	Aliases: []string{"delete", "rm"},
	Short:   "Delete a component and its whole subtree.",
	Long:    "Delete a component and its whole subtree.",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		proj, meta := loadProject(store, resolveProject())
		page := chosenPage(proj)
		node := nodeByPrefix(page.Roots, args[0])
		roots := canvas.Delete(page.Roots, node.ID)
		applyRoots(proj, page, roots)
		saveProject(store, proj, meta, "component-del", "deleted %s from %s", node.Kind, page.Route)
		pretty.Ok()
	},
}

var componentMoveCmd = &cobra.Command{
	Use:   "move <id> <parent id>",
	Short: "Move a component with its subtree under another parent.",
	Long:  "Move a component with its subtree under another parent.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		proj, meta := loadProject(store, resolveProject())
		page := chosenPage(proj)
		node := nodeByPrefix(page.Roots, args[0])
		parent := nodeByPrefix(page.Roots, args[1])
		roots, err := canvas.Move(page.Roots, node.ID, parent.ID, catalog.Builtin())
		pretty.Guard(err == nil, 1, "%v", err)
		applyRoots(proj, page, roots)
		saveProject(store, proj, meta, "component-move", "moved %s under %s on %s", node.Kind, parent.Kind, page.Route)
		pretty.Ok()
	},
}

var componentShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the component tree of a page with component ids.",
	Long:  "Show the component tree of a page with component ids.",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		proj, _ := loadProject(store, resolveProject())
		page := chosenPage(proj)
		pretty.Highlight("Page: %s (%s)", page.Name, page.Route)
		canvas.Walk(page.Roots, func(node *canvas.Node, depth int) {
			common.Stdout("%s  %s%s\n", node.ID[:8], strings.Repeat("  ", depth), node.Kind)
		})
	},
}

var componentKindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the available widget kinds by category.",
	Long:  "List the available widget kinds by category.",
	Run: func(cmd *cobra.Command, args []string) {
		grouped := catalog.Builtin().ByCategory()
		for _, category := range catalog.Categories {
			pretty.Highlight("%s", category)
			for _, entry := range grouped[category] {
				children := ""
				if entry.CanHaveChildren {
					children = " (container)"
				}
				common.Stdout("  %-12s %s%s\n", entry.Kind, entry.Name, children)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(componentCmd)
	componentCmd.AddCommand(componentAddCmd)
	componentCmd.AddCommand(componentSetCmd)
	componentCmd.AddCommand(componentDelCmd)
	componentCmd.AddCommand(componentMoveCmd)
	componentCmd.AddCommand(componentShowCmd)
	componentCmd.AddCommand(componentKindsCmd)
	componentCmd.PersistentFlags().StringVarP(&componentPageFlag, "page", "", "", "route or slug of the page to edit (default: first page)")
	componentAddCmd.Flags().StringVarP(&componentParentFlag, "parent", "", "", "id of the parent component (default: first root)")
}
