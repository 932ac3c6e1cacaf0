package cmd

import (
	"github.com/appdraft/appdraft/canvas"
	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/pretty"
	"github.com/appdraft/appdraft/project"

	"github.com/spf13/cobra"
)

var (
	pageRouteFlag string
	pageNameFlag  string
	pageHomeFlag  bool
)

func showPage(page *project.Page) {
	marker := ""
	if page.Home {
		marker = " [home]"
	}
	pretty.Highlight("Page: %s (%s)%s", page.Name, page.Route, marker)
	common.Stdout("%s", canvas.Render(page.Roots))
}

// pageByIdentity accepts a route or a slug, routes first.
func pageByIdentity(pages []*project.Page, identity string) *project.Page {
	if page, ok := project.PageByRoute(pages, identity); ok {
		return page
	}
	for _, page := range pages {
		if page.Slug == identity {
			return page
		}
	}
	pretty.Exit(1, "No page %q in this project.", identity)
	return nil
}

var pageCmd = &cobra.Command{
	Use:     "page",
	Aliases: []string{"pages"},
	Short:   "Group of commands for managing the pages of a project.",
	Long:    "Group of commands for managing the pages of a project.",
}

var pageAddCmd = &cobra.Command{
	Use:   "add <name> <route>",
	Short: "Add a new page with the given name and route.",
	Long:  "Add a new page with the given name and route.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		proj, meta := loadProject(store, resolveProject())
		page := project.NewPage(args[0], args[1], pageHomeFlag)
		pages, err := project.AddPage(proj.Pages, page)
		pretty.Guard(err == nil, 1, "%v", err)
		proj.Pages = pages
		saveProject(store, proj, meta, "page-add", "added page %q at %q", page.Name, page.Route)
		pretty.Ok()
	},
}

var pageListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the pages of a project.",
	Long:    "List the pages of a project.",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		proj, _ := loadProject(store, resolveProject())
		common.Stdout("%-20s  %-20s  %-6s  %s\n", "Slug", "Route", "Home", "Components")
		for _, page := range proj.Pages {
			common.Stdout("%-20s  %-20s  %-6v  %d\n", page.Slug, page.Route, page.Home, canvas.Size(page.Roots))
		}
		if project.HomeCount(proj.Pages) != 1 {
			pretty.Warning("Expected exactly one home page, found %d.", project.HomeCount(proj.Pages))
		}
	},
}

var pageUpdateCmd = &cobra.Command{
	Use:   "update <route or slug>",
	Short: "Update the name, route, or home marker of a page.",
	Long:  "Update the name, route, or home marker of a page.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		proj, meta := loadProject(store, resolveProject())
		page := pageByIdentity(proj.Pages, args[0])
		fields := project.PageFields{}
		if cmd.Flags().Changed("name") {
			fields.Name = &pageNameFlag
		}
		if cmd.Flags().Changed("route") {
			fields.Route = &pageRouteFlag
		}
		if cmd.Flags().Changed("home") {
			fields.Home = &pageHomeFlag
		}
		pages, err := project.UpdatePage(proj.Pages, page.ID, fields)
		pretty.Guard(err == nil, 1, "%v", err)
		proj.Pages = pages
		saveProject(store, proj, meta, "page-update", "updated page %q", args[0])
		pretty.Ok()
	},
}

var pageDeleteCmd = &cobra.Command{
	Use:     "delete <route or slug>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a page. The last page of a project cannot be deleted.",
	Long:    "Delete a page. The last page of a project cannot be deleted.",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		proj, meta := loadProject(store, resolveProject())
		page := pageByIdentity(proj.Pages, args[0])
		wasHome := page.Home
		pages, err := project.DeletePage(proj.Pages, page.ID)
		pretty.Guard(err == nil, 1, "%v", err)
		proj.Pages = pages
		if wasHome {
			pretty.Warning("The home page was deleted. Mark another page with: appdraft page update <route> --home")
		}
		saveProject(store, proj, meta, "page-delete", "deleted page %q", args[0])
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(pageCmd)
	pageCmd.AddCommand(pageAddCmd)
	pageCmd.AddCommand(pageListCmd)
	pageCmd.AddCommand(pageUpdateCmd)
	pageCmd.AddCommand(pageDeleteCmd)
	pageAddCmd.Flags().BoolVarP(&pageHomeFlag, "home", "", false, "mark the new page as the home page")
	pageUpdateCmd.Flags().StringVarP(&pageNameFlag, "name", "", "", "new display name for the page")
	pageUpdateCmd.Flags().StringVarP(&pageRouteFlag, "route", "", "", "new route for the page")
	pageUpdateCmd.Flags().BoolVarP(&pageHomeFlag, "home", "", false, "set or clear the home marker")
}
