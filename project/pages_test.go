package project_test

import (
	"errors"
	"testing"

	"github.com/appdraft/appdraft/hamlet"
	"github.com/appdraft/appdraft/project"
)

func twoPages(t *testing.T) []*project.Page {
	t.Helper()
	pages, err := project.AddPage(nil, project.NewPage("Home", "/", true))
	if err != nil {
		t.Fatal(err)
	}
	pages, err = project.AddPage(pages, project.NewPage("Profile", "/profile", false))
	if err != nil {
		t.Fatal(err)
	}
	return pages
}

func TestRouteValidation(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	must.True(project.ValidRoute("/"))
	must.True(project.ValidRoute("/profile"))
	must.True(project.ValidRoute("/user_settings/privacy-2"))
	wont.True(project.ValidRoute(""))
	wont.True(project.ValidRoute("profile"))
	wont.True(project.ValidRoute("/Profile"))
	wont.True(project.ValidRoute("/pro file"))
}

func TestAddPageRejectsDuplicateRoute(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	pages := twoPages(t)
	_, err := project.AddPage(pages, project.NewPage("Other", "/profile", false))
	must.True(errors.Is(err, project.ErrDuplicateRoute))
	must.Equal(2, len(pages))
}

func TestDeleteLastPageIsForbidden(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	pages, _ := project.AddPage(nil, project.NewPage("Home", "/", true))
	_, err := project.DeletePage(pages, pages[0].ID)
	must.True(errors.Is(err, project.ErrLastPage))
}

func TestDeleteMissingPageIsNoop(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	pages := twoPages(t)
	after, err := project.DeletePage(pages, "never-existed")
	must.Nil(err)
	must.Equal(pages, after)
}

func TestDeleteFallsBackToFirstRemainingPage(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	pages := twoPages(t)
	after, err := project.DeletePage(pages, pages[1].ID)
	must.Nil(err)
	fallback, ok := project.FallbackPage(after)
	must.True(ok)
	must.Equal("/", fallback.Route)
}

func TestUpdatePageRouteCollisionExcludesSelf(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	pages := twoPages(t)

	// Re-saving a page with its own route is legal.
	route := "/profile"
	_, err := project.UpdatePage(pages, pages[1].ID, project.PageFields{Route: &route})
	must.Nil(err)

	// Stealing another page's route is not.
	home := "/"
	after, err := project.UpdatePage(pages, pages[1].ID, project.PageFields{Route: &home})
	must.True(errors.Is(err, project.ErrDuplicateRoute))
	must.Equal(pages, after)
}

func TestUpdatePagePartialFields(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	pages := twoPages(t)
	name := "Account"
	updated, err := project.UpdatePage(pages, pages[1].ID, project.PageFields{Name: &name})
	must.Nil(err)
	must.Equal("Account", updated[1].Name)
	must.Equal("account", updated[1].Slug)
	must.Equal("/profile", updated[1].Route)
	// Copy on write: the original collection still has the old name.
	wont.Equal(pages[1].Name, updated[1].Name)
}

func TestUpdateMissingPageIsHardFailure(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	pages := twoPages(t)
	name := "Ghost"
	_, err := project.UpdatePage(pages, "missing", project.PageFields{Name: &name})
	must.True(errors.Is(err, project.ErrPageNotFound))
}

func TestHomeCountIsAdvisory(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	pages := twoPages(t)
	must.Equal(1, project.HomeCount(pages))

	yes := true
	updated, err := project.UpdatePage(pages, pages[1].ID, project.PageFields{Home: &yes})
	must.Nil(err)
	// Two home pages are representable; callers warn, the model allows.
	must.Equal(2, project.HomeCount(updated))
}

func TestSlugify(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal("home", project.Slugify("Home"))
	must.Equal("user_settings", project.Slugify("User Settings"))
	must.Equal("screen_2nd", project.Slugify("2nd"))
	must.Equal("screen_", project.Slugify("!!!"))
}
