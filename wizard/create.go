package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/appdraft/appdraft/catalog"
	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/document"
	"github.com/appdraft/appdraft/draft"
	"github.com/appdraft/appdraft/journal"
	"github.com/appdraft/appdraft/pathlib"
	"github.com/appdraft/appdraft/pretty"
	"github.com/appdraft/appdraft/project"
	"github.com/appdraft/appdraft/storage"
)

// Create interviews the user for a new project and stores it with one home
// page at "/" rooted in a Scaffold. The first argument, when given, seeds
// the project name question.
func Create(store *storage.Store, reg *catalog.Registry, arguments []string) error {
	if !pretty.Interactive {
		return fmt.Errorf("the project wizard needs an interactive terminal")
	}
	name, err := ask("Name the project", firstOf(arguments, "my-app"),
		regexpValidation(projectNamePattern, "Use letters, numbers, underscore, and hyphen only."))
	if err != nil {
		return err
	}
	if store.Has(name) {
		note("Project %q already exists in the local store.", name)
		return fmt.Errorf("project %q already exists", name)
	}
	appName, err := ask("Application name", suggestAppName(name),
		regexpValidation(appNamePattern, "Use lowercase identifier form, like demo_app."))
	if err != nil {
		return err
	}
	packageName, err := ask("Package name", "com.example."+appName,
		regexpValidation(packagePattern, "Use a dotted identifier, like com.example.app."))
	if err != nil {
		return err
	}
	description, err := ask("Short description", "", func(string) bool { return true })
	if err != nil {
		return err
	}

	root, err := reg.DefaultInstance("Scaffold")
	if err != nil {
		return err
	}
	fresh := project.New(name, appName, packageName, root)
	fresh.Description = description
	err = store.Save(name, document.FromProject(fresh), storage.Meta{Description: description})
	if err != nil {
		return err
	}
	common.Error("journal", journal.Post(name, "project-create", "app %s package %s", appName, packageName))
	pretty.Highlight("Created project %q with a home page at %q.", name, "/")
	writeManifest(name, appName, packageName)
	return nil
}

// writeManifest pins the new project to the current directory, unless a
// manifest already exists here.
func writeManifest(name, appName, packageName string) {
	where, err := os.Getwd()
	if err != nil {
		return
	}
	filename := filepath.Join(where, draft.ManifestName)
	if pathlib.IsFile(filename) {
		return
	}
	manifest := &draft.Manifest{Project: name, AppName: appName, PackageName: packageName}
	if draft.Save(filename, manifest) == nil {
		pretty.Note("Wrote %s so commands here default to this project.", draft.ManifestName)
	}
}

func suggestAppName(projectName string) string {
	suggestion := strings.ToLower(strings.ReplaceAll(projectName, "-", "_"))
	if appNamePattern.MatchString(suggestion) {
		return suggestion
	}
	return "my_app"
}
