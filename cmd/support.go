package cmd

import (
	"os"

	"github.com/appdraft/appdraft/catalog"
	"github.com/appdraft/appdraft/cloud"
	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/document"
	"github.com/appdraft/appdraft/draft"
	"github.com/appdraft/appdraft/journal"
	"github.com/appdraft/appdraft/pretty"
	"github.com/appdraft/appdraft/project"
	"github.com/appdraft/appdraft/storage"
	"github.com/appdraft/appdraft/xviper"
)

func openStore() *storage.Store {
	store, err := storage.Open()
	pretty.Guard(err == nil, 2, "Could not open project store: %v", err)
	return store
}

// resolveProject decides which stored project a command targets: the
// --project flag wins, then the discovered appdraft.yaml manifest.
func resolveProject() string {
	if len(projectFlag) > 0 {
		return projectFlag
	}
	where, err := os.Getwd()
	if err == nil {
		manifest := draft.Discover(where)
		if manifest != nil && len(manifest.Project) > 0 {
			common.Debug("Using project %q from draft manifest.", manifest.Project)
			return manifest.Project
		}
	}
	pretty.Exit(1, "No project given. Use the --project flag or run inside a draft directory.")
	return ""
}

func loadProject(store *storage.Store, name string) (*project.Project, storage.Meta) {
	doc, meta, err := store.Load(name)
	pretty.Guard(err == nil, 3, "Could not load project %q: %v", name, err)
	proj, err := document.ToProject(name, doc, catalog.Builtin())
	pretty.Guard(err == nil, 3, "Project %q is damaged: %v", name, err)
	proj.Description = meta.Description
	proj.RemoteID = meta.RemoteID
	return proj, meta
}

func saveProject(store *storage.Store, proj *project.Project, meta storage.Meta, event, form string, details ...interface{}) {
	meta.Description = proj.Description
	meta.RemoteID = proj.RemoteID
	err := store.Save(proj.Name, document.FromProject(proj), meta)
	pretty.Guard(err == nil, 4, "Could not save project %q: %v", proj.Name, err)
	common.Error("journal", journal.Post(proj.Name, event, form, details...))
}

// chosenEndpoint picks the generation service address: flag, then draft
// manifest, then persisted settings.
func chosenEndpoint() string {
	if len(endpointFlag) > 0 {
		return endpointFlag
	}
	where, err := os.Getwd()
	if err == nil {
		manifest := draft.Discover(where)
		if manifest != nil && len(manifest.Endpoint) > 0 {
			return manifest.Endpoint
		}
	}
	return xviper.Endpoint()
}

func cloudClient() cloud.Client {
	endpoint := chosenEndpoint()
	pretty.Guard(len(endpoint) > 0, 5, "No generation service endpoint configured. Use the --endpoint flag or %q.", "appdraft config set endpoint <url>")
	client, err := cloud.New(endpoint)
	pretty.Guard(err == nil, 5, "Endpoint %q is not usable: %v", endpoint, err)
	if common.TraceFlag() {
		client = client.WithTracing()
	}
	return client
}

// remoteIdentity requires the project to have been pushed already.
func remoteIdentity(proj *project.Project) string {
	pretty.Guard(len(proj.RemoteID) > 0, 6, "Project %q has no remote counterpart yet. Push it first.", proj.Name)
	return proj.RemoteID
}
