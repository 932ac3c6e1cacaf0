package cmd

import (
	"github.com/appdraft/appdraft/catalog"
	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/document"
	"github.com/appdraft/appdraft/operations"
	"github.com/appdraft/appdraft/pretty"

	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push a project to the generation service.",
	Long: `Push a project to the generation service. The first push creates
the remote project and remembers its id; later pushes update it in place.`,
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Push lasted").Report()
		}
		store := openStore()
		defer store.Close()
		proj, meta := loadProject(store, resolveProject())
		doc := document.FromProject(proj)
		for _, problem := range document.ExportChecks(doc) {
			pretty.Warning("%s", problem)
		}
		client := cloudClient()
		if len(proj.RemoteID) == 0 {
			record, err := operations.CreateProject(client, proj.Name, proj.Description, doc)
			pretty.Guard(err == nil, 1, "%v", err)
			proj.RemoteID = record.ID
			saveProject(store, proj, meta, "push", "created remote project %s", record.ID)
			common.Log("Created remote project %s.", record.ID)
		} else {
			err := operations.UpdateProject(client, proj.RemoteID, operations.UpdateFields{
				Name:        &proj.Name,
				Description: &proj.Description,
				Document:    doc,
			})
			pretty.Guard(err == nil, 1, "%v", err)
			saveProject(store, proj, meta, "push", "updated remote project %s", proj.RemoteID)
			common.Log("Updated remote project %s.", proj.RemoteID)
		}
		pretty.Ok()
	},
}

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull the remote copy of a project into the local store.",
	Long:  "Pull the remote copy of a project into the local store, replacing local pages.",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		proj, meta := loadProject(store, resolveProject())
		record, doc, err := operations.GetProject(cloudClient(), remoteIdentity(proj))
		pretty.Guard(err == nil, 1, "%v", err)
		pulled, err := document.ToProject(proj.Name, doc, catalog.Builtin())
		pretty.Guard(err == nil, 1, "Remote document is damaged: %v", err)
		pulled.Description = record.Description
		pulled.RemoteID = record.ID
		saveProject(store, pulled, meta, "pull", "pulled remote project %s", record.ID)
		pretty.Ok()
	},
}

var remoteListCmd = &cobra.Command{
	Use:   "remote",
	Short: "List the projects the generation service knows about.",
	Long:  "List the projects the generation service knows about.",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := operations.ListProjects(cloudClient())
		pretty.Guard(err == nil, 1, "%v", err)
		if len(records) == 0 {
			pretty.Note("The generation service has no projects.")
			return
		}
		common.Stdout("%-36s  %-24s  %s\n", "Id", "Name", "Description")
		for _, record := range records {
			common.Stdout("%-36s  %-24s  %s\n", record.ID, record.Name, record.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(pullCmd)
	projectCmd.AddCommand(remoteListCmd)
}
