package cmd

import (
	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/journal"
	"github.com/appdraft/appdraft/operations"
	"github.com/appdraft/appdraft/pretty"
	"github.com/appdraft/appdraft/wizard"

	"github.com/spf13/cobra"
)

var (
	projectDeleteYesFlag    bool
	projectDeleteRemoteFlag bool
)

var projectCmd = &cobra.Command{
	Use:     "project",
	Aliases: []string{"projects"},
	Short:   "Group of commands for managing stored projects.",
	Long:    "Group of commands for managing stored projects.",
}

var projectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored projects.",
	Long:    "List stored projects.",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		summaries, err := store.List()
		pretty.Guard(err == nil, 1, "%v", err)
		if len(summaries) == 0 {
			pretty.Note("No projects yet. Start with: appdraft new")
			return
		}
		common.Stdout("%-24s  %-8s  %-10s  %-20s  %s\n", "Name", "Screens", "Remote", "Updated", "Description")
		for _, summary := range summaries {
			remote := "-"
			if len(summary.RemoteID) > 0 {
				remote = "pushed"
			}
			common.Stdout("%-24s  %-8d  %-10s  %-20s  %s\n",
				summary.Name, summary.Screens, remote,
				summary.UpdatedAt.Format("2006-01-02 15:04:05"), summary.Description)
		}
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show one project with all of its pages and component trees.",
	Long:  "Show one project with all of its pages and component trees.",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		proj, meta := loadProject(store, resolveProject())
		pretty.Highlight("Project: %s", proj.Name)
		if len(proj.Description) > 0 {
			common.Stdout("  %s\n", proj.Description)
		}
		common.Stdout("  app: %s  package: %s\n", proj.AppName, proj.PackageName)
		if len(meta.Fingerprint) > 0 {
			common.Stdout("  fingerprint: %s\n", meta.Fingerprint)
		}
		for _, page := range proj.Pages {
			showPage(page)
		}
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a stored project.",
	Long:    "Delete a stored project. With --remote the backend copy goes too.",
	Run: func(cmd *cobra.Command, args []string) {
		name := resolveProject()
		store := openStore()
		defer store.Close()
		pretty.Guard(store.Has(name), 1, "No project named %q in the store.", name)
		confirmed, err := wizard.Confirm("Delete project "+name+" and all of its pages?", projectDeleteYesFlag)
		pretty.Guard(err == nil, 1, "%v", err)
		if !confirmed {
			return
		}
		if projectDeleteRemoteFlag {
			proj, _ := loadProject(store, name)
			err = operations.DeleteProject(cloudClient(), remoteIdentity(proj))
			pretty.Guard(err == nil, 1, "%v", err)
		}
		err = store.Delete(name)
		pretty.Guard(err == nil, 1, "%v", err)
		common.Error("journal", journal.Post(name, "project-delete", "deleted from store"))
		pretty.Ok()
	},
}

var projectRenameCmd = &cobra.Command{
	Use:   "rename <new name>",
	Short: "Rename a stored project.",
	Long:  "Rename a stored project.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		oldName, newName := resolveProject(), args[0]
		store := openStore()
		defer store.Close()
		err := store.Rename(oldName, newName)
		pretty.Guard(err == nil, 1, "%v", err)
		common.Error("journal", journal.Post(newName, "project-rename", "renamed from %q", oldName))
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	projectCmd.AddCommand(projectRenameCmd)
	wizard.AddYesFlag(projectDeleteCmd, &projectDeleteYesFlag)
	projectDeleteCmd.Flags().BoolVarP(&projectDeleteRemoteFlag, "remote", "", false, "also delete the backend copy of the project")
}
