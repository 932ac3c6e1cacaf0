package cmd

import (
	"github.com/appdraft/appdraft/catalog"
	"github.com/appdraft/appdraft/interactive"
	"github.com/appdraft/appdraft/pretty"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the full screen editor on a project.",
	Long:  "Open the full screen editor on a project.",
	Run: func(cmd *cobra.Command, args []string) {
		pretty.Guard(pretty.Interactive, 1, "The editor needs an interactive terminal.")
		store := openStore()
		defer store.Close()
		err := interactive.Run(store, catalog.Builtin(), resolveProject())
		pretty.Guard(err == nil, 1, "%v", err)
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
