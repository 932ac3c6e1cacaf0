package cmd

import (
	"github.com/appdraft/appdraft/catalog"
	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/pretty"
	"github.com/appdraft/appdraft/wizard"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new [project name]",
	Short: "Create a new screen project with a guided wizard.",
	Long:  "Create a new screen project with a guided wizard.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("New project lasted").Report()
		}
		store := openStore()
		defer store.Close()
		err := wizard.Create(store, catalog.Builtin(), args)
		pretty.Guard(err == nil, 1, "%v", err)
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
