package cmd

import (
	"time"

	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/journal"
	"github.com/appdraft/appdraft/pretty"

	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show the edit journal, newest entries last.",
	Long:  "Show the edit journal, newest entries last.",
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := journal.Events()
		pretty.Guard(err == nil, 1, "%v", err)
		name := ""
		if len(projectFlag) > 0 {
			name = projectFlag
		}
		for _, entry := range entries {
			if len(name) > 0 && entry.Project != name {
				continue
			}
			when := time.Unix(entry.When, 0).Format("2006-01-02 15:04:05")
			common.Stdout("%s  %-20s  %-16s  %s\n", when, entry.Project, entry.Event, entry.Detail)
		}
	},
}

func init() {
	rootCmd.AddCommand(journalCmd)
}
