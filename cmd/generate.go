package cmd

import (
	"github.com/appdraft/appdraft/cloud"
	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/document"
	"github.com/appdraft/appdraft/operations"
	"github.com/appdraft/appdraft/pretty"

	"github.com/spf13/cobra"
)

var (
	downloadFileFlag string
	downloadUrlFlag  string
	quickgenFileFlag string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Ask the generation service to build the app for a pushed project.",
	Long:  "Ask the generation service to build the app for a pushed project.",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		proj, _ := loadProject(store, resolveProject())
		job, err := operations.TriggerGeneration(cloudClient(), remoteIdentity(proj))
		pretty.Guard(err == nil, 1, "%v", err)
		common.Log("%sGeneration started, job %s.", pretty.Rocket, job)
		common.Log("Follow it with: appdraft logs")
		pretty.Ok()
	},
}

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the generation logs of a pushed project.",
	Long:  "Show the generation logs of a pushed project.",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		proj, _ := loadProject(store, resolveProject())
		text, err := operations.GenerationLogs(cloudClient(), remoteIdentity(proj))
		pretty.Guard(err == nil, 1, "%v", err)
		common.Stdout("%s\n", text)
	},
}

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the generated app archive of a pushed project.",
	Long: `Download the generated app archive of a pushed project. With the
--url flag any direct archive link is fetched instead, for example one
copied from a generation email.`,
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Download lasted").Report()
		}
		if len(downloadUrlFlag) > 0 {
			filename := downloadFileFlag
			if len(filename) == 0 {
				filename = "appdraft.zip"
			}
			err := cloud.Download(downloadUrlFlag, filename)
			pretty.Guard(err == nil, 1, "%v", err)
			pretty.Ok()
			return
		}
		store := openStore()
		defer store.Close()
		proj, _ := loadProject(store, resolveProject())
		filename := downloadFileFlag
		if len(filename) == 0 {
			filename = proj.Name + ".zip"
		}
		err := operations.DownloadArchive(cloudClient(), remoteIdentity(proj), filename)
		pretty.Guard(err == nil, 1, "%v", err)
		pretty.Ok()
	},
}

var quickgenCmd = &cobra.Command{
	Use:   "quickgen",
	Short: "Generate an app from the local project in one stateless call.",
	Long: `Generate an app from the local project in one stateless call.
Nothing is created on the generation service; the document goes out and
an archive comes back.`,
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Quick generation lasted").Report()
		}
		store := openStore()
		defer store.Close()
		proj, _ := loadProject(store, resolveProject())
		doc := document.FromProject(proj)
		for _, problem := range document.ExportChecks(doc) {
			pretty.Warning("%s", problem)
		}
		filename := quickgenFileFlag
		if len(filename) == 0 {
			filename = proj.Name + ".zip"
		}
		err := operations.QuickGenerate(cloudClient(), doc, filename)
		pretty.Guard(err == nil, 1, "%v", err)
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(quickgenCmd)
	downloadCmd.Flags().StringVarP(&downloadFileFlag, "file", "f", "", "file to write the archive into (default: <project>.zip)")
	downloadCmd.Flags().StringVarP(&downloadUrlFlag, "url", "u", "", "direct archive link to fetch instead of asking the service")
	quickgenCmd.Flags().StringVarP(&quickgenFileFlag, "file", "f", "", "file to write the archive into (default: <project>.zip)")
}
