package cmd

import (
	"os"

	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/pretty"
	"github.com/appdraft/appdraft/xviper"

	"github.com/spf13/cobra"
)

var (
	debugFlag    bool
	traceFlag    bool
	silentFlag   bool
	homeFlag     string
	endpointFlag string
	projectFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "appdraft",
	Short: "appdraft is a terminal composer for mobile app screens.",
	Long: `appdraft is a terminal composer for mobile app screens.
Projects are trees of widgets on routed pages, stored locally and
pushed to a generation service when an app build is wanted.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if len(homeFlag) > 0 {
			common.ForceHome(common.ExpandPath(homeFlag))
		}
		common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
		common.DefineLogFilter(xviper.GetBool("log.linenumbers"), xviper.GetString("log.hides"))
		pretty.Setup()
	},
}

func Execute() {
	defer common.WaitLogs()
	err := rootCmd.Execute()
	if err != nil {
		common.Fatal("root", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "", false, "to get debug output where available (not for production use)")
	rootCmd.PersistentFlags().BoolVarP(&traceFlag, "trace", "", false, "to get trace output where available (not for production use)")
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, "silent", "", false, "be less verbose on output")
	rootCmd.PersistentFlags().StringVarP(&homeFlag, "home", "", "", "override APPDRAFT_HOME location")
	rootCmd.PersistentFlags().StringVarP(&endpointFlag, "endpoint", "", "", "generation service endpoint to use")
	rootCmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "", "name of the project to operate on")
}
