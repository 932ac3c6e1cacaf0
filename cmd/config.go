package cmd

import (
	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/pretty"
	"github.com/appdraft/appdraft/set"
	"github.com/appdraft/appdraft/xviper"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"configure"},
	Short:   "Group of commands for the persisted appdraft settings.",
	Long:    "Group of commands for the persisted appdraft settings.",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the persisted settings.",
	Long:  "Show the persisted settings.",
	Run: func(cmd *cobra.Command, args []string) {
		common.Stdout("Home:     %s\n", common.Home())
		common.Stdout("Identity: %s\n", xviper.InstallationIdentity())
		endpoint := xviper.Endpoint()
		if len(endpoint) == 0 {
			endpoint = "(not set)"
		}
		common.Stdout("Endpoint: %s\n", endpoint)
		for _, key := range set.Sort(xviper.AllKeys()) {
			common.Stdout("  %s = %v\n", key, xviper.GetString(key))
		}
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one persisted setting, for example the endpoint.",
	Long:  "Set one persisted setting, for example the endpoint.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		key, value := args[0], args[1]
		if key == "endpoint" {
			xviper.SetEndpoint(value)
		} else {
			xviper.Set(key, value)
		}
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
