package cmd

import (
	"os"

	"github.com/appdraft/appdraft/catalog"
	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/document"
	"github.com/appdraft/appdraft/pathlib"
	"github.com/appdraft/appdraft/pretty"
	"github.com/appdraft/appdraft/storage"

	"github.com/spf13/cobra"
)

var exportFileFlag string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a project as a generation service JSON document.",
	Long:  "Export a project as a generation service JSON document.",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		proj, _ := loadProject(store, resolveProject())
		doc := document.FromProject(proj)
		for _, problem := range document.ExportChecks(doc) {
			pretty.Warning("%s", problem)
		}
		blob, err := document.Encode(doc)
		pretty.Guard(err == nil, 1, "%v", err)
		if len(exportFileFlag) == 0 || exportFileFlag == "-" {
			common.Stdout("%s\n", blob)
			return
		}
		err = pathlib.WriteFile(exportFileFlag, blob, 0o644)
		pretty.Guard(err == nil, 2, "%v", err)
		common.Log("Wrote %q (fingerprint %s).", exportFileFlag, document.Fingerprint(doc))
		pretty.Ok()
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON document as a new stored project.",
	Long: `Import a JSON document as a new stored project. The document is
validated against the widget registry first; a document with any schema
problem is rejected whole and nothing is stored.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := resolveProject()
		blob, err := os.ReadFile(args[0])
		pretty.Guard(err == nil, 1, "%v", err)
		doc, err := document.Decode(blob)
		pretty.Guard(err == nil, 1, "%v", err)
		proj, err := document.ToProject(name, doc, catalog.Builtin())
		pretty.Guard(err == nil, 1, "%v", err)
		store := openStore()
		defer store.Close()
		pretty.Guard(!store.Has(name), 1, "Project %q already exists in the store.", name)
		saveProject(store, proj, storage.Meta{}, "project-import", "imported from %q", args[0])
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	exportCmd.Flags().StringVarP(&exportFileFlag, "file", "f", "", "file to write the document into (default: stdout)")
}
