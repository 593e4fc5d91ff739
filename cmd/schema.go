package cmd

import (
	"encoding/json"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/instantsaver/instantsaver/media"
	"github.com/instantsaver/instantsaver/resolve"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("info", "i", false, "Generate the JSON Schema for extractor metadata instead")
}

// schemaCmd generates JSON schemas for the structured outputs.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON Schema of the resolve output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "output", "result", "info", "format":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("info")):
			schema = reflector.Reflect(&media.Info{})
		default:
			schema = reflector.Reflect(&resolve.Output{})
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
