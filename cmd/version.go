package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/instantsaver/instantsaver/color"
	"github.com/instantsaver/instantsaver/constant"
	"github.com/instantsaver/instantsaver/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type buildInfo struct {
	App      string `json:"app"`
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	Platform string `json:"platform"`
}

func currentBuild() buildInfo {
	return buildInfo{
		App:      constant.App,
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
	versionCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		build := currentBuild()

		switch {
		case lo.Must(cmd.Flags().GetBool("short")):
			cmd.Println(build.Version)
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(build))
		default:
			rows := []lo.Tuple2[string, string]{
				{A: "Version", B: build.Version},
				{A: "Git Commit", B: build.Revision},
				{A: "Build Date", B: build.BuiltAt},
				{A: "Built By", B: build.BuiltBy},
				{A: "Platform", B: build.Platform},
			}

			cmd.Printf("%s %s\n\n", style.Fg(color.Purple)("▇▇▇"), style.Fg(color.Purple)(build.App))
			for _, row := range rows {
				cmd.Printf("  %s %s\n", style.Faint(fmt.Sprintf("%-12s", row.A)), style.Bold(row.B))
			}
		}
	},
}
