package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/instantsaver/instantsaver/color"
	"github.com/instantsaver/instantsaver/history"
	"github.com/instantsaver/instantsaver/icon"
	"github.com/instantsaver/instantsaver/style"
	"github.com/instantsaver/instantsaver/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringP("filter", "f", "", "Fuzzy filter on URL or username")
	historyCmd.Flags().IntP("limit", "n", 0, "Show at most this many entries")
	historyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	historyCmd.Flags().String("remove", "", "Forget the given URL")
	historyCmd.MarkFlagsMutuallyExclusive("filter", "remove")
}

// historyCmd lists the URLs resolved with history enabled.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously resolved URLs",
	Run: func(cmd *cobra.Command, args []string) {
		if url := lo.Must(cmd.Flags().GetString("remove")); url != "" {
			handleErr(history.Remove(url))
			cmd.Printf("%s forgot %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), url)
			return
		}

		entries, err := history.Search(lo.Must(cmd.Flags().GetString("filter")))
		handleErr(err)

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && limit < len(entries) {
			entries = entries[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(entries))
			return
		}

		if len(entries) == 0 {
			cmd.Println(style.Faint("history is empty"))
			return
		}

		for _, entry := range entries {
			cmd.Printf(
				"%s %s %s\n",
				style.Fg(color.Purple)(entry.ResolvedAt.Format("2006-01-02 15:04")),
				entry.String(),
				style.Faint(fmt.Sprintf("resolved %s", util.Quantify(entry.Count, "time", "times"))),
			)
		}
	},
}
