package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/instantsaver/instantsaver/icon"
	"github.com/instantsaver/instantsaver/util"
	"github.com/instantsaver/instantsaver/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	flag     string
	short    string
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", "c", where.Cache},
	{"metadata cache", "media", "", where.MediaCache},
	{"history file", "history", "s", where.History},
	{"logs directory", "logs", "l", where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, t := range clearTargets {
		clearCmd.Flags().BoolP(t.flag, t.short, false, "clear the "+t.name)
	}
	clearCmd.Flags().BoolP("all", "a", false, "clear everything above")
}

// remove deletes the target. A target that does not exist counts as cleared.
func (t clearTarget) remove() error {
	erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), t.name))
	defer erase()

	if err := util.Delete(t.location()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear %s: %w", t.name, err)
	}
	return nil
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached metadata, history and logs",
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))

		selected := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return all || lo.Must(cmd.Flags().GetBool(t.flag))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, t := range selected {
			handleErr(t.remove())
			cmd.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(t.name))
		}
	},
}
