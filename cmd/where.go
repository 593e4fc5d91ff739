package cmd

import (
	"github.com/instantsaver/instantsaver/color"
	"github.com/instantsaver/instantsaver/config"
	"github.com/instantsaver/instantsaver/filesystem"
	"github.com/instantsaver/instantsaver/style"
	"github.com/instantsaver/instantsaver/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type whereTarget struct {
	name  string
	flag  string
	short mo.Option[string]
	path  func() string
	// file targets report whether they exist yet
	file bool
}

var whereTargets = []whereTarget{
	{"Config", "config", mo.Some("c"), where.Config, false},
	{"Config file", "config-file", mo.None[string](), config.Path, true},
	{"Cookies", "cookies", mo.Some("k"), where.Cookies, true},
	{"Logs", "logs", mo.Some("l"), where.Logs, false},
	{"Cache", "cache", mo.None[string](), where.Cache, false},
	{"Media cache", "media-cache", mo.None[string](), where.MediaCache, true},
	{"History", "history", mo.None[string](), where.History, true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, t := range whereTargets {
		if short, ok := t.short.Get(); ok {
			whereCmd.Flags().BoolP(t.flag, short, false, t.name+" path")
		} else {
			whereCmd.Flags().Bool(t.flag, false, t.name+" path")
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(whereTargets, func(t whereTarget, _ int) string {
		return t.flag
	})...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration, cookies, logs and caches live",
	Run: func(cmd *cobra.Command, args []string) {
		if t, ok := lo.Find(whereTargets, func(t whereTarget) bool {
			return lo.Must(cmd.Flags().GetBool(t.flag))
		}); ok {
			cmd.Println(t.path())
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render

		for i, t := range whereTargets {
			path := t.path()

			status := ""
			if t.file && !filesystem.IsFile(path) {
				status = " " + style.Faint("(missing)")
			}

			cmd.Printf("%s %s\n%s%s\n", header(t.name+"?"), style.Fg(color.Yellow)("--"+t.flag), path, status)
			if i < len(whereTargets)-1 {
				cmd.Println()
			}
		}
	},
}
