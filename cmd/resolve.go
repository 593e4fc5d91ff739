package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/instantsaver/instantsaver/extractor"
	"github.com/instantsaver/instantsaver/key"
	"github.com/instantsaver/instantsaver/log"
	"github.com/instantsaver/instantsaver/platform"
	"github.com/instantsaver/instantsaver/resolve"
	"github.com/instantsaver/instantsaver/selector"
	"github.com/instantsaver/instantsaver/util"
	"github.com/instantsaver/instantsaver/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringP("mode", "m", "", "Format selection mode (full, progressive)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(selector.Full), string(selector.Progressive)}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.SelectorMode, flags.Lookup("mode")))

	flags.Bool("prefer-mp4", true, "Prefer mp4 progressive formats")
	lo.Must0(viper.BindPFlag(key.SelectorPreferMP4, flags.Lookup("prefer-mp4")))

	flags.StringP("cookies", "C", "", "Cookie file handed to the extractor, used only if it exists")
	lo.Must0(viper.BindPFlag(key.ExtractorCookies, flags.Lookup("cookies")))

	flags.IntP("retries", "r", 2, "How many times the extractor is invoked before giving up")
	lo.Must0(viper.BindPFlag(key.ExtractorRetries, flags.Lookup("retries")))

	flags.StringP("backend", "b", "", "Extractor backend (ytdlp, native)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("backend", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{extractor.BackendYtDlp, extractor.BackendNative}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.ExtractorBackend, flags.Lookup("backend")))

	flags.Bool("cache", false, "Cache extracted metadata on disk")
	lo.Must0(viper.BindPFlag(key.CacheEnable, flags.Lookup("cache")))

	flags.BoolP("open", "o", false, "Open the download URL of the resolved media")

	flags.BoolP("write-history", "H", false, "Remember successfully resolved URLs")
	lo.Must0(viper.BindPFlag(key.HistorySave, flags.Lookup("write-history")))

	for _, p := range platform.Builtins() {
		rootCmd.AddCommand(newPlatformCmd(p))
	}

	rootCmd.AddCommand(resolveCmd)
}

func newPlatformCmd(p *platform.Platform) *cobra.Command {
	return &cobra.Command{
		Use:     p.ID + " [url]",
		Short:   fmt.Sprintf("Resolve a %s link into a JSON description of its media", p.Name),
		Example: fmt.Sprintf("  instantsaver %s 'https://%s/...'", p.ID, p.Hosts[0]),
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runResolve(cmd, args, mo.Some(p))
		},
	}
}

// resolveCmd picks the platform from the URL host.
var resolveCmd = &cobra.Command{
	Use:   "resolve [url]",
	Short: "Resolve an Instagram or YouTube link, detecting the platform from its host",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runResolve(cmd, args, mo.None[*platform.Platform]())
	},
}

func runResolve(cmd *cobra.Command, args []string, p mo.Option[*platform.Platform]) {
	err := execResolve(cmd, args, p)

	var inputErr *resolve.InputError
	if errors.As(err, &inputErr) {
		log.Warn(inputErr)
		os.Exit(1)
	}

	handleErr(err)
}

// execResolve writes exactly one JSON line to the command output,
// including when the configuration itself is invalid.
func execResolve(cmd *cobra.Command, args []string, p mo.Option[*platform.Platform]) error {
	options, err := resolveOptions(args)
	if err != nil {
		return resolve.Reject(cmd.OutOrStdout(), util.Capitalize(err.Error()))
	}

	options.Out = cmd.OutOrStdout()
	options.Platform = p

	if launch, _ := cmd.Flags().GetBool("open"); launch {
		options.Open = mo.Some(viper.GetString(key.OpenApp))
	}

	return resolve.Run(cmd.Context(), options)
}

// resolveOptions reads the pipeline settings from the configuration.
func resolveOptions(args []string) (*resolve.Options, error) {
	mode, err := selector.ParseMode(viper.GetString(key.SelectorMode))
	if err != nil {
		return nil, err
	}

	hostMatch := mo.None[platform.HostMatch]()
	if value := viper.GetString(key.PlatformHostMatch); value != "" && value != "auto" {
		match, err := platform.ParseHostMatch(value)
		if err != nil {
			return nil, err
		}
		hostMatch = mo.Some(match)
	}

	cookies := viper.GetString(key.ExtractorCookies)
	if cookies == "" {
		cookies = where.Cookies()
	}

	return &resolve.Options{
		URL:       lo.FirstOrEmpty(args),
		HostMatch: hostMatch,
		Normalize: viper.GetBool(key.PlatformNormalize),
		Cookies:   cookies,
		Extractor: newExtractor,
		Remember:  viper.GetBool(key.HistorySave),
		Selector: selector.Options{
			Mode:      mode,
			PreferMP4: viper.GetBool(key.SelectorPreferMP4),
		},
	}, nil
}

// newExtractor builds the backend wrapped in retries, then the optional cache.
func newExtractor(p *platform.Platform) extractor.Extractor {
	var e extractor.Extractor = extractor.New(
		viper.GetString(key.ExtractorBackend),
		p,
		viper.GetString(key.ExtractorPath),
	)

	e = extractor.WithRetries(e, viper.GetInt(key.ExtractorRetries))

	if viper.GetBool(key.CacheEnable) {
		lifetime := time.Duration(viper.GetInt(key.CacheLifetime)) * time.Minute
		e = extractor.WithCache(e, where.MediaCache(), lifetime)
	}

	return e
}
