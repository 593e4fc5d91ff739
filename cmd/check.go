package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/instantsaver/instantsaver/constant"
	"github.com/instantsaver/instantsaver/extractor"
	"github.com/instantsaver/instantsaver/filesystem"
	"github.com/instantsaver/instantsaver/icon"
	"github.com/instantsaver/instantsaver/key"
	"github.com/instantsaver/instantsaver/style"
	"github.com/instantsaver/instantsaver/version"
	"github.com/instantsaver/instantsaver/where"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd verifies the external dependencies of the extractor.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the extractor executable and cookie file are available",
	Run: func(cmd *cobra.Command, args []string) {
		ok := checkExtractor(cmd)
		checkCookies(cmd)

		if !ok {
			handleErr(fmt.Errorf("missing dependency %s", viper.GetString(key.ExtractorPath)))
		}
	},
}

func installHint() string {
	switch runtime.GOOS {
	case constant.Darwin:
		return "brew install yt-dlp"
	case constant.Linux:
		return "python3 -m pip install -U yt-dlp"
	case constant.Windows:
		return "winget install yt-dlp"
	default:
		return ""
	}
}

func checkExtractor(cmd *cobra.Command) bool {
	executable := viper.GetString(key.ExtractorPath)

	if path, err := exec.LookPath(executable); err == nil {
		cmd.Printf("%s %s found at %s\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)), executable, path)

		installed, err := version.Installed(cmd.Context(), path)
		if err != nil {
			cmd.Printf("%s could not read the %s version: %s\n", icon.Get(icon.Warn), executable, err)
			return true
		}

		cmd.Printf("%s version %s\n", style.Faint(executable), style.Bold(installed))
		version.Notify(cmd.Context(), cmd.OutOrStdout(), installed)
		return true
	}

	// the native backend works without yt-dlp for YouTube links
	if viper.GetString(key.ExtractorBackend) == extractor.BackendNative {
		cmd.Printf("%s %s not found, only YouTube links will resolve\n", icon.Get(icon.Warn), executable)
		return true
	}

	title := style.New().Bold(true).Foreground(style.ErrorColor).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The extractor '%s' was not found in your PATH.", executable))

	lines := []string{title, "", body}
	if hint := installHint(); hint != "" {
		lines = append(lines, "", "To install it, try running:", "  "+style.New().Foreground(style.AccentColor).Bold(true).Render(hint))
	}

	cmd.Println(style.Box(style.ErrorColor, lines...))
	return false
}

func checkCookies(cmd *cobra.Command) {
	cookies := viper.GetString(key.ExtractorCookies)
	if cookies == "" {
		cookies = where.Cookies()
	}

	if filesystem.IsFile(cookies) {
		cmd.Printf("%s cookies loaded from %s\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)), cookies)
		return
	}

	cmd.Printf("%s no cookie file at %s, private posts will fail\n", icon.Get(icon.Warn), style.Faint(cookies))
}
