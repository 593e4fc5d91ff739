package version

import (
	"context"
	"fmt"
	"io"

	"github.com/instantsaver/instantsaver/color"
	"github.com/instantsaver/instantsaver/icon"
	"github.com/instantsaver/instantsaver/key"
	"github.com/instantsaver/instantsaver/log"
	"github.com/instantsaver/instantsaver/style"
	"github.com/instantsaver/instantsaver/util"
	"github.com/spf13/viper"
)

// Notify prints an alert to w when the installed yt-dlp is older than the latest release.
// yt-dlp versions are dates, which compare like major.minor.patch.
func Notify(ctx context.Context, w io.Writer, installed string) {
	if !viper.GetBool(key.ExtractorUpdateCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if a new yt-dlp release is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		log.Warnf("checking yt-dlp release: %s", err)
		return
	}

	if comp, err := Compare(latest, installed); err != nil || comp <= 0 {
		return
	}

	_, _ = fmt.Fprintf(w, `
%s New yt-dlp release is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", installed)),
		style.Faint("https://github.com/yt-dlp/yt-dlp/releases/tag/"+latest),
	)
}
