package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/instantsaver/instantsaver/log"
	"github.com/instantsaver/instantsaver/media"
	"github.com/instantsaver/instantsaver/util"
	"github.com/lrstanley/go-ytdlp"
)

// ErrNoJSON is returned when the extractor printed no JSON object.
var ErrNoJSON = errors.New("no JSON output")

// YtDlp runs the yt-dlp executable in metadata-only mode.
type YtDlp struct {
	// Executable overrides the yt-dlp binary looked up on PATH.
	Executable string
}

// NewYtDlp returns a backend running executable, or yt-dlp from PATH when empty.
func NewYtDlp(executable string) *YtDlp {
	return &YtDlp{Executable: executable}
}

// Name identifies the backend in error envelopes.
func (*YtDlp) Name() string {
	return "yt-dlp"
}

func (y *YtDlp) command(cookies string) *ytdlp.Command {
	dl := ytdlp.New().SkipDownload().PrintJSON()

	if y.Executable != "" {
		dl = dl.SetExecutable(y.Executable)
	}

	if cookies != "" {
		dl = dl.Cookies(cookies)
	}

	return dl
}

// Fetch reports the last stderr line when the process fails.
func (y *YtDlp) Fetch(ctx context.Context, url, cookies string) (*media.Info, error) {
	log.WithField("url", url).Debugf("running yt-dlp, cookies=%t", cookies != "")

	result, err := y.command(cookies).Run(ctx, url)
	if err != nil {
		if result != nil {
			if line := util.LastLine(result.Stderr); line != "" {
				return nil, errors.New(line)
			}
		}
		return nil, err
	}

	return ParseOutput(result.Stdout)
}

// ParseOutput decodes the last line of stdout that looks like a JSON object.
// Warnings and progress lines printed around it are ignored.
func ParseOutput(stdout string) (*media.Info, error) {
	var last string
	for _, line := range strings.Split(stdout, "\n") {
		if line = strings.TrimSpace(line); strings.HasPrefix(line, "{") {
			last = line
		}
	}

	if last == "" {
		return nil, ErrNoJSON
	}

	var info media.Info
	if err := json.Unmarshal([]byte(last), &info); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}

	return &info, nil
}
