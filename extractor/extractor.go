// Package extractor obtains media metadata for a source URL.
package extractor

import (
	"context"
	"strings"

	"github.com/instantsaver/instantsaver/media"
	"github.com/instantsaver/instantsaver/platform"
)

const (
	BackendYtDlp  = "ytdlp"
	BackendNative = "native"
)

// Extractor fetches the metadata of a post or video.
type Extractor interface {
	// Name is used in the error reported when fetching fails.
	Name() string
	// Fetch resolves url. cookies is the path to a Netscape cookie file or empty.
	Fetch(ctx context.Context, url, cookies string) (*media.Info, error)
}

// New picks a backend for the platform.
// The native backend only serves YouTube; everything else goes through yt-dlp.
func New(backend string, p *platform.Platform, executable string) Extractor {
	if strings.EqualFold(backend, BackendNative) && p == platform.YouTube {
		return NewYouTube()
	}
	return NewYtDlp(executable)
}
