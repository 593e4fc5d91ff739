// Package selector picks the format exposed for inline preview and download out of an extractor's metadata.
package selector

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"github.com/instantsaver/instantsaver/constant"
	"github.com/instantsaver/instantsaver/media"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

var (
	ErrNoPlayableFormat    = errors.New("no playable format found")
	ErrNoProgressiveFormat = errors.New("no progressive format available")
)

// Mode selects how far the heuristic degrades when no progressive format exists.
type Mode string

const (
	// Full falls back to split streams, then to the preview image.
	Full Mode = "full"
	// Progressive only ever selects a progressive format.
	Progressive Mode = "progressive"
)

// ParseMode parses a configuration value. The empty string means Full.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", Full:
		return Full, nil
	case Progressive:
		return Progressive, nil
	default:
		return "", fmt.Errorf("unknown selector mode %q (valid: full, progressive)", s)
	}
}

// Options tunes Select.
type Options struct {
	Mode Mode
	// PreferMP4 restricts progressive candidates to mp4 when any exist.
	PreferMP4 bool
}

// DefaultOptions returns the full heuristic with the mp4 preference.
func DefaultOptions() Options {
	return Options{Mode: Full, PreferMP4: true}
}

// Select chooses the format to expose for info.
func Select(info *media.Info, options Options) (*media.Result, error) {
	info = info.Unwrap()
	if info == nil {
		return nil, ErrNoPlayableFormat
	}

	formats := lo.Compact(info.Formats)
	username := lo.EmptyableToPtr(info.Uploader)

	progressive := lo.Filter(formats, func(f *media.Format, _ int) bool {
		return f.IsProgressive()
	})

	if len(progressive) > 0 {
		best := best(progressive, options.PreferMP4)
		return &media.Result{
			Type:        media.Video,
			CanPreview:  true,
			PreviewURL:  lo.ToPtr(best.URL),
			DownloadURL: lo.ToPtr(best.URL),
			Username:    username,
		}, nil
	}

	if options.Mode == Progressive {
		return nil, ErrNoProgressiveFormat
	}

	if lo.SomeBy(formats, (*media.Format).IsVideoOnly) && lo.SomeBy(formats, (*media.Format).IsAudioOnly) {
		return &media.Result{
			Type:        media.Video,
			CanPreview:  false,
			DownloadURL: lo.ToPtr(info.PageURL),
			Username:    username,
			Message:     constant.MsgSplitStreams,
		}, nil
	}

	if image := info.PreviewImage(); image != "" {
		return &media.Result{
			Type:        media.Image,
			CanPreview:  true,
			PreviewURL:  lo.ToPtr(image),
			DownloadURL: lo.ToPtr(image),
			Username:    username,
		}, nil
	}

	return nil, ErrNoPlayableFormat
}

// best returns the highest bitrate candidate. Among equal bitrates the one
// appearing last wins.
func best(candidates []*media.Format, preferMP4 bool) *media.Format {
	if preferMP4 {
		mp4 := lo.Filter(candidates, func(f *media.Format, _ int) bool {
			return f.Container == "mp4"
		})
		if len(mp4) > 0 {
			candidates = mp4
		}
	}

	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b *media.Format) int {
		return cmp.Compare(a.Bitrate, b.Bitrate)
	})
	return sorted[len(sorted)-1]
}
