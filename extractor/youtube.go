package extractor

import (
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/instantsaver/instantsaver/log"
	"github.com/instantsaver/instantsaver/media"
	"github.com/instantsaver/instantsaver/network"
	"github.com/kkdai/youtube/v2"
	"github.com/samber/lo"
)

// YouTube resolves videos natively, without an external executable.
type YouTube struct {
	client *youtube.Client
}

// NewYouTube returns a backend using the shared HTTP client.
func NewYouTube() *YouTube {
	return &YouTube{
		client: &youtube.Client{HTTPClient: network.Client},
	}
}

// Name identifies the backend in error envelopes.
func (*YouTube) Name() string {
	return "youtube"
}

// Fetch ignores cookies.
func (y *YouTube) Fetch(ctx context.Context, url, _ string) (*media.Info, error) {
	video, err := y.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, err
	}

	info := &media.Info{
		ID:       video.ID,
		Title:    video.Title,
		Uploader: video.Author,
		PageURL:  "https://www.youtube.com/watch?v=" + video.ID,
	}

	for _, t := range video.Thumbnails {
		info.Thumbnails = append(info.Thumbnails, &media.Thumbnail{
			URL:    t.URL,
			Width:  int(t.Width),
			Height: int(t.Height),
		})
	}

	if len(info.Thumbnails) > 0 {
		info.Thumbnail = lo.LastOrEmpty(info.Thumbnails).URL
	}

	for i := range video.Formats {
		format := &video.Formats[i]

		if format.URL == "" {
			// ciphered formats need the player script to be deciphered
			streamURL, err := y.client.GetStreamURLContext(ctx, video, format)
			if err != nil {
				log.Warnf("skipping format %d: %s", format.ItagNo, err)
				continue
			}
			format.URL = streamURL
		}

		info.Formats = append(info.Formats, convertFormat(format))
	}

	return info, nil
}

// convertFormat maps a YouTube stream to the extractor-neutral format.
// A MIME type like `video/mp4; codecs="avc1.42001E, mp4a.40.2"` lists
// the video codec first when both are present.
func convertFormat(f *youtube.Format) *media.Format {
	format := &media.Format{
		ID:      fmt.Sprint(f.ItagNo),
		URL:     f.URL,
		Bitrate: float64(lo.Ternary(f.AverageBitrate > 0, f.AverageBitrate, f.Bitrate)) / 1000,
	}

	mediaType, params, err := mime.ParseMediaType(f.MimeType)
	if err != nil {
		return format
	}

	kind, subtype, _ := strings.Cut(mediaType, "/")
	format.Container = subtype

	codecs := lo.Compact(lo.Map(strings.Split(params["codecs"], ","), func(c string, _ int) string {
		return strings.TrimSpace(c)
	}))

	switch kind {
	case "video":
		if len(codecs) > 0 {
			format.VideoCodec = codecs[0]
		}
		if len(codecs) > 1 {
			format.AudioCodec = codecs[1]
		}
	case "audio":
		if len(codecs) > 0 {
			format.AudioCodec = codecs[0]
		}
	}

	return format
}
