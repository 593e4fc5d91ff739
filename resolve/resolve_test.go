package resolve

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/instantsaver/instantsaver/constant"
	"github.com/instantsaver/instantsaver/extractor"
	"github.com/instantsaver/instantsaver/filesystem"
	"github.com/instantsaver/instantsaver/media"
	"github.com/instantsaver/instantsaver/platform"
	"github.com/instantsaver/instantsaver/selector"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type stub struct {
	calls   int
	url     string
	cookies string
	info    *media.Info
	err     error
}

func (*stub) Name() string { return "yt-dlp" }

func (s *stub) Fetch(_ context.Context, url, cookies string) (*media.Info, error) {
	s.calls++
	s.url = url
	s.cookies = cookies
	return s.info, s.err
}

func run(options *Options, s *stub) (map[string]any, string, error) {
	var out bytes.Buffer
	options.Out = &out
	options.Extractor = func(*platform.Platform) extractor.Extractor { return s }
	if options.Selector.Mode == "" {
		options.Selector = selector.DefaultOptions()
	}

	err := Run(context.Background(), options)

	var decoded map[string]any
	lo.Must0(json.Unmarshal(out.Bytes(), &decoded))
	return decoded, out.String(), err
}

func progressive() *media.Info {
	return &media.Info{
		Uploader: "alice",
		Formats: []*media.Format{
			{VideoCodec: "h264", AudioCodec: "aac", Container: "mp4", Bitrate: 500, URL: "https://cdn.example/a.mp4?x=1&y=2"},
		},
	}
}

func TestRunInputErrors(t *testing.T) {
	Convey("Given rejected input", t, func() {
		s := &stub{info: progressive()}

		Convey("When the URL is blank", func() {
			decoded, raw, err := run(&Options{URL: "   "}, s)

			Convey("Then Missing URL is written and an input error returned", func() {
				So(decoded, ShouldResemble, map[string]any{"error": constant.MsgMissingURL})
				So(strings.Count(raw, "\n"), ShouldEqual, 1)

				var inputErr *InputError
				So(errors.As(err, &inputErr), ShouldBeTrue)
				So(s.calls, ShouldEqual, 0)
			})
		})

		Convey("When no platform matches", func() {
			decoded, _, err := run(&Options{URL: "https://vimeo.com/1"}, s)

			Convey("Then the unsupported message is written", func() {
				So(decoded["error"], ShouldEqual, constant.MsgUnsupportedURL)
				So(err, ShouldHaveSameTypeAs, &InputError{})
				So(s.calls, ShouldEqual, 0)
			})
		})

		Convey("When an Instagram URL has a foreign host", func() {
			decoded, _, err := run(&Options{
				URL:      "https://evil.example.com/reel/abc",
				Platform: mo.Some(platform.Instagram),
			}, s)

			Convey("Then the extractor is never invoked", func() {
				So(decoded["error"], ShouldEqual, "Invalid URL. This script only supports Instagram links.")
				So(err, ShouldNotBeNil)
				So(s.calls, ShouldEqual, 0)
			})
		})

		Convey("When a YouTube subdomain is checked with exact host matching", func() {
			decoded, _, err := run(&Options{
				URL:       "https://music.youtube.com/watch?v=abc",
				HostMatch: mo.Some(platform.Exact),
			}, s)

			Convey("Then the YouTube message is written", func() {
				So(decoded["error"], ShouldEqual, "Invalid URL. Only YouTube supported")
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestRunSuccess(t *testing.T) {
	Convey("Given a progressive Instagram post", t, func() {
		filesystem.SetMemMapFs()
		s := &stub{info: progressive()}

		Convey("When resolved", func() {
			decoded, raw, err := run(&Options{URL: " https://www.instagram.com/reel/abc/ "}, s)

			Convey("Then the result is a single JSON line", func() {
				So(err, ShouldBeNil)
				So(strings.Count(raw, "\n"), ShouldEqual, 1)
				So(raw, ShouldContainSubstring, "a.mp4?x=1&y=2")
				So(decoded["type"], ShouldEqual, "video")
				So(decoded["can_preview"], ShouldEqual, true)
				So(decoded["preview_url"], ShouldEqual, "https://cdn.example/a.mp4?x=1&y=2")
				So(decoded["download_url"], ShouldEqual, "https://cdn.example/a.mp4?x=1&y=2")
				So(decoded["username"], ShouldEqual, "alice")
				So(decoded, ShouldNotContainKey, "error")
				So(decoded, ShouldNotContainKey, "message")
			})

			Convey("Then the extractor sees the trimmed URL", func() {
				So(s.url, ShouldEqual, "https://www.instagram.com/reel/abc/")
			})
		})

		Convey("When a cookie file is configured", func() {
			lo.Must0(filesystem.API().MkdirAll("/cfg", 0o755))
			lo.Must0(filesystem.API().WriteFile("/cfg/cookies.txt", []byte("# Netscape HTTP Cookie File\n"), 0o600))

			Convey("And it exists", func() {
				_, _, err := run(&Options{URL: "https://www.instagram.com/p/abc/", Cookies: "/cfg/cookies.txt"}, s)

				Convey("Then it is passed along", func() {
					So(err, ShouldBeNil)
					So(s.cookies, ShouldEqual, "/cfg/cookies.txt")
				})
			})

			Convey("And it does not exist", func() {
				_, _, err := run(&Options{URL: "https://www.instagram.com/p/abc/", Cookies: "/cfg/missing.txt"}, s)

				Convey("Then no cookies are used", func() {
					So(err, ShouldBeNil)
					So(s.cookies, ShouldBeEmpty)
				})
			})
		})
	})

	Convey("Given a YouTube shorts URL", t, func() {
		s := &stub{info: progressive()}

		Convey("When normalization is on", func() {
			_, _, err := run(&Options{URL: "https://www.youtube.com/shorts/abc123", Normalize: true}, s)

			Convey("Then the watch URL is extracted", func() {
				So(err, ShouldBeNil)
				So(s.url, ShouldEqual, "https://www.youtube.com/watch?v=abc123")
			})
		})

		Convey("When normalization is off", func() {
			_, _, _ = run(&Options{URL: "https://www.youtube.com/shorts/abc123"}, s)

			Convey("Then the URL is kept", func() {
				So(s.url, ShouldEqual, "https://www.youtube.com/shorts/abc123")
			})
		})
	})
}

func TestRunPipelineErrors(t *testing.T) {
	Convey("Given an extractor failure", t, func() {
		s := &stub{err: errors.New("ERROR: [Instagram] abc: login required")}

		decoded, _, err := run(&Options{URL: "https://www.instagram.com/p/abc/"}, s)

		Convey("Then the failure is reported in the envelope without an exit error", func() {
			So(err, ShouldBeNil)
			So(decoded, ShouldResemble, map[string]any{"error": "yt-dlp failed: ERROR: [Instagram] abc: login required"})
		})
	})

	Convey("Given metadata without any usable media", t, func() {
		s := &stub{info: &media.Info{}}

		decoded, _, err := run(&Options{URL: "https://youtu.be/abc"}, s)

		Convey("Then the selection error is capitalized", func() {
			So(err, ShouldBeNil)
			So(decoded["error"], ShouldEqual, "No playable format found")
			So(s.calls, ShouldEqual, 1)
		})
	})

	Convey("Given split streams in progressive mode", t, func() {
		s := &stub{info: &media.Info{
			PageURL: "https://www.youtube.com/watch?v=abc",
			Formats: []*media.Format{
				{VideoCodec: "vp9", AudioCodec: "none", URL: "v"},
				{VideoCodec: "none", AudioCodec: "opus", URL: "a"},
			},
		}}

		decoded, _, err := run(&Options{
			URL:      "https://www.youtube.com/watch?v=abc",
			Selector: selector.Options{Mode: selector.Progressive, PreferMP4: true},
		}, s)

		Convey("Then no split-stream result is produced", func() {
			So(err, ShouldBeNil)
			So(decoded["error"], ShouldEqual, "No progressive format available")
		})
	})
}
