package extractor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/instantsaver/instantsaver/filesystem"
	"github.com/instantsaver/instantsaver/media"
	"github.com/instantsaver/instantsaver/platform"
	"github.com/kkdai/youtube/v2"
	. "github.com/smartystreets/goconvey/convey"
)

// fake records its calls and replays results in order, repeating the last one.
type fake struct {
	calls   int
	cookies []string
	infos   []*media.Info
	errs    []error
}

func (*fake) Name() string { return "fake" }

func (f *fake) Fetch(_ context.Context, _, cookies string) (*media.Info, error) {
	i := min(f.calls, max(len(f.infos), len(f.errs))-1)
	f.calls++
	f.cookies = append(f.cookies, cookies)

	var (
		info *media.Info
		err  error
	)
	if i < len(f.infos) {
		info = f.infos[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return info, err
}

func TestParseOutput(t *testing.T) {
	Convey("Given yt-dlp stdout", t, func() {
		Convey("When a single JSON object is printed", func() {
			info, err := ParseOutput(`{"id":"Cx1","uploader":"alice","formats":[{"vcodec":"h264","acodec":"aac","ext":"mp4","tbr":800,"url":"https://cdn/a.mp4"}]}`)

			Convey("Then it is decoded", func() {
				So(err, ShouldBeNil)
				So(info.ID, ShouldEqual, "Cx1")
				So(info.Uploader, ShouldEqual, "alice")
				So(info.Formats, ShouldHaveLength, 1)
				So(info.Formats[0].Bitrate, ShouldEqual, 800.0)
			})
		})

		Convey("When warnings surround several JSON lines", func() {
			stdout := "WARNING: [Instagram] login required\n{\"id\":\"first\"}\n  {\"id\":\"second\"}  \n[info] done\n"
			info, err := ParseOutput(stdout)

			Convey("Then the last JSON line wins", func() {
				So(err, ShouldBeNil)
				So(info.ID, ShouldEqual, "second")
			})
		})

		Convey("When null values are present", func() {
			info, err := ParseOutput(`{"thumbnail":null,"uploader":null,"formats":[{"vcodec":null,"acodec":"none","tbr":null,"url":"u"}]}`)

			Convey("Then they decode to zero values", func() {
				So(err, ShouldBeNil)
				So(info.Thumbnail, ShouldBeEmpty)
				So(info.Uploader, ShouldBeEmpty)
				So(info.Formats[0].HasVideo(), ShouldBeFalse)
				So(info.Formats[0].HasAudio(), ShouldBeFalse)
				So(info.Formats[0].Bitrate, ShouldEqual, 0.0)
			})
		})

		Convey("When no line starts with a brace", func() {
			_, err := ParseOutput("ERROR: Unsupported URL\n")

			Convey("Then ErrNoJSON is returned", func() {
				So(errors.Is(err, ErrNoJSON), ShouldBeTrue)
			})
		})

		Convey("When the JSON line is truncated", func() {
			_, err := ParseOutput(`{"id":"Cx1","formats":[`)

			Convey("Then a decode error is returned", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, ErrNoJSON), ShouldBeFalse)
			})
		})
	})
}

func TestRetrying(t *testing.T) {
	ctx := context.Background()

	Convey("Given an extractor that always fails", t, func() {
		inner := &fake{errs: []error{errors.New("first"), errors.New("second"), errors.New("login required")}}

		Convey("When retried three times", func() {
			info, err := WithRetries(inner, 3).Fetch(ctx, "https://www.instagram.com/p/x/", "")

			Convey("Then it is called exactly three times and the last error surfaces", func() {
				So(info, ShouldBeNil)
				So(inner.calls, ShouldEqual, 3)
				So(err.Error(), ShouldEqual, "login required")
			})
		})

		Convey("When attempts is not positive", func() {
			_, err := WithRetries(inner, 0).Fetch(ctx, "u", "")

			Convey("Then it is still called once", func() {
				So(err, ShouldNotBeNil)
				So(inner.calls, ShouldEqual, 1)
			})
		})
	})

	Convey("Given an extractor that succeeds on the second call", t, func() {
		want := &media.Info{ID: "ok"}
		inner := &fake{infos: []*media.Info{nil, want}, errs: []error{errors.New("flaky"), nil}}

		info, err := WithRetries(inner, 2).Fetch(ctx, "u", "/cfg/cookies.txt")

		Convey("Then the success is returned", func() {
			So(err, ShouldBeNil)
			So(info, ShouldEqual, want)
			So(inner.calls, ShouldEqual, 2)
			So(inner.cookies, ShouldResemble, []string{"/cfg/cookies.txt", "/cfg/cookies.txt"})
		})
	})

	Convey("Given a cancelled context", t, func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		inner := &fake{errs: []error{context.Canceled}}

		_, err := WithRetries(inner, 5).Fetch(cancelled, "u", "")

		Convey("Then retrying stops", func() {
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
			So(inner.calls, ShouldEqual, 1)
		})
	})
}

func TestCached(t *testing.T) {
	ctx := context.Background()

	Convey("Given a cached extractor on an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		path := filepath.Join("/cache", fmt.Sprintf("media-%d.json", time.Now().UnixNano()))

		inner := &fake{infos: []*media.Info{{ID: "a"}}}
		cached := WithCache(inner, path, time.Hour)

		Convey("When the same URL is fetched twice", func() {
			first, err := cached.Fetch(ctx, "https://youtu.be/a", "")
			So(err, ShouldBeNil)
			second, err := cached.Fetch(ctx, "https://youtu.be/a", "")
			So(err, ShouldBeNil)

			Convey("Then the backend is only called once", func() {
				So(inner.calls, ShouldEqual, 1)
				So(second.ID, ShouldEqual, first.ID)
			})

			Convey("Then the name is the backend's", func() {
				So(cached.Name(), ShouldEqual, "fake")
			})
		})

		Convey("When the backend fails", func() {
			failing := &fake{errs: []error{errors.New("boom")}}
			cached := WithCache(failing, path+".fail", time.Hour)

			_, err := cached.Fetch(ctx, "u", "")
			_, err = cached.Fetch(ctx, "u", "")

			Convey("Then nothing is cached", func() {
				So(err, ShouldNotBeNil)
				So(failing.calls, ShouldEqual, 2)
			})
		})
	})
}

func TestConvertFormat(t *testing.T) {
	Convey("Given YouTube formats", t, func() {
		Convey("A muxed mp4 is progressive", func() {
			f := convertFormat(&youtube.Format{
				ItagNo:   18,
				URL:      "https://rr.googlevideo.com/18",
				MimeType: `video/mp4; codecs="avc1.42001E, mp4a.40.2"`,
				Bitrate:  568000,
			})

			So(f.ID, ShouldEqual, "18")
			So(f.Container, ShouldEqual, "mp4")
			So(f.VideoCodec, ShouldEqual, "avc1.42001E")
			So(f.AudioCodec, ShouldEqual, "mp4a.40.2")
			So(f.Bitrate, ShouldEqual, 568.0)
			So(f.IsProgressive(), ShouldBeTrue)
		})

		Convey("An adaptive webm video is video-only and prefers the average bitrate", func() {
			f := convertFormat(&youtube.Format{
				ItagNo:         248,
				MimeType:       `video/webm; codecs="vp9"`,
				Bitrate:        3000000,
				AverageBitrate: 2000000,
			})

			So(f.Container, ShouldEqual, "webm")
			So(f.IsVideoOnly(), ShouldBeTrue)
			So(f.Bitrate, ShouldEqual, 2000.0)
		})

		Convey("An audio stream is audio-only", func() {
			f := convertFormat(&youtube.Format{ItagNo: 140, MimeType: `audio/mp4; codecs="mp4a.40.2"`})

			So(f.Container, ShouldEqual, "mp4")
			So(f.IsAudioOnly(), ShouldBeTrue)
		})

		Convey("A malformed MIME type yields no codecs", func() {
			f := convertFormat(&youtube.Format{ItagNo: 1, MimeType: "garbage;;"})

			So(f.HasVideo(), ShouldBeFalse)
			So(f.HasAudio(), ShouldBeFalse)
		})
	})
}

func TestNew(t *testing.T) {
	Convey("Backend selection", t, func() {
		So(New(BackendNative, platform.YouTube, "").Name(), ShouldEqual, "youtube")
		So(New(BackendNative, platform.Instagram, "").Name(), ShouldEqual, "yt-dlp")
		So(New(BackendYtDlp, platform.YouTube, "").Name(), ShouldEqual, "yt-dlp")

		y, ok := New("", platform.Instagram, "/opt/yt-dlp").(*YtDlp)
		So(ok, ShouldBeTrue)
		So(y.Executable, ShouldEqual, "/opt/yt-dlp")
	})
}
