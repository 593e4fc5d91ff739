package media

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFormat(t *testing.T) {
	Convey("Given formats decoded from extractor JSON", t, func() {
		var formats []*Format
		err := json.Unmarshal([]byte(`[
			{"format_id":"18","vcodec":"avc1.42001E","acodec":"mp4a.40.2","ext":"mp4","tbr":512.4,"url":"A"},
			{"format_id":"137","vcodec":"avc1.640028","acodec":"none","ext":"mp4","url":"B"},
			{"format_id":"140","vcodec":"none","acodec":"mp4a.40.2","ext":"m4a","tbr":null,"url":"C"},
			{"format_id":"sb0","vcodec":null,"ext":"mhtml","url":"D"}
		]`), &formats)
		So(err, ShouldBeNil)
		So(formats, ShouldHaveLength, 4)

		Convey("Progressive formats carry both codecs", func() {
			So(formats[0].IsProgressive(), ShouldBeTrue)
			So(formats[0].Bitrate, ShouldEqual, 512.4)
		})

		Convey("The literal none marks a missing stream", func() {
			So(formats[1].IsVideoOnly(), ShouldBeTrue)
			So(formats[2].IsAudioOnly(), ShouldBeTrue)
		})

		Convey("Null bitrate decodes to zero", func() {
			So(formats[2].Bitrate, ShouldEqual, 0.0)
		})

		Convey("Null or missing codecs mean no stream at all", func() {
			So(formats[3].HasVideo(), ShouldBeFalse)
			So(formats[3].HasAudio(), ShouldBeFalse)
			So(formats[3].IsProgressive() || formats[3].IsVideoOnly() || formats[3].IsAudioOnly(), ShouldBeFalse)
		})

		Convey("String prefers the format id", func() {
			So(formats[0].String(), ShouldEqual, "18")
			So((&Format{URL: "E"}).String(), ShouldEqual, "E")
		})
	})
}

func TestInfo(t *testing.T) {
	Convey("Unwrap", t, func() {
		first := &Info{ID: "first"}

		Convey("Returns the first entry of a playlist", func() {
			info := &Info{ID: "playlist", Entries: []*Info{first, {ID: "second"}}}
			So(info.Unwrap(), ShouldEqual, first)
		})

		Convey("Keeps the receiver when entries are empty or null", func() {
			empty := &Info{ID: "post", Entries: []*Info{}}
			So(empty.Unwrap(), ShouldEqual, empty)

			null := &Info{ID: "post", Entries: []*Info{nil}}
			So(null.Unwrap(), ShouldEqual, null)
		})

		Convey("Is nil safe", func() {
			var info *Info
			So(info.Unwrap(), ShouldBeNil)
		})
	})

	Convey("PreviewImage", t, func() {
		Convey("Prefers thumbnail", func() {
			info := &Info{Thumbnail: "T", Thumbnails: []*Thumbnail{{URL: "X"}}}
			So(info.PreviewImage(), ShouldEqual, "T")
		})

		Convey("Falls back to the last thumbnails entry", func() {
			info := &Info{Thumbnails: []*Thumbnail{{URL: "small"}, {URL: "large"}, {URL: ""}}}
			So(info.PreviewImage(), ShouldEqual, "large")
		})

		Convey("Is empty without any image", func() {
			So((&Info{}).PreviewImage(), ShouldBeEmpty)
		})
	})
}
