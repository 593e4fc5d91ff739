package util

import (
	"regexp"
	"testing"

	"github.com/instantsaver/instantsaver/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("no playable format found"), ShouldEqual, "No playable format found")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "attempt", "attempts"), ShouldEqual, "1 attempt")
		So(Quantify(2, "attempt", "attempts"), ShouldEqual, "2 attempts")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`/shorts/(?P<id>[\w-]+)`)

		Convey("Named groups are extracted", func() {
			So(ReGroups(re, "https://youtube.com/shorts/abc-123?x=1")["id"], ShouldEqual, "abc-123")
		})

		Convey("No match yields an empty map", func() {
			So(ReGroups(re, "https://youtube.com/watch?v=abc"), ShouldBeEmpty)
		})
	})
}

func TestLastLine(t *testing.T) {
	Convey("LastLine", t, func() {
		So(LastLine("WARNING: x\nERROR: [instagram] login required\n\n"), ShouldEqual, "ERROR: [instagram] login required")
		So(LastLine("  \n "), ShouldEqual, "")
	})
}

func TestDelete(t *testing.T) {
	Convey("Given files on an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		lo.Must0(fs.MkdirAll("/cache/nested", 0o755))
		lo.Must0(fs.WriteFile("/cache/nested/media.json", []byte("{}"), 0o644))

		Convey("Deleting a directory removes it recursively", func() {
			So(Delete("/cache"), ShouldBeNil)
			So(lo.Must(fs.Exists("/cache/nested/media.json")), ShouldBeFalse)
		})

		Convey("Deleting a missing path fails", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}
