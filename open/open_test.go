package open

import (
	"runtime"
	"testing"

	"github.com/instantsaver/instantsaver/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Given a download URL with a query string", t, func() {
		url := "https://cdn.example/a.mp4?x=1&y=2"

		Convey("The default handler receives the URL last", func() {
			cmd, ok := command(url, "")
			if !ok {
				return
			}
			So(cmd.Args[len(cmd.Args)-1], ShouldEqual, url)
		})

		Convey("A chosen application is used", func() {
			cmd, ok := command(url, "mpv")
			if !ok {
				return
			}

			switch runtime.GOOS {
			case constant.Linux:
				So(cmd.Args, ShouldResemble, []string{"mpv", url})
			case constant.Darwin:
				So(cmd.Args, ShouldResemble, []string{"open", "-a", "mpv", url})
			case constant.Windows:
				So(cmd.Args[len(cmd.Args)-1], ShouldEqual, "https://cdn.example/a.mp4?x=1^&y=2")
			}
		})
	})
}
