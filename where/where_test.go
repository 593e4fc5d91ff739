package where

import (
	"path/filepath"
	"testing"

	"github.com/instantsaver/instantsaver/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			So(lo.Must(filesystem.API().IsDir(Logs())), ShouldBeTrue)
		})

		Convey("Cookies() lives in the config dir and is not created", func() {
			path := Cookies()
			So(filepath.Dir(path), ShouldEqual, Config())
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeFalse)
		})

		Convey("MediaCache() lives in the cache dir", func() {
			So(filepath.Dir(MediaCache()), ShouldEqual, Cache())
		})

		Convey("History() lives in the config dir", func() {
			So(filepath.Dir(History()), ShouldEqual, Config())
		})
	})

	Convey("Given INSTANTSAVER_CONFIG_PATH", t, func() {
		t.Setenv(EnvConfigPath, "/tmp/instantsaver-test-config")

		Convey("Config() should use it", func() {
			So(Config(), ShouldEqual, "/tmp/instantsaver-test-config")
		})
	})
}
