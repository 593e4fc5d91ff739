// Package version tracks the installed yt-dlp release and discovers newer ones.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/instantsaver/instantsaver/filesystem"
	"github.com/instantsaver/instantsaver/network"
	"github.com/instantsaver/instantsaver/util"
	"github.com/instantsaver/instantsaver/where"
	"github.com/lrstanley/go-ytdlp"
	"github.com/metafates/gache"
)

// ReleasesURL points to the latest yt-dlp release on GitHub.
const ReleasesURL = "https://api.github.com/repos/yt-dlp/yt-dlp/releases/latest"

var latestCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "ytdlp_version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest retrieves the most recent yt-dlp release tag, e.g. 2025.01.15.
// The result is cached for two days to stay under the API rate limit.
func Latest(ctx context.Context) (version string, err error) {
	ver, expired, err := latestCacher.Get()
	if err == nil && !expired && ver != "" {
		return ver, nil
	}

	version, err = fetchLatest(ctx, ReleasesURL)
	if err != nil {
		return "", err
	}

	_ = latestCacher.Set(version)
	return version, nil
}

func fetchLatest(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", err
	}

	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("releases: unexpected status %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}

// Installed asks the yt-dlp executable for its version.
func Installed(ctx context.Context, executable string) (string, error) {
	result, err := ytdlp.New().SetExecutable(executable).Version(ctx)
	if err != nil {
		return "", err
	}

	version := util.LastLine(result.Stdout)
	if version == "" {
		return "", errors.New("empty version output")
	}

	return version, nil
}
