// Package where resolves application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/instantsaver/instantsaver/constant"
	"github.com/instantsaver/instantsaver/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "INSTANTSAVER_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory.
// It honours INSTANTSAVER_CONFIG_PATH, then the platform user config dir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Cookies resolves the default cookie file handed to the extractor.
// The file itself is optional and never created.
func Cookies() string {
	return filepath.Join(Config(), "cookies.txt")
}

// MediaCache resolves the file backing the extracted metadata cache.
func MediaCache() string {
	return filepath.Join(Cache(), "media.json")
}

// History resolves the file listing previously resolved URLs.
func History() string {
	return filepath.Join(Config(), "history.json")
}
