// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// It uses afero so tests can swap the OS filesystem for an in-memory one.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a volatile in-memory backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// IsFile reports whether path exists and is a regular file.
// Any stat error counts as absent.
func IsFile(path string) bool {
	if path == "" {
		return false
	}

	stat, err := API().Stat(path)
	if err != nil {
		return false
	}

	return stat.Mode().IsRegular()
}
