// Package history persists the URLs resolved successfully.
package history

import (
	"strings"
	"time"

	"github.com/instantsaver/instantsaver/filesystem"
	"github.com/instantsaver/instantsaver/media"
	"github.com/instantsaver/instantsaver/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

var cacher = gache.New[map[string]*Entry](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every entry keyed by URL.
func Get() (map[string]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// Save records a successful resolution, bumping the count of a known URL.
func Save(url, platform string, result *media.Result) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	entry := newEntry(url, platform, result)
	entry.Count = 1
	if existing, ok := saved[url]; ok {
		entry.Count += existing.Count
	}
	entry.ResolvedAt = time.Now()

	saved[url] = entry
	return cacher.Set(saved)
}

// Remove deletes the entry of url. Unknown URLs are ignored.
func Remove(url string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, url)
	return cacher.Set(saved)
}

// Search returns the entries whose URL or username fuzzily matches q,
// most recent first. An empty q matches everything.
func Search(q string) ([]*Entry, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	q = strings.TrimSpace(q)
	entries := lo.Filter(lo.Values(saved), func(e *Entry, _ int) bool {
		return q == "" || fuzzy.MatchFold(q, e.URL) || fuzzy.MatchFold(q, e.Username)
	})

	slices.SortFunc(entries, func(a, b *Entry) int {
		return b.ResolvedAt.Compare(a.ResolvedAt)
	})

	return entries, nil
}
