package extractor

import (
	"context"
	"sync"
	"time"

	"github.com/instantsaver/instantsaver/filesystem"
	"github.com/instantsaver/instantsaver/log"
	"github.com/instantsaver/instantsaver/media"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

type cacheData struct {
	Infos map[string]*media.Info `json:"infos"`
}

// Cached stores successful fetches on disk, keyed by URL.
// The whole cache file expires once its lifetime passes.
type Cached struct {
	Extractor

	internal *gache.Cache[*cacheData]
	mu       sync.RWMutex
}

// WithCache caches successful results of e in a JSON file at path for lifetime.
func WithCache(e Extractor, path string, lifetime time.Duration) *Cached {
	return &Cached{
		Extractor: e,
		internal: gache.New[*cacheData](&gache.Options{
			Path:       path,
			Lifetime:   lifetime,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func (c *Cached) get(url string) mo.Option[*media.Info] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[*media.Info]()
	}

	info, ok := data.Infos[url]
	if !ok || info == nil {
		return mo.None[*media.Info]()
	}

	return mo.Some(info)
}

func (c *Cached) set(url string, info *media.Info) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		log.Debugf("resetting unreadable metadata cache: %s", err)
	}

	if err != nil || expired || data == nil || data.Infos == nil {
		data = &cacheData{Infos: make(map[string]*media.Info)}
	}

	data.Infos[url] = info
	return c.internal.Set(data)
}

// Fetch serves a fresh cached entry or delegates and stores the result.
func (c *Cached) Fetch(ctx context.Context, url, cookies string) (*media.Info, error) {
	if info, ok := c.get(url).Get(); ok {
		log.WithField("url", url).Debugf("metadata cache hit")
		return info, nil
	}

	info, err := c.Extractor.Fetch(ctx, url, cookies)
	if err != nil {
		return nil, err
	}

	if err := c.set(url, info); err != nil {
		log.Warnf("caching metadata: %s", err)
	}

	return info, nil
}
