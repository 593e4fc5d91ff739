package extractor

import (
	"context"

	"github.com/instantsaver/instantsaver/log"
	"github.com/instantsaver/instantsaver/media"
)

// Retrying calls the wrapped extractor up to Attempts times and
// returns the last error if none succeeds. There is no backoff.
type Retrying struct {
	Extractor
	Attempts int
}

// WithRetries calls e up to attempts times until it succeeds.
func WithRetries(e Extractor, attempts int) *Retrying {
	return &Retrying{Extractor: e, Attempts: attempts}
}

// Fetch returns the first success or the last error.
func (r *Retrying) Fetch(ctx context.Context, url, cookies string) (info *media.Info, err error) {
	attempts := max(r.Attempts, 1)

	for attempt := 1; attempt <= attempts; attempt++ {
		info, err = r.Extractor.Fetch(ctx, url, cookies)
		if err == nil {
			return info, nil
		}

		log.Warnf("%s attempt %d/%d failed: %s", r.Name(), attempt, attempts, err)

		if ctx.Err() != nil {
			break
		}
	}

	return nil, err
}
