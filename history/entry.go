package history

import (
	"fmt"
	"time"

	"github.com/instantsaver/instantsaver/media"
)

// Entry is one resolved URL kept in the history.
type Entry struct {
	URL         string     `json:"url"`
	Platform    string     `json:"platform"`
	Type        media.Kind `json:"type"`
	Username    string     `json:"username,omitempty"`
	DownloadURL string     `json:"download_url"`
	// Count is how many times the URL was resolved.
	Count      int       `json:"count"`
	ResolvedAt time.Time `json:"resolved_at"`
}

func (e *Entry) String() string {
	if e.Username != "" {
		return fmt.Sprintf("%s (%s, %s by %s)", e.URL, e.Platform, e.Type, e.Username)
	}
	return fmt.Sprintf("%s (%s, %s)", e.URL, e.Platform, e.Type)
}

func newEntry(url, platform string, result *media.Result) *Entry {
	entry := &Entry{
		URL:      url,
		Platform: platform,
		Type:     result.Type,
	}

	if result.Username != nil {
		entry.Username = *result.Username
	}

	if result.DownloadURL != nil {
		entry.DownloadURL = *result.DownloadURL
	}

	return entry
}
