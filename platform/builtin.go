package platform

import (
	"regexp"

	"github.com/instantsaver/instantsaver/util"
)

var Instagram = &Platform{
	ID:             "instagram",
	Name:           "Instagram",
	Hosts:          []string{"instagram.com", "www.instagram.com"},
	Match:          Exact,
	InvalidMessage: "Invalid URL. This script only supports Instagram links.",
}

var YouTube = &Platform{
	ID:             "youtube",
	Name:           "YouTube",
	Hosts:          []string{"youtube.com", "www.youtube.com", "youtu.be", "m.youtube.com"},
	Match:          Contains,
	InvalidMessage: "Invalid URL. Only YouTube supported",
	normalize:      canonicalWatchURL,
}

var youtubeShortID = regexp.MustCompile(`(?:/shorts/|youtu\.be/)(?P<id>[^?&#/]+)`)

// canonicalWatchURL turns shorts and youtu.be links into watch URLs.
func canonicalWatchURL(rawURL string) string {
	id, ok := util.ReGroups(youtubeShortID, rawURL)["id"]
	if !ok || id == "" {
		return rawURL
	}
	return "https://www.youtube.com/watch?v=" + id
}

// Builtins returns the supported platforms in detection order.
func Builtins() []*Platform {
	return []*Platform{Instagram, YouTube}
}

// Get finds a platform by id.
func Get(id string) (*Platform, bool) {
	for _, p := range Builtins() {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Detect returns the first platform whose allow-list accepts the URL.
func Detect(rawURL string) (*Platform, bool) {
	for _, p := range Builtins() {
		if p.Allows(rawURL, p.Match) {
			return p, true
		}
	}
	return nil, false
}
