// Package platform holds the registry of supported social-media platforms
// and validates source URLs against their host allow-lists.
package platform

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrHostNotAllowed = errors.New("host not allowed")

// HostMatch controls how a URL host is compared to the allow-list.
type HostMatch int

const (
	// Exact requires the host to equal an allow-listed domain.
	Exact HostMatch = iota
	// Contains accepts any host containing an allow-listed domain.
	Contains
)

func (m HostMatch) String() string {
	if m == Contains {
		return "contains"
	}
	return "exact"
}

// ParseHostMatch parses exact or contains.
func ParseHostMatch(s string) (HostMatch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return Exact, nil
	case "contains":
		return Contains, nil
	default:
		return Exact, fmt.Errorf("unknown host match %q (valid: exact, contains)", s)
	}
}

// Platform describes a supported source of media.
type Platform struct {
	ID   string
	Name string
	// Hosts is the allow-list of URL hosts.
	Hosts []string
	// Match is the default host comparison for this platform.
	Match HostMatch
	// InvalidMessage is reported when a URL fails validation.
	InvalidMessage string

	normalize func(string) string
}

func (p *Platform) String() string {
	return p.Name
}

// Validate checks the URL host against the allow-list using match.
func (p *Platform) Validate(rawURL string, match HostMatch) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return fmt.Errorf("%s: %w", p.ID, err)
	}

	host := strings.ToLower(u.Host)
	if host != "" {
		for _, allowed := range p.Hosts {
			if match == Exact && host == allowed {
				return nil
			}
			if match == Contains && strings.Contains(host, allowed) {
				return nil
			}
		}
	}

	return fmt.Errorf("%s: %w: %q", p.ID, ErrHostNotAllowed, u.Host)
}

// Allows reports whether the URL host is on the allow-list.
func (p *Platform) Allows(rawURL string, match HostMatch) bool {
	return p.Validate(rawURL, match) == nil
}

// Normalize rewrites the URL to the form handed to the extractor.
func (p *Platform) Normalize(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if p.normalize == nil {
		return rawURL
	}
	return p.normalize(rawURL)
}
