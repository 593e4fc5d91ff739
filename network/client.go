// Package network provides the shared HTTP client used by library-backed extractors.
package network

import (
	"net/http"
	"time"
)

// Client is the HTTP client shared across the application.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConnsPerHost = 16
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
