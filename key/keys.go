// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Extractor - these keys select and tune the media metadata extractor.
const (
	ExtractorBackend = "extractor.backend"
	ExtractorPath    = "extractor.path"
	ExtractorRetries = "extractor.retries"
	ExtractorCookies = "extractor.cookies"

	ExtractorUpdateCheck = "extractor.update_check"
)

// Format selection heuristic.
const (
	SelectorMode      = "selector.mode"
	SelectorPreferMP4 = "selector.prefer_mp4"
)

// Platform validation - these keys govern host allow-list matching and URL rewriting.
const (
	PlatformHostMatch = "platform.host_match"
	PlatformNormalize = "platform.normalize"
)

// Metadata cache.
const (
	CacheEnable   = "cache.enable"
	CacheLifetime = "cache.lifetime"
)

// Opening resolved media.
const (
	OpenApp = "open.app"
)

// Resolution history.
const (
	HistorySave = "history.save"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// CLI Execution Environment.
const (
	CliColored = "cli.colored"
)
