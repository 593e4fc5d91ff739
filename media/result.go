package media

// Kind is the media type exposed to callers.
type Kind string

const (
	Video Kind = "video"
	Image Kind = "image"
)

// Result describes the selected media.
// PreviewURL is nil unless CanPreview is set; DownloadURL is always set.
type Result struct {
	Type        Kind    `json:"type" jsonschema:"enum=video,enum=image"`
	CanPreview  bool    `json:"can_preview"`
	PreviewURL  *string `json:"preview_url"`
	DownloadURL *string `json:"download_url"`
	Username    *string `json:"username"`
	Message     string  `json:"message,omitempty"`
}
