// Package media defines the metadata model produced by extractors and the result of format selection.
package media

// codecNone is the sentinel extractors use for a missing stream.
const codecNone = "none"

// Format describes one candidate stream of a post or video.
// Field names follow the yt-dlp info dict. Empty strings mean absent.
type Format struct {
	// ID is the extractor-specific format identifier.
	ID string `json:"format_id,omitempty"`
	// VideoCodec is empty or "none" when the format carries no video.
	VideoCodec string `json:"vcodec,omitempty"`
	// AudioCodec is empty or "none" when the format carries no audio.
	AudioCodec string `json:"acodec,omitempty"`
	// Container is the file extension, e.g. "mp4".
	Container string `json:"ext,omitempty"`
	// Bitrate is the total average bitrate in kbit/s; zero when unknown.
	Bitrate float64 `json:"tbr,omitempty"`
	// URL is the direct fetch location of this format.
	URL string `json:"url,omitempty"`
}

func present(codec string) bool {
	return codec != "" && codec != codecNone
}

// HasVideo reports whether the format carries a video stream.
func (f *Format) HasVideo() bool {
	return present(f.VideoCodec)
}

// HasAudio reports whether the format carries an audio stream.
func (f *Format) HasAudio() bool {
	return present(f.AudioCodec)
}

// IsProgressive reports whether video and audio are muxed in a single stream.
func (f *Format) IsProgressive() bool {
	return f.HasVideo() && f.HasAudio()
}

// IsVideoOnly reports whether the format is a video stream without audio.
func (f *Format) IsVideoOnly() bool {
	return f.HasVideo() && !f.HasAudio()
}

// IsAudioOnly reports whether the format is an audio stream without video.
func (f *Format) IsAudioOnly() bool {
	return !f.HasVideo() && f.HasAudio()
}

// String returns the format identifier or URL for display.
func (f *Format) String() string {
	if f.ID != "" {
		return f.ID
	}
	return f.URL
}
