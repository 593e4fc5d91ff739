package constant

// User-facing error messages emitted inside the JSON envelope.
const (
	MsgMissingURL     = "Missing URL"
	MsgUnsupportedURL = "Unsupported URL. Only Instagram and YouTube links are supported."
	MsgSplitStreams   = "Preview unavailable for separate video/audio streams. Use download button to get the full video."
)
