package media

// Thumbnail is one preview image of a post.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Info is the metadata of one resolved post or video.
// Playlist-like sources wrap their items in Entries.
type Info struct {
	ID         string       `json:"id,omitempty"`
	Title      string       `json:"title,omitempty"`
	Entries    []*Info      `json:"entries,omitempty"`
	Formats    []*Format    `json:"formats,omitempty"`
	Thumbnail  string       `json:"thumbnail,omitempty"`
	Thumbnails []*Thumbnail `json:"thumbnails,omitempty"`
	Uploader   string       `json:"uploader,omitempty"`
	PageURL    string       `json:"webpage_url,omitempty"`
}

// Unwrap returns the first entry of a playlist, or the receiver itself
// when there are no entries or the first one is null.
func (i *Info) Unwrap() *Info {
	if i == nil || len(i.Entries) == 0 || i.Entries[0] == nil {
		return i
	}
	return i.Entries[0]
}

// PreviewImage returns the thumbnail URL, falling back to the last
// (largest) element of Thumbnails.
func (i *Info) PreviewImage() string {
	if i.Thumbnail != "" {
		return i.Thumbnail
	}

	for j := len(i.Thumbnails) - 1; j >= 0; j-- {
		if t := i.Thumbnails[j]; t != nil && t.URL != "" {
			return t.URL
		}
	}
	return ""
}
