// Package youtube extracts video identifiers from the link shapes that show
// up in the source sheets and derives thumbnail URLs from them.
package youtube

import (
	"fmt"
	"regexp"
)

// Tried in order; first match wins. All require an id of at least 6
// URL-safe characters.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{6,})`),
	regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{6,})`),
	regexp.MustCompile(`embed/([A-Za-z0-9_-]{6,})`),
}

type ThumbnailSet struct {
	Max string `json:"max"`
	HQ  string `json:"hq"`
	ID  string `json:"id"`
}

// VideoID extracts a video identifier from a short-link, watch?v= or embed
// URL. Returns "" when no pattern matches.
func VideoID(url string) string {
	if url == "" {
		return ""
	}
	for _, p := range idPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// Thumbnails derives the two fixed-template thumbnail URLs for a video URL.
// Returns nil when no id can be extracted. Falling back from Max to HQ on
// image load failure is the presentation layer's job.
func Thumbnails(url string) *ThumbnailSet {
	id := VideoID(url)
	if id == "" {
		return nil
	}
	return &ThumbnailSet{
		Max: fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", id),
		HQ:  fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id),
		ID:  id,
	}
}
