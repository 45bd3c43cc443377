package model

import "strings"

// MediaKind is the broad class of an uploaded blob.
type MediaKind string

const (
	MediaKindImage   MediaKind = "image"
	MediaKindAudio   MediaKind = "audio"
	MediaKindUnknown MediaKind = ""
)

// RawMedia is an uploaded image or audio blob. It lives for one extraction
// call and is never persisted.
type RawMedia struct {
	Data     []byte
	MIMEType string
}

// Kind derives the media kind from the MIME type. Browser voice recordings
// are often labelled video/webm, which is treated as audio.
func (m RawMedia) Kind() MediaKind {
	mime := strings.ToLower(m.MIMEType)
	switch {
	case strings.HasPrefix(mime, "image/"):
		return MediaKindImage
	case strings.HasPrefix(mime, "audio/"), mime == "video/webm":
		return MediaKindAudio
	}
	return MediaKindUnknown
}
