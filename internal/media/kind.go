package media

import (
	"path/filepath"
	"strings"
)

// Kind classifies a media file by what the pipeline has to do with it
// before transcription.
type Kind int

const (
	KindUnknown Kind = iota
	KindWAV
	KindMP3
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindWAV:
		return "wav"
	case KindMP3:
		return "mp3"
	case KindVideo:
		return "video"
	default:
		return "unknown"
	}
}

// NeedsConversion reports whether the file must run through ffmpeg
// before it can be dispatched.
func (k Kind) NeedsConversion() bool {
	return k == KindMP3 || k == KindVideo
}

// Classify maps a path to a Kind by its extension. The extension check is
// case-insensitive; content is not inspected here (see ProbeWAV for that).
func Classify(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return KindWAV
	case ".mp3":
		return KindMP3
	case ".mp4", ".mkv", ".avi":
		return KindVideo
	default:
		return KindUnknown
	}
}
