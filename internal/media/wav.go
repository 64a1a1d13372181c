package media

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

var ErrInvalidWAV = errors.New("invalid wav file")

// ProbeWAV reports whether the file starts with the RIFF container marker.
// The probe is advisory: any I/O failure (missing file, permission error,
// short file) yields false instead of an error.
func ProbeWAV(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	marker := make([]byte, 4)
	if _, err := io.ReadFull(f, marker); err != nil {
		return false
	}

	return string(marker) == "RIFF"
}

// Info describes the audio layout of a WAV file.
type Info struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	Duration      time.Duration
}

// Inspect walks the RIFF chunks of a WAV file and returns its audio layout.
// It is used for logging only; callers must not gate dispatch on its result.
func Inspect(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	header := make([]byte, 12)
	if _, err := io.ReadFull(f, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Info{}, fmt.Errorf("%w: %v", ErrInvalidWAV, err)
		}
		return Info{}, fmt.Errorf("read wav header: %w", err)
	}

	if string(header[:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return Info{}, ErrInvalidWAV
	}

	var (
		info     Info
		byteRate uint32
		dataSize uint32
		hasFmt   bool
		hasData  bool
	)

	for {
		chunkHeader := make([]byte, 8)
		if _, err := io.ReadFull(f, chunkHeader); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return Info{}, fmt.Errorf("read wav chunk header: %w", err)
		}

		chunkID := string(chunkHeader[:4])
		chunkSize := binary.LittleEndian.Uint32(chunkHeader[4:8])

		skip := int64(chunkSize)
		if chunkSize%2 != 0 {
			skip++
		}

		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return Info{}, ErrInvalidWAV
			}

			buf := make([]byte, 16)
			if _, err := io.ReadFull(f, buf); err != nil {
				return Info{}, fmt.Errorf("read wav fmt chunk: %w", err)
			}

			info.Channels = int(binary.LittleEndian.Uint16(buf[2:4]))
			info.SampleRate = int(binary.LittleEndian.Uint32(buf[4:8]))
			byteRate = binary.LittleEndian.Uint32(buf[8:12])
			info.BitsPerSample = int(binary.LittleEndian.Uint16(buf[14:16]))
			hasFmt = true

			if _, err := f.Seek(skip-16, io.SeekCurrent); err != nil {
				return Info{}, fmt.Errorf("seek wav fmt padding: %w", err)
			}
		case "data":
			dataSize = chunkSize
			hasData = true
			if _, err := f.Seek(skip, io.SeekCurrent); err != nil {
				return Info{}, fmt.Errorf("seek wav data chunk: %w", err)
			}
		default:
			if _, err := f.Seek(skip, io.SeekCurrent); err != nil {
				return Info{}, fmt.Errorf("seek wav chunk %s: %w", chunkID, err)
			}
		}
	}

	if !hasFmt || !hasData {
		return Info{}, ErrInvalidWAV
	}

	if byteRate > 0 {
		seconds := float64(dataSize) / float64(byteRate)
		info.Duration = time.Duration(seconds * float64(time.Second))
	}

	return info, nil
}
