package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

var ErrFFmpegNotFound = errors.New("ffmpeg not found on PATH")

// Converter turns video or MP3 files into sibling WAV files by running
// ffmpeg. It never deletes the source.
type Converter struct {
	Executable string
	Logger     *zap.Logger
}

func NewConverter(logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{Executable: "ffmpeg", Logger: logger}
}

// Convert produces a WAV next to the source file (same stem, .wav
// extension) and returns its path. Video sources are decoded to 16-bit PCM
// at 44.1kHz stereo; MP3 sources use ffmpeg's default WAV parameters.
func (c *Converter) Convert(ctx context.Context, path string, kind Kind) (string, error) {
	if !kind.NeedsConversion() {
		return "", fmt.Errorf("cannot convert %s file %s", kind, path)
	}

	if _, err := exec.LookPath(c.exe()); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFFmpegNotFound, err)
	}

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".wav"
	args := convertArgs(path, outPath, kind)

	c.Logger.Debug("running ffmpeg", zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, c.exe(), args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		c.Logger.Error("ffmpeg conversion failed",
			zap.String("source", path),
			zap.String("diagnostic", diag),
			zap.Error(err),
		)
		if diag != "" {
			return "", fmt.Errorf("convert %s to wav: %w (%s)", path, err, diag)
		}
		return "", fmt.Errorf("convert %s to wav: %w", path, err)
	}

	c.Logger.Info("converted to wav", zap.String("source", path), zap.String("output", outPath))
	return outPath, nil
}

func convertArgs(in, out string, kind Kind) []string {
	args := []string{"-nostdin", "-hide_banner", "-loglevel", "error", "-y", "-i", in}
	if kind == KindVideo {
		args = append(args, "-vn", "-acodec", "pcm_s16le", "-ar", "44100", "-ac", "2")
	}
	return append(args, out)
}

func (c *Converter) exe() string {
	if c.Executable != "" {
		return c.Executable
	}
	return "ffmpeg"
}
