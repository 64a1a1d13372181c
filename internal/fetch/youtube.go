// Package fetch pulls the audio track of a remote video into a local WAV
// file by driving yt-dlp as a subprocess.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrYtdlpNotFound = errors.New("yt-dlp not found on PATH")
	ErrNoWAVProduced = errors.New("no wav file found in downloads directory")
)

// Fetcher downloads remote audio into DownloadsDir, extracted and
// transcoded to WAV by yt-dlp. Files are named after the remote item's
// identifier via yt-dlp's output template.
type Fetcher struct {
	Executable   string
	DownloadsDir string
	Logger       *zap.Logger
}

func NewFetcher(downloadsDir string, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{Executable: "yt-dlp", DownloadsDir: downloadsDir, Logger: logger}
}

// Fetch downloads the audio of url as WAV and returns the path of the
// resulting file. The downloads directory is listed in lexicographic order
// and the first WAV wins; leftovers from earlier runs are reported so the
// selection stays explainable.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if _, err := exec.LookPath(f.exe()); err != nil {
		return "", fmt.Errorf("%w: %v", ErrYtdlpNotFound, err)
	}

	if err := os.MkdirAll(f.DownloadsDir, 0o755); err != nil {
		return "", fmt.Errorf("create downloads directory %s: %w", f.DownloadsDir, err)
	}

	template := filepath.Join(f.DownloadsDir, "%(id)s.%(ext)s")
	args := []string{"-x", "--audio-format", "wav", "-o", template, url}

	f.Logger.Debug("running yt-dlp", zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, f.exe(), args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		f.Logger.Error("yt-dlp download failed",
			zap.String("url", url),
			zap.String("diagnostic", diag),
			zap.Error(err),
		)
		if diag != "" {
			return "", fmt.Errorf("download audio from %s: %w (%s)", url, err, diag)
		}
		return "", fmt.Errorf("download audio from %s: %w", url, err)
	}

	wavPath, err := f.firstWAV()
	if err != nil {
		return "", err
	}

	f.Logger.Info("downloaded audio", zap.String("url", url), zap.String("path", wavPath))
	return wavPath, nil
}

func (f *Fetcher) firstWAV() (string, error) {
	matches, err := filepath.Glob(filepath.Join(f.DownloadsDir, "*.wav"))
	if err != nil {
		return "", fmt.Errorf("list downloads directory: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoWAVProduced, f.DownloadsDir)
	}

	sort.Strings(matches)
	if len(matches) > 1 {
		f.Logger.Warn("multiple wav files in downloads directory; picking first lexicographically",
			zap.Int("count", len(matches)),
			zap.String("picked", matches[0]),
		)
	}

	return matches[0], nil
}

func (f *Fetcher) exe() string {
	if f.Executable != "" {
		return f.Executable
	}
	return "yt-dlp"
}

// DefaultDownloadsDir resolves the fixed downloads landing zone, a
// "downloads" directory sibling to the running executable. It falls back to
// the working directory when the executable path cannot be resolved.
func DefaultDownloadsDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "downloads"
	}
	return filepath.Join(filepath.Dir(exe), "downloads")
}
