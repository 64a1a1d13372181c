package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWithoutLogFile(t *testing.T) {
	t.Parallel()

	logger, err := New(Options{})
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("console only")
}

func TestNewAppendsToLogFile(t *testing.T) {
	t.Parallel()

	logFile := filepath.Join(t.TempDir(), "transcription.log")

	logger, err := New(Options{LogFile: logFile})
	require.NoError(t, err)
	logger.Error("ffmpeg conversion failed")
	require.NoError(t, logger.Sync())

	first, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(first), "ffmpeg conversion failed")

	// A second logger must append, not truncate.
	logger2, err := New(Options{LogFile: logFile})
	require.NoError(t, err)
	logger2.Error("yt-dlp download failed")
	require.NoError(t, logger2.Sync())

	second, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(second), "ffmpeg conversion failed")
	require.Contains(t, string(second), "yt-dlp download failed")
}

func TestNewFailsOnUnwritableLogFile(t *testing.T) {
	t.Parallel()

	_, err := New(Options{LogFile: filepath.Join(t.TempDir(), "missing", "transcription.log")})
	require.Error(t, err)
}
