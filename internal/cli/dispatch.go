package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/anasabibi/transcribe/internal/media"
	"github.com/anasabibi/transcribe/internal/tafrigh"
	"go.uber.org/zap"
)

// dispatch runs one WAV file through the transcription pipeline. A file
// that fails the WAV probe or has no configured credential is skipped, and
// a pipeline failure is contained here so the rest of a batch keeps going.
// The returned error is always nil for per-file conditions; dispatch only
// exists on the fatal path for programming errors upstream.
func (a *appState) dispatch(ctx context.Context, wavPath, language string) error {
	if !a.probeFn(wavPath) {
		a.log().Warn("file is not wav; skipping", zap.String("path", wavPath))
		fmt.Fprintf(a.outWriter(), "Skipping file %s as it is not in WAV format.\n", wavPath)
		return nil
	}

	witAPIKey, ok := a.keys.Lookup(language)
	if !ok {
		a.log().Warn("no credential for language; skipping",
			zap.String("language", language),
			zap.String("path", wavPath),
		)
		fmt.Fprintf(a.outWriter(), "API key not found for language: %s\n", language)
		return nil
	}

	if info, err := media.Inspect(wavPath); err == nil {
		a.log().Debug("wav layout",
			zap.String("path", wavPath),
			zap.Int("sample_rate", info.SampleRate),
			zap.Int("channels", info.Channels),
			zap.Int("bits_per_sample", info.BitsPerSample),
			zap.Duration("duration", info.Duration),
		)
	} else {
		a.log().Debug("wav inspection failed", zap.String("path", wavPath), zap.Error(err))
	}

	cfg := tafrigh.NewConfig(wavPath, language, witAPIKey, filepath.Dir(wavPath))

	fmt.Fprintf(a.outWriter(), "Transcribing file: %s\n", wavPath)
	a.log().Info("transcribing", zap.String("path", wavPath), zap.String("language", language))

	stopSpinner := startSpinner(a.progressEnabled(), "Transcribing")
	started := time.Now()
	err := a.runPipelineFn(ctx, cfg)
	stopSpinner()

	if err != nil {
		a.log().Error("transcription failed",
			zap.String("path", wavPath),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err),
		)
		fmt.Fprintln(a.outWriter(), "Error during transcription. Check the logs for more information.")
		return nil
	}

	a.log().Info("transcription finished",
		zap.String("path", wavPath),
		zap.Duration("elapsed", time.Since(started)),
	)
	fmt.Fprintln(a.outWriter(), "Transcription completed. Check the output directory for the generated files.")
	return nil
}
