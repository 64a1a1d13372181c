package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/anasabibi/transcribe/internal/tafrigh"
	"github.com/stretchr/testify/require"
)

func TestDispatchSkipsNonWAVBeforePipeline(t *testing.T) {
	app, out := newTestApp(t, "")
	withKeys(t, app, map[string]string{"WIT_API_KEY_ENGLISH": "token-en"})

	app.probeFn = func(string) bool { return false }

	pipelineCalls := 0
	app.runPipelineFn = func(context.Context, tafrigh.Config) error {
		pipelineCalls++
		return nil
	}

	require.NoError(t, app.dispatch(context.Background(), "/audio/raw.mp3", "EN"))
	require.Equal(t, 0, pipelineCalls)
	require.Contains(t, out.String(), "not in WAV format")
}

func TestDispatchSkipsWhenCredentialMissing(t *testing.T) {
	app, out := newTestApp(t, "")
	withKeys(t, app, map[string]string{"WIT_API_KEY_ENGLISH": "token-en"})

	pipelineCalls := 0
	app.runPipelineFn = func(context.Context, tafrigh.Config) error {
		pipelineCalls++
		return nil
	}

	require.NoError(t, app.dispatch(context.Background(), "/audio/lecture.wav", "JA"))
	require.Equal(t, 0, pipelineCalls)
	require.Contains(t, out.String(), "API key not found for language: JA")
}

func TestDispatchBuildsPipelineBundle(t *testing.T) {
	app, out := newTestApp(t, "")
	withKeys(t, app, map[string]string{"WIT_API_KEY_ARABIC": "token-ar"})

	var got tafrigh.Config
	app.runPipelineFn = func(_ context.Context, cfg tafrigh.Config) error {
		got = cfg
		return nil
	}

	require.NoError(t, app.dispatch(context.Background(), "/audio/lecture.wav", "ar"))

	require.Equal(t, []string{"/audio/lecture.wav"}, got.Input.UrlsOrPaths)
	require.Equal(t, 3, got.Input.DownloadRetries)
	require.Equal(t, []string{"token-ar"}, got.Wit.ClientAccessTokens)
	require.Equal(t, 5, got.Wit.MaxCuttingDuration)
	require.Equal(t, 1, got.Output.MinWordsPerSegment)
	require.Equal(t, []tafrigh.Format{tafrigh.FormatTXT, tafrigh.FormatSRT}, got.Output.Formats)
	require.Equal(t, "/audio", got.Output.OutputDir)
	require.Equal(t, "ar", got.Language)
	require.Contains(t, out.String(), "Transcribing file: /audio/lecture.wav")
	require.Contains(t, out.String(), "Transcription completed")
}

func TestDispatchContainsPipelineFailure(t *testing.T) {
	app, out := newTestApp(t, "")
	withKeys(t, app, map[string]string{"WIT_API_KEY_ENGLISH": "token-en"})

	app.runPipelineFn = func(context.Context, tafrigh.Config) error {
		return errors.New("wit.ai request failed: 401")
	}

	require.NoError(t, app.dispatch(context.Background(), "/audio/lecture.wav", "EN"))
	require.Contains(t, out.String(), "Error during transcription")
}
