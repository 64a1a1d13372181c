package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anasabibi/transcribe/internal/config"
	"github.com/anasabibi/transcribe/internal/media"
	"github.com/anasabibi/transcribe/internal/tafrigh"
	"github.com/stretchr/testify/require"
)

// newTestApp builds an appState with a scripted stdin and no-op external
// collaborators. Individual tests override the function fields they care
// about and count calls through them.
func newTestApp(t *testing.T, input string) (*appState, *bytes.Buffer) {
	t.Helper()

	out := new(bytes.Buffer)
	app := &appState{
		noProgress: true,
		in:         strings.NewReader(input),
		out:        out,
	}
	app.probeFn = func(string) bool { return true }
	app.convertFn = func(_ context.Context, path string, _ media.Kind) (string, error) {
		return strings.TrimSuffix(path, filepath.Ext(path)) + ".wav", nil
	}
	app.fetchFn = func(context.Context, string) (string, error) {
		return "downloads/video.wav", nil
	}
	app.runPipelineFn = func(context.Context, tafrigh.Config) error { return nil }

	return app, out
}

// withKeys gives the app a credential registry built from real environment
// loading, so lookups behave exactly as they do in production.
func withKeys(t *testing.T, app *appState, envVars map[string]string) {
	t.Helper()

	for _, envVar := range []string{
		"WIT_API_KEY_ENGLISH",
		"WIT_API_KEY_ARABIC",
		"WIT_API_KEY_FRENCH",
		"WIT_API_KEY_JAPANESE",
	} {
		t.Setenv(envVar, "")
	}
	for envVar, value := range envVars {
		t.Setenv(envVar, value)
	}

	keys, err := config.Load("")
	require.NoError(t, err)
	app.keys = keys
}
