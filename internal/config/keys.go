// Package config loads the per-language Wit.ai API credentials that key the
// transcription pipeline.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ErrNoKeys means no recognized language has a configured credential; the
// process cannot do anything useful and must refuse to start.
var ErrNoKeys = errors.New("no Wit.ai API key configured; set at least one WIT_API_KEY_* variable")

var languageEnvVars = []struct {
	Code   string
	EnvVar string
}{
	{"EN", "WIT_API_KEY_ENGLISH"},
	{"AR", "WIT_API_KEY_ARABIC"},
	{"FR", "WIT_API_KEY_FRENCH"},
	{"JA", "WIT_API_KEY_JAPANESE"},
}

// Keys maps language codes to Wit.ai credentials. It is built once at
// startup and read-only afterwards.
type Keys struct {
	byCode map[string]string
}

// Load reads credentials from the environment, after merging in the given
// .env file when it exists (a missing file is fine; explicit environment
// variables take precedence over file values, as godotenv never overrides).
// It fails with ErrNoKeys when every recognized language is unconfigured.
func Load(envFile string) (*Keys, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	keys := &Keys{byCode: make(map[string]string, len(languageEnvVars))}
	for _, lang := range languageEnvVars {
		if value := strings.TrimSpace(os.Getenv(lang.EnvVar)); value != "" {
			keys.byCode[lang.Code] = value
		}
	}

	if len(keys.byCode) == 0 {
		return nil, ErrNoKeys
	}

	return keys, nil
}

// Lookup returns the credential for a language code. The code is matched
// case-insensitively; unknown or unconfigured codes report ok=false.
func (k *Keys) Lookup(code string) (string, bool) {
	if k == nil {
		return "", false
	}
	key, ok := k.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return key, ok
}

// Languages returns the recognized language codes in stable order,
// regardless of which ones are configured. Used for prompt text.
func Languages() []string {
	codes := make([]string, 0, len(languageEnvVars))
	for _, lang := range languageEnvVars {
		codes = append(codes, lang.Code)
	}
	return codes
}
