// Package tafrigh drives the external tafrigh transcription pipeline, which
// segments WAV audio, sends the chunks to Wit.ai, and writes transcript
// files into an output directory.
package tafrigh

// Format is a transcript output format understood by the pipeline.
type Format string

const (
	FormatTXT Format = "txt"
	FormatSRT Format = "srt"
)

// InputConfig describes what the pipeline should transcribe.
type InputConfig struct {
	UrlsOrPaths       []string
	SkipIfOutputExist bool
	PlaylistItems     string
	DownloadRetries   int
	Verbose           bool
}

// WitConfig carries the credential pool and segmentation bound for the
// Wit.ai transcription backend.
type WitConfig struct {
	ClientAccessTokens []string
	MaxCuttingDuration int
}

// OutputConfig controls transcript post-processing and where files land.
type OutputConfig struct {
	MinWordsPerSegment     int
	SaveFilesBeforeCompact bool
	SaveYtDlpResponses     bool
	OutputSample           int
	Formats                []Format
	OutputDir              string
}

// Config is the bundle handed to one pipeline run. Build one per file with
// NewConfig and treat it as consumed after Run.
type Config struct {
	Input    InputConfig
	Wit      WitConfig
	Output   OutputConfig
	Language string
}

// NewConfig assembles the pipeline bundle for a single local WAV file:
// plain-text and SRT transcripts written next to the source, one credential
// in the pool, and the fixed segmentation parameters the workflow uses for
// every file.
func NewConfig(wavPath, language, witAPIKey, outputDir string) Config {
	return Config{
		Input: InputConfig{
			UrlsOrPaths:     []string{wavPath},
			DownloadRetries: 3,
		},
		Wit: WitConfig{
			ClientAccessTokens: []string{witAPIKey},
			MaxCuttingDuration: 5,
		},
		Output: OutputConfig{
			MinWordsPerSegment: 1,
			Formats:            []Format{FormatTXT, FormatSRT},
			OutputDir:          outputDir,
		},
		Language: language,
	}
}
