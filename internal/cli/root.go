package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/anasabibi/transcribe/internal/config"
	"github.com/anasabibi/transcribe/internal/fetch"
	"github.com/anasabibi/transcribe/internal/logging"
	"github.com/anasabibi/transcribe/internal/media"
	"github.com/anasabibi/transcribe/internal/tafrigh"
	"github.com/anasabibi/transcribe/internal/version"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/spf13/cobra"
)

const defaultLogFile = "transcription.log"

type appState struct {
	verbose      bool
	jsonLogs     bool
	noProgress   bool
	envFile      string
	logFile      string
	downloadsDir string

	logger *zap.Logger
	keys   *config.Keys
	in     io.Reader
	out    io.Writer

	loadKeysFn    func(envFile string) (*config.Keys, error)
	probeFn       func(path string) bool
	convertFn     func(ctx context.Context, path string, kind media.Kind) (string, error)
	fetchFn       func(ctx context.Context, url string) (string, error)
	runPipelineFn func(ctx context.Context, cfg tafrigh.Config) error
}

func NewRootCmd() *cobra.Command {
	app := &appState{
		envFile: ".env",
		logFile: defaultLogFile,
	}
	app.loadKeysFn = config.Load
	app.probeFn = media.ProbeWAV
	app.convertFn = app.convertMedia
	app.fetchFn = app.fetchRemote
	app.runPipelineFn = app.runPipeline

	cmd := &cobra.Command{
		Use:   "transcribe",
		Short: "Interactively transcribe local or remote media through Wit.ai",
		Long: `Transcribe converts YouTube links, video files, and MP3s into WAV audio
and runs them through the tafrigh transcription pipeline, producing plain
text and SRT transcripts next to the source audio. All inputs are gathered
through interactive prompts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Resolve(),
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := logging.New(logging.Options{
				Verbose: app.verbose,
				JSON:    app.jsonLogs,
				LogFile: app.logFile,
			})
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			app.logger = logger
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.in = cmd.InOrStdin()
			app.out = cmd.OutOrStdout()

			keys, err := app.loadKeysFn(app.envFile)
			if err != nil {
				return err
			}
			app.keys = keys

			return app.runSession(cmd.Context())
		},
	}

	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.Flags().BoolVar(&app.verbose, "verbose", app.verbose, "Enable verbose logs")
	cmd.Flags().BoolVar(&app.jsonLogs, "json", app.jsonLogs, "Enable JSON logging on the console")
	cmd.Flags().BoolVar(&app.noProgress, "no-progress", app.noProgress, "Disable progress indicators")
	cmd.Flags().StringVar(&app.envFile, "env-file", app.envFile, "Path to the .env file holding WIT_API_KEY_* credentials")
	cmd.Flags().StringVar(&app.logFile, "log-file", app.logFile, "Path of the persisted diagnostic log")
	cmd.Flags().StringVar(&app.downloadsDir, "downloads-dir", app.downloadsDir, "Landing directory for remote downloads (default: \"downloads\" next to the executable)")

	return cmd
}

func (a *appState) convertMedia(ctx context.Context, path string, kind media.Kind) (string, error) {
	return media.NewConverter(a.log()).Convert(ctx, path, kind)
}

func (a *appState) fetchRemote(ctx context.Context, url string) (string, error) {
	dir := a.downloadsDir
	if dir == "" {
		dir = fetch.DefaultDownloadsDir()
	}
	return fetch.NewFetcher(dir, a.log()).Fetch(ctx, url)
}

func (a *appState) runPipeline(ctx context.Context, cfg tafrigh.Config) error {
	runner, err := tafrigh.NewCLIRunner(a.log())
	if err != nil {
		return err
	}
	return runner.Run(ctx, cfg)
}

func (a *appState) log() *zap.Logger {
	if a.logger == nil {
		return zap.NewNop()
	}
	return a.logger
}

func (a *appState) progressEnabled() bool {
	if a.noProgress {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

func (a *appState) outWriter() io.Writer {
	if a.out == nil {
		return os.Stdout
	}
	return a.out
}
