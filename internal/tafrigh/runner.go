package tafrigh

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Runner executes one transcription pipeline run to completion. Progress is
// drained internally; callers only see success or failure.
type Runner interface {
	Run(ctx context.Context, cfg Config) error
}

// CLIRunner runs the tafrigh command-line tool as a subprocess.
type CLIRunner struct {
	Executable string
	Logger     *zap.Logger
}

// NewCLIRunner resolves the tafrigh executable, honoring a TAFRIGH_PATH
// override before falling back to a PATH lookup.
func NewCLIRunner(logger *zap.Logger) (*CLIRunner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if override := strings.TrimSpace(os.Getenv("TAFRIGH_PATH")); override != "" {
		if _, err := os.Stat(override); err != nil {
			return nil, fmt.Errorf("TAFRIGH_PATH is not usable: %w", err)
		}
		return &CLIRunner{Executable: override, Logger: logger}, nil
	}

	path, err := exec.LookPath("tafrigh")
	if err != nil {
		return nil, fmt.Errorf("tafrigh not found on PATH (install it or set TAFRIGH_PATH): %w", err)
	}

	return &CLIRunner{Executable: path, Logger: logger}, nil
}

// Run invokes the pipeline and blocks until it finishes. Intermediate
// progress lines are consumed and logged at debug level only; stderr is
// captured for the error message on a non-zero exit.
func (r *CLIRunner) Run(ctx context.Context, cfg Config) error {
	if len(cfg.Input.UrlsOrPaths) == 0 {
		return fmt.Errorf("pipeline config has no input")
	}

	args := buildArgs(cfg)
	r.log().Debug("running tafrigh", zap.String("executable", r.Executable), zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, r.Executable, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("attach to pipeline output: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start transcription pipeline: %w", err)
	}

	// Drain with ReadString rather than a Scanner: progress lines have no
	// bounded length, and an undrained pipe would block the pipeline and
	// wedge Wait forever.
	reader := bufio.NewReader(stdout)
	for {
		line, readErr := reader.ReadString('\n')
		if line != "" {
			r.log().Debug("pipeline progress", zap.String("line", strings.TrimRight(line, "\n")))
		}
		if readErr != nil {
			if !errors.Is(readErr, io.EOF) {
				r.log().Debug("pipeline progress read failed; discarding remainder", zap.Error(readErr))
				_, _ = io.Copy(io.Discard, stdout)
			}
			break
		}
	}

	if err := cmd.Wait(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		if diag != "" {
			return fmt.Errorf("transcription pipeline failed: %w (%s)", err, diag)
		}
		return fmt.Errorf("transcription pipeline failed: %w", err)
	}

	return nil
}

func buildArgs(cfg Config) []string {
	args := append([]string{}, cfg.Input.UrlsOrPaths...)

	for _, token := range cfg.Wit.ClientAccessTokens {
		args = append(args, "-w", token)
	}
	if cfg.Wit.MaxCuttingDuration > 0 {
		args = append(args, "--max_cutting_duration", strconv.Itoa(cfg.Wit.MaxCuttingDuration))
	}

	if cfg.Input.SkipIfOutputExist {
		args = append(args, "--skip_if_output_exist")
	}
	if cfg.Input.PlaylistItems != "" {
		args = append(args, "--playlist_items", cfg.Input.PlaylistItems)
	}
	if cfg.Input.DownloadRetries > 0 {
		args = append(args, "--download_retries", strconv.Itoa(cfg.Input.DownloadRetries))
	}
	if cfg.Input.Verbose {
		args = append(args, "--verbose")
	}

	args = append(args, "--min_words_per_segment", strconv.Itoa(cfg.Output.MinWordsPerSegment))
	if cfg.Output.SaveFilesBeforeCompact {
		args = append(args, "--save_files_before_compact")
	}
	if cfg.Output.SaveYtDlpResponses {
		args = append(args, "--save_yt_dlp_responses")
	}
	if cfg.Output.OutputSample > 0 {
		args = append(args, "--output_sample", strconv.Itoa(cfg.Output.OutputSample))
	}

	if len(cfg.Output.Formats) > 0 {
		args = append(args, "-f")
		for _, format := range cfg.Output.Formats {
			args = append(args, string(format))
		}
	}
	if cfg.Output.OutputDir != "" {
		args = append(args, "-o", cfg.Output.OutputDir)
	}

	return args
}

func (r *CLIRunner) log() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}
