package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/anasabibi/transcribe/internal/config"
	"github.com/anasabibi/transcribe/internal/media"
	"go.uber.org/zap"
)

// runSession is the interactive workflow: one mode prompt, then either a
// remote download or a local file walk, each file ending in a transcription
// dispatch. Converter and downloader failures abort the whole run; pipeline
// failures only skip the file at hand (see dispatch).
func (a *appState) runSession(ctx context.Context) error {
	p := newPrompter(a.in, a.outWriter())

	mode, err := p.ask("Transcribe a YouTube video (Y) or a local file (L)? [Y/L]: ")
	if err != nil {
		return err
	}

	switch strings.ToUpper(mode) {
	case "Y":
		return a.runRemote(ctx, p)
	case "L":
		return a.runLocal(ctx, p)
	default:
		return fmt.Errorf("invalid choice %q: expected Y or L", mode)
	}
}

func (a *appState) runRemote(ctx context.Context, p *prompter) error {
	url, err := p.ask("Enter the YouTube video link: ")
	if err != nil {
		return err
	}

	language, err := p.ask(languagePrompt(""))
	if err != nil {
		return err
	}

	wavPath, err := a.fetchFn(ctx, url)
	if err != nil {
		fmt.Fprintln(a.outWriter(), "Error downloading YouTube audio. Check the logs for more information.")
		return err
	}

	return a.dispatch(ctx, wavPath, language)
}

func (a *appState) runLocal(ctx context.Context, p *prompter) error {
	path, err := p.ask("Enter the path to the local file or directory: ")
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("inspect path %s: %w", path, err)
	}

	if info.IsDir() {
		return a.runDirectory(ctx, p, path)
	}

	return a.runSingleFile(ctx, p, path)
}

// runDirectory walks the immediate entries of dir in name order. Files with
// unrecognized extensions and subdirectories are skipped silently.
func (a *appState) runDirectory(ctx context.Context, p *prompter, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("list directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		kind := media.Classify(path)
		if kind == media.KindUnknown {
			a.log().Debug("skipping unrecognized file", zap.String("path", path))
			continue
		}

		wavPath := path
		if kind.NeedsConversion() {
			wavPath, err = a.convertFn(ctx, path, kind)
			if err != nil {
				fmt.Fprintln(a.outWriter(), conversionErrorMessage(kind))
				return err
			}
			fmt.Fprintf(a.outWriter(), "%s converted to WAV: %s\n", strings.ToUpper(kind.String()), wavPath)
		}

		language, err := p.ask(languagePrompt(entry.Name()))
		if err != nil {
			return err
		}

		if err := a.dispatch(ctx, wavPath, language); err != nil {
			return err
		}
	}

	return nil
}

func (a *appState) runSingleFile(ctx context.Context, p *prompter, path string) error {
	kind := media.Classify(path)

	wavPath := path
	if kind.NeedsConversion() {
		converted, err := a.convertFn(ctx, path, kind)
		if err != nil {
			fmt.Fprintln(a.outWriter(), conversionErrorMessage(kind))
			return err
		}
		fmt.Fprintf(a.outWriter(), "%s converted to WAV: %s\n", strings.ToUpper(kind.String()), converted)
		wavPath = converted
	}

	language, err := p.ask(languagePrompt(""))
	if err != nil {
		return err
	}

	return a.dispatch(ctx, wavPath, language)
}

func languagePrompt(fileName string) string {
	codes := strings.Join(config.Languages(), ", ")
	if fileName == "" {
		return fmt.Sprintf("Enter the language sign (e.g., %s): ", codes)
	}
	return fmt.Sprintf("Enter the language sign for %s (e.g., %s): ", fileName, codes)
}

func conversionErrorMessage(kind media.Kind) string {
	if kind == media.KindMP3 {
		return "Error converting MP3 to WAV. Check the logs for more information."
	}
	return "Error converting video to audio. Check the logs for more information."
}
