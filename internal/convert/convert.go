// Package convert runs the read, decode and render steps for one metadata
// dump and reports which step failed.
package convert

import (
	"fmt"
	"time"

	"github.com/danmuck/kernelmeta/internal/metadata"
	"github.com/danmuck/kernelmeta/internal/report"
	"github.com/rs/zerolog/log"
)

const DefaultOutputSuffix = ".md"

type Step string

const (
	StepRead   Step = "read"
	StepDecode Step = "decode"
	StepRender Step = "render"
)

// StepError tags a pipeline failure with the step that produced it.
type StepError struct {
	Step Step
	Path string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Step, e.Path, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

type Options struct {
	OutputSuffix string
	Title        string
}

func DefaultOptions() Options {
	return Options{OutputSuffix: DefaultOutputSuffix}
}

// OutputPath is the report path for inputPath.
func OutputPath(inputPath string, opts Options) string {
	suffix := opts.OutputSuffix
	if suffix == "" {
		suffix = DefaultOutputSuffix
	}
	return inputPath + suffix
}

// Run converts the dump at inputPath into a markdown report next to it and
// returns the report path. Nothing is written unless decoding succeeds.
func Run(inputPath string, opts Options) (string, error) {
	start := time.Now()

	tokens, err := metadata.ReadTokens(inputPath)
	if err != nil {
		return "", &StepError{Step: StepRead, Path: inputPath, Err: err}
	}
	log.Debug().Str("path", inputPath).Int("tokens", len(tokens)).Msg("read metadata tokens")

	rec, err := metadata.Decode(tokens)
	if err != nil {
		return "", &StepError{Step: StepDecode, Path: inputPath, Err: err}
	}
	log.Debug().Str("path", inputPath).Int("buffers", rec.NumBuffers).Msg("decoded metadata")

	out := OutputPath(inputPath, opts)
	if err := report.WriteFile(out, rec, report.Options{Title: opts.Title}); err != nil {
		return "", &StepError{Step: StepRender, Path: out, Err: err}
	}
	log.Debug().Str("output", out).Dur("elapsed", time.Since(start)).Msg("rendered report")
	return out, nil
}
