// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package batch runs schema files through resolution and translation,
// several files at a time.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/gatsbylabs/malt/internal/mschema"
	"github.com/gatsbylabs/malt/internal/resolve"
	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

// GeneratedDir is the directory created next to each input when no output
// directory is configured.
const GeneratedDir = "__generated__"

// DefaultConcurrency bounds the number of files processed at once.
const DefaultConcurrency = 4

var (
	ErrNoInputs        = errors.New("no schema files found")
	ErrOutputCollision = errors.New("output path already produced by another input")
)

// Options configure a batch run.
type Options struct {
	Translator  translate.Translator
	Target      translate.Target
	Resolve     resolve.Options
	OutDir      string // empty means <input dir>/__generated__
	Concurrency int
	DryRun      bool // resolve and translate without writing
}

// Result is the outcome for one input file. Err may be set while Output is
// too: schemas that failed are left out of an otherwise written file.
type Result struct {
	Input  string
	Output string
	Model  *typemodel.Model
	Err    error
}

// Runner processes schema files.
type Runner struct {
	opts   Options
	logger *log.Logger
}

// New creates a Runner. A nil logger discards diagnostics.
func New(opts Options, logger *log.Logger) *Runner {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{opts: opts, logger: logger}
}

// Run expands inputs and processes every schema file found. The returned
// error covers expansion and cancellation only; per-file failures are
// reported in the results, which keep input order.
func (r *Runner) Run(ctx context.Context, inputs []string) ([]Result, error) {
	if r.opts.Translator == nil {
		return nil, errors.New("batch: no translator configured")
	}

	files, err := Expand(inputs)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoInputs
	}
	r.logger.Debug("expanded inputs", "files", len(files), "concurrency", r.opts.Concurrency)

	results := make([]Result, len(files))
	owners := make(map[string]string, len(files))
	for i, f := range files {
		results[i].Input = f
		out := r.OutputPath(f)
		if prev, taken := owners[out]; taken {
			results[i].Err = fmt.Errorf("%w: %s (from %s)", ErrOutputCollision, out, prev)
			continue
		}
		owners[out] = f
		results[i].Output = out
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Output = ""
				results[i].Err = err
				return err
			}
			r.process(&results[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

func (r *Runner) process(res *Result) {
	logger := r.logger.With("file", res.Input)
	out := res.Output
	res.Output = ""

	data, err := os.ReadFile(res.Input)
	if err != nil {
		res.Err = fmt.Errorf("failed to read schema file: %w", err)
		return
	}
	doc, err := mschema.Decode(data, res.Input)
	if err != nil {
		res.Err = err
		return
	}

	model, err := resolve.CompileUnit(res.Input, doc, r.opts.Resolve)
	res.Model = model
	res.Err = err
	if len(model.Roots()) == 0 {
		if res.Err == nil {
			logger.Warn("no schemas declared")
		}
		return
	}
	logger.Debug("resolved", "roots", len(model.Roots()), "types", model.Len())

	content, err := r.opts.Translator.Translate(filepath.Base(res.Input), model, r.opts.Target)
	if err != nil {
		res.Err = errors.Join(res.Err, fmt.Errorf("%s: %w", res.Input, err))
		return
	}
	if r.opts.DryRun {
		res.Output = out
		return
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o750); err != nil {
		res.Err = errors.Join(res.Err, fmt.Errorf("failed to create output directory: %w", err))
		return
	}
	if err := os.WriteFile(out, content, 0o600); err != nil {
		res.Err = errors.Join(res.Err, fmt.Errorf("failed to write %s: %w", out, err))
		return
	}
	res.Output = out
	logger.Debug("wrote output", "path", out, "bytes", len(content))
}

// OutputPath returns where the translation of input is written.
func (r *Runner) OutputPath(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	dir := r.opts.OutDir
	if dir == "" {
		dir = filepath.Join(filepath.Dir(input), GeneratedDir)
	}
	return filepath.Join(dir, base+r.opts.Translator.FileExtension())
}

// Expand resolves inputs to schema files. Directories are walked
// recursively, skipping generated output; explicitly named files are kept
// whatever their extension. Duplicates are dropped.
func Expand(inputs []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, in := range inputs {
		info, err := os.Stat(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		if !info.IsDir() {
			add(in)
			continue
		}
		err = filepath.WalkDir(in, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if d.Name() == GeneratedDir {
					return filepath.SkipDir
				}
				return nil
			}
			if mschema.IsSchemaFile(p) {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", in, err)
		}
	}
	return files, nil
}

// Failed counts results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}
