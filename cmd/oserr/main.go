//go:build unix

// Command oserr probes paths with access(2) and reports each failure as a
// path-carrying error.
//
// Usage:
//
//	oserr [--mode r|w|x|f] [--format text|json|yaml|cbor] [--allocator heap|mmap]
//	      [--jobs N] [--log-level LEVEL] [--log-json] [--verbose] PATH...
//
// The exit status is 1 if any path failed the probe and 2 on a usage error.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/oserr/alloc"
	"github.com/jmgilman/go/oserr/errors"
	"github.com/jmgilman/go/oserr/fsys"
	"github.com/jmgilman/go/oserr/logging"
)

// exitError carries a process exit status without a message.
type exitError int

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", int(e)) }
func (e exitError) ExitCode() int { return int(e) }

// usageError reports bad flags or arguments.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }
func (e usageError) ExitCode() int { return 2 }

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		code := 1
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			code = coder.ExitCode()
		}
		if _, silent := err.(exitError); !silent {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(code)
	}
}

type options struct {
	mode      string
	format    string
	allocator string
	jobs      int
	logLevel  string
	logJSON   bool
	verbose   bool
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("oserr", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.mode, "mode", "m", "f", "access mode to probe: any of r, w, x, or f for existence")
	flagSet.StringVarP(&opts.format, "format", "o", "text", "report format: text, json, yaml or cbor")
	flagSet.StringVar(&opts.allocator, "allocator", "heap", "allocator for path buffers: heap or mmap")
	flagSet.IntVarP(&opts.jobs, "jobs", "j", 4, "number of paths probed concurrently")
	flagSet.StringVar(&opts.logLevel, "log-level", "warn", "minimum log level: debug, info, warn or error")
	flagSet.BoolVar(&opts.logJSON, "log-json", false, "write JSON log records with zap")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log every probe and allocator statistics (same as --log-level debug)")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: oserr [flags] PATH...\n\nFlags:\n%s", flagSet.FlagUsages())
	}

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return usageError{err}
	}

	paths := flagSet.Args()
	if len(paths) == 0 {
		flagSet.Usage()
		return usageError{fmt.Errorf("at least one path is required")}
	}

	if opts.jobs < 1 {
		return usageError{fmt.Errorf("--jobs must be at least 1, got %d", opts.jobs)}
	}

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return usageError{err}
	}
	if opts.verbose {
		level = logging.LevelDebug
	}

	mode, ok := fsys.ParseAccessMode(opts.mode)
	if !ok {
		return usageError{fmt.Errorf("invalid mode %q", opts.mode)}
	}

	report, finish, err := reporter(opts.format, stdout)
	if err != nil {
		return usageError{err}
	}

	base, err := newAllocator(opts.allocator)
	if err != nil {
		return usageError{err}
	}

	logger, sync := newLogger(level, opts.logJSON, stderr)
	defer sync()
	alloc.SetLogger(logger)
	defer alloc.SetLogger(nil)

	counting := alloc.NewCounting(base)
	prev := alloc.SetDefault(counting)
	defer alloc.SetDefault(prev)

	ctx := context.Background()
	results := probe(ctx, logger, paths, mode, opts)

	failed := 0
	for _, perr := range results {
		if perr == nil {
			continue
		}
		failed++
		if err := report(perr); err != nil {
			return errors.WrapKind(err, "writing report")
		}
	}

	if err := finish(); err != nil {
		return errors.WrapKind(err, "writing report")
	}

	logger.Debug(ctx, "path buffers",
		"allocator", opts.allocator,
		"allocs", counting.Allocs(),
		"frees", counting.Frees(),
		"live_bytes", counting.LiveBytes(),
	)

	if failed > 0 {
		return exitError(1)
	}
	return nil
}

// probe checks every path with up to opts.jobs concurrent access calls. The
// result for paths[i] is stored at index i.
func probe(ctx context.Context, logger *logging.Logger, paths []string, mode uint32, opts options) []error {
	results := make([]error, len(paths))

	var eg errgroup.Group
	eg.SetLimit(opts.jobs)
	for i, path := range paths {
		eg.Go(func() error {
			perr := fsys.Access(path, mode)
			results[i] = perr
			if perr == nil {
				logger.Debug(ctx, "probe succeeded", "path", path, "mode", opts.mode)
				return nil
			}
			logger.Debug(ctx, "probe failed",
				"path", path,
				"mode", opts.mode,
				"kind", errors.KindOf(perr).String(),
				"retryable", errors.IsRetryable(perr),
			)
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

// reporter returns a function that writes one failure in the given format,
// and a function that completes the output. CBOR reports are written back to
// back as a CBOR sequence; YAML reports as a multi-document stream.
func reporter(format string, w io.Writer) (func(error) error, func() error, error) {
	done := func() error { return nil }

	switch format {
	case "text":
		return func(err error) error {
			_, werr := fmt.Fprintln(w, err)
			return werr
		}, done, nil
	case "json":
		enc := json.NewEncoder(w)
		return func(err error) error {
			return enc.Encode(errors.ToJSON(err))
		}, done, nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return func(err error) error {
			return enc.Encode(errors.ToJSON(err))
		}, enc.Close, nil
	case "cbor":
		return func(err error) error {
			data, cerr := errors.ToCBOR(err)
			if cerr != nil {
				return cerr
			}
			_, werr := w.Write(data)
			return werr
		}, done, nil
	default:
		return nil, nil, fmt.Errorf("invalid format %q", format)
	}
}

// newLogger builds the process logger. The returned function flushes
// buffered records.
func newLogger(level logging.Level, jsonOutput bool, w io.Writer) (*logging.Logger, func()) {
	if jsonOutput {
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(w),
			zapLevel(level),
		)
		zl := zap.New(core)
		return logging.NewZapLogger(zl), func() { _ = zl.Sync() }
	}

	return logging.New(w, logging.Config{Level: level}), func() {}
}

func zapLevel(l logging.Level) zapcore.Level {
	switch l {
	case logging.LevelDebug:
		return zapcore.DebugLevel
	case logging.LevelInfo:
		return zapcore.InfoLevel
	case logging.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
