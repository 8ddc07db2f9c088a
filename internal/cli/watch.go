package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounceDelay batches rapid successive writes into a single
// re-conversion. Editors and atomic-save tools commonly emit several
// events per save.
const debounceDelay = 100 * time.Millisecond

// watch re-converts the input file whenever it changes, until
// interrupted. A failing conversion is logged and the loop keeps
// running, so a half-saved file does not kill the session.
func watch(input string, opts Options) error {
	path, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", input, err)
	}
	if opts.Output != "" {
		out, err := filepath.Abs(opts.Output)
		if err != nil {
			return fmt.Errorf("resolve %q: %w", opts.Output, err)
		}
		// Writing the output into the watched file would re-trigger
		// the loop on its own writes.
		if out == path {
			return fmt.Errorf("-o %q is the watched input file", opts.Output)
		}
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory containing the file rather than the file
	// itself. This keeps working across atomic replaces (temp file +
	// rename) and file recreation.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %q: %w", dir, err)
	}
	filename := filepath.Base(path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching",
		zap.String("file", path),
		zap.String("from", opts.From),
		zap.String("to", opts.To),
	)
	reconvert(path, opts, logger)

	var debounce *time.Timer
	timerC := func() <-chan time.Time {
		if debounce == nil {
			return nil
		}
		return debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping")
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
			} else {
				debounce.Stop()
				debounce.Reset(debounceDelay)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))

		case <-timerC():
			reconvert(path, opts, logger)
		}
	}
}

func reconvert(input string, opts Options, logger *zap.Logger) {
	in, err := readInput(input)
	if err != nil {
		logger.Warn("conversion failed", zap.Error(err))
		return
	}
	out, err := Convert(in, opts.ConvertOptions)
	if err != nil {
		logger.Warn("conversion failed", zap.Error(err))
		return
	}
	n, err := writeOutput(opts.Output, out)
	if err != nil {
		logger.Warn("conversion failed", zap.Error(err))
		return
	}
	target := opts.Output
	if target == "" {
		target = "stdout"
	}
	logger.Info("converted", zap.String("output", target), zap.Int("bytes", n))
}
