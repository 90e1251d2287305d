// Package app implements the application layer for kiln.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	cache        ports.ScriptCache
	configLoader ports.ConfigLoader
	preprocessor ports.Preprocessor
	compiler     ports.Compiler
	runner       ports.Runner
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	cache ports.ScriptCache,
	loader ports.ConfigLoader,
	preprocessor ports.Preprocessor,
	compiler ports.Compiler,
	runner ports.Runner,
	log ports.Logger,
) *App {
	return &App{
		cache:        cache,
		configLoader: loader,
		preprocessor: preprocessor,
		compiler:     compiler,
		runner:       runner,
		logger:       log,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	Mode domain.Mode
	// Toolchain names the toolchain explicitly. Empty selects by extension.
	Toolchain string
}

// Run compiles the script into the cache and executes it with args. The
// script path as given becomes the program's argv[0]. A program killed by
// a signal is reported on the log and returned as domain.ErrProgramSignaled.
func (a *App) Run(ctx context.Context, script string, args []string, opts RunOptions) (domain.Termination, error) {
	// 1. Select the toolchain
	cfg, err := a.configLoader.Load()
	if err != nil {
		return domain.Termination{}, zerr.Wrap(err, "failed to load configuration")
	}

	tc, err := cfg.Select(opts.Toolchain, script)
	if err != nil {
		return domain.Termination{}, err
	}

	// 2. Resolve the cache slot
	dir, err := a.cache.Resolve()
	if err != nil {
		return domain.Termination{}, err
	}
	if err := a.cache.Prepare(dir); err != nil {
		return domain.Termination{}, err
	}

	identity, key, err := a.cache.Key(script)
	if err != nil {
		return domain.Termination{}, err
	}
	entry := dir.Entry(key, tc)

	// 3. Preprocess
	//nolint:gosec // identity is the script the user asked to run
	source, err := os.ReadFile(string(identity))
	if err != nil {
		return domain.Termination{}, zerr.With(
			zerr.Wrap(errors.Join(domain.ErrScriptReadFailed, err), "failed to read script"),
			"path", script,
		)
	}

	input, err := a.preprocessor.Preprocess(source, opts.Mode, tc, identity, entry.Base)
	if err != nil {
		return domain.Termination{}, err
	}

	// 4. Compile
	if err := a.compiler.Compile(ctx, tc, input, entry.Executable); err != nil {
		return domain.Termination{}, zerr.With(err, "toolchain", tc.Name)
	}

	// 5. Execute
	term, err := a.runner.Run(ctx, entry.Executable, script, args)
	if err != nil {
		return domain.Termination{}, err
	}

	if term.Signaled {
		a.logger.Error(zerr.With(
			zerr.New(fmt.Sprintf("%s %d", domain.ErrProgramSignaled.Error(), term.Signal)),
			"signal", term.Signal,
		))
		return term, domain.ErrProgramSignaled
	}

	return term, nil
}

// ShowCacheDir creates the cache directory if needed and prints its path.
func (a *App) ShowCacheDir(_ context.Context, w io.Writer) error {
	dir, err := a.cache.Resolve()
	if err != nil {
		return err
	}
	if err := a.cache.Prepare(dir); err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, dir.String())
	return err
}

// ClearCacheDir removes the cached files. Individual failures are logged
// without aborting; only an unlistable directory is an error.
func (a *App) ClearCacheDir(_ context.Context) error {
	dir, err := a.cache.Resolve()
	if err != nil {
		return err
	}

	report, err := a.cache.Clear(dir)
	if err != nil {
		return err
	}

	for _, f := range report.Removed {
		a.logger.Info("deleted " + f.Path)
	}
	for _, f := range report.Failed {
		a.logger.Error(zerr.With(zerr.Wrap(f.Err, "failed to delete"), "path", f.Path))
	}
	for _, iterErr := range report.IterErrors {
		a.logger.Warn("skipped cache entry: " + iterErr.Error())
	}

	a.logger.Info(fmt.Sprintf("removed %s, reclaimed %s",
		pluralFiles(len(report.Removed)),
		humanize.Bytes(report.ReclaimedBytes()),
	))

	return nil
}

func pluralFiles(n int) string {
	if n == 1 {
		return "1 file"
	}
	return humanize.Comma(int64(n)) + " files"
}
