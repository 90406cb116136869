package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/tally/internal/config"
	"github.com/harrison/tally/internal/display"
	"github.com/harrison/tally/internal/filelock"
	"github.com/harrison/tally/internal/history"
	"github.com/harrison/tally/internal/logger"
)

// app carries the global flags and the per-invocation state shared by all
// subcommands.
type app struct {
	configPath string
	logLevel   string
	logToFile  bool
	noHistory  bool
	output     string

	cfg     *config.Config
	log     logger.Logger
	fileLog *logger.FileLogger
}

// wrap runs setup before fn and releases resources afterwards, whether or not
// fn succeeds.
func (a *app) wrap(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.setup(cmd); err != nil {
			return err
		}
		defer a.teardown()
		return fn(cmd, args)
	}
}

// setup loads configuration, applies flag overrides and builds the loggers.
func (a *app) setup(cmd *cobra.Command) error {
	var cfg *config.Config
	var err error
	if a.configPath != "" {
		cfg, err = config.LoadConfig(a.configPath)
	} else {
		cfg, err = config.LoadConfigFromDir(".")
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var logLevel *string
	if cmd.Flags().Changed("log-level") {
		logLevel = &a.logLevel
	}
	var logToFile *bool
	if cmd.Flags().Changed("log-file") {
		logToFile = &a.logToFile
	}
	cfg.MergeWithFlags(logLevel, logToFile, &a.noHistory)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	a.log = console
	if cfg.LogToFile {
		fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		a.fileLog = fileLog
		a.log = logger.Multi(console, fileLog)
	}

	a.log.LogDebug(fmt.Sprintf("running %q with log level %s", cmd.CommandPath(), cfg.LogLevel))
	return nil
}

func (a *app) teardown() {
	if a.fileLog != nil {
		if err := a.fileLog.Close(); err != nil {
			a.log.LogWarn(fmt.Sprintf("failed to close run log: %v", err))
		}
		a.fileLog = nil
	}
}

// openHistory opens the configured history database.
func (a *app) openHistory() (*history.Store, error) {
	dbPath, err := a.cfg.GetHistoryDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve history database: %w", err)
	}
	store, err := history.NewStore(dbPath)
	if err != nil {
		return nil, err
	}
	a.log.LogDebug(fmt.Sprintf("history database: %s", store.Path()))
	return store, nil
}

// record stores entries under one run ID. History is best effort: failures
// are logged and never fail the command.
func (a *app) record(ctx context.Context, entries ...*history.Entry) {
	if !a.cfg.History.Enabled || len(entries) == 0 {
		return
	}

	store, err := a.openHistory()
	if err != nil {
		a.log.LogWarn(fmt.Sprintf("history not recorded: %v", err))
		return
	}
	defer store.Close()

	runID := history.NewRunID()
	for _, e := range entries {
		e.RunID = runID
		if err := store.Record(ctx, e); err != nil {
			a.log.LogWarn(fmt.Sprintf("history not recorded: %v", err))
			return
		}
	}
	a.log.LogTrace(fmt.Sprintf("recorded %d history entries (run %s)", len(entries), runID))

	removed, err := store.Prune(ctx, a.cfg.History.KeepEntries)
	if err != nil {
		a.log.LogWarn(fmt.Sprintf("history prune failed: %v", err))
		return
	}
	if removed > 0 {
		a.log.LogDebug(fmt.Sprintf("pruned %d old history entries", removed))
	}
}

// emit renders a result to stdout and, with --output, to the report file.
// The report copy is always uncolored.
func (a *app) emit(cmd *cobra.Command, render func(w io.Writer, colorOn bool) error) error {
	out := cmd.OutOrStdout()
	if err := render(out, display.ColorEnabled(out)); err != nil {
		return err
	}

	if a.output == "" {
		return nil
	}

	var buf bytes.Buffer
	if err := render(&buf, false); err != nil {
		return err
	}
	onWait := func(lockPath string) {
		a.log.LogInfo(fmt.Sprintf("waiting for %s", lockPath))
	}
	if err := filelock.LockAndWrite(a.output, buf.Bytes(), onWait); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	a.log.LogInfo(fmt.Sprintf("wrote %s", a.output))
	return nil
}
