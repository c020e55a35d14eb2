// Package cli wires the stretch commands together.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/akyairhashvil/morning-stretch/internal/catalog"
	"github.com/akyairhashvil/morning-stretch/internal/config"
	"github.com/akyairhashvil/morning-stretch/internal/database"
	"github.com/akyairhashvil/morning-stretch/internal/util"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	dbPath     string
	jsonOutput bool
	theme      string
}

// NewRootCmd builds the command tree. Running it without a subcommand starts
// the routine.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:     config.AppName,
		Short:   "A guided morning stretching routine",
		Version: versionLabel(),
		Long: `stretch walks through a list of timed exercises, counting each one
down on a ring with audio cues for the start and the last three seconds.
Finished and abandoned routines are kept in a local history.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoutine(cmd.Context(), opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", filepath.Join(util.ConfigDir(config.AppName), config.SettingsFileName), "settings file")
	pf.StringVar(&opts.dbPath, "db", filepath.Join(util.DataDir(config.AppName), config.DBFileName), "history database")
	pf.BoolVar(&opts.jsonOutput, "json", false, "output in JSON format")
	root.Flags().StringVar(&opts.theme, "theme", "", "colour theme, remembered for later runs")

	root.AddCommand(newHistoryCmd(opts), newReportCmd(opts), newExercisesCmd(opts))
	return root
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// env holds what every command needs once settings are loaded.
type env struct {
	settings config.Settings
	catalog  *catalog.Catalog
	db       *database.Database
	logFile  *os.File
	log      *slog.Logger
}

func setup(ctx context.Context, opts *options) (*env, error) {
	settings, err := config.LoadSettings(opts.configPath)
	if err != nil {
		return nil, err
	}
	dataDir := filepath.Dir(opts.dbPath)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	logFile, err := util.OpenLogFile(filepath.Join(dataDir, config.LogFileName))
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	e := &env{settings: settings, logFile: logFile}
	e.log = util.SetupLogging(logFile, settings.LogLevel)

	e.catalog, err = catalog.Load(settings.Exercises)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.db, err = database.Open(ctx, opts.dbPath)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.log.Debug("environment ready", "db", opts.dbPath, "exercises", len(e.catalog.Exercises))
	return e, nil
}

func (e *env) Close() {
	if e.db != nil {
		util.LogError("close database", e.db.Close())
	}
	if e.logFile != nil {
		_ = e.logFile.Close()
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
