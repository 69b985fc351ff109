package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/swayws/swayws/internal/config"
	"github.com/swayws/swayws/internal/reconcile"
	"github.com/swayws/swayws/internal/runtimepath"
	"github.com/swayws/swayws/internal/state"
	"github.com/swayws/swayws/internal/sway"
)

var (
	flagMappingFile  string
	flagPreviousFile string
	flagDryRun       bool
	flagLogLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "swayws",
	Short: "Keep sway workspaces on their assigned outputs",
	Long: `swayws pins numbered workspaces to outputs. Declare a mapping with
'map', then use 'focus' and 'move' instead of sway's own workspace
commands; workspaces created along the way end up on the output their
number belongs to. Run 'monitor' in the background to track the
previously focused workspace.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagMappingFile, "mapping-file", "m", "", "path of the output-to-workspace mapping file")
	rootCmd.PersistentFlags().StringVarP(&flagPreviousFile, "previous-file", "p", "", "path of the previous-workspace file")
	rootCmd.PersistentFlags().BoolVarP(&flagDryRun, "dry-run", "n", false, "print commands instead of executing them")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
}

// app bundles what a command needs after config resolution: flags override
// the config file, which overrides the runtime-directory defaults. Paths
// are resolved to concrete values here, before any file I/O.
type app struct {
	cfg    *config.Config
	conn   *sway.Conn
	client *sway.Client
	snap   *sway.Snapshot
	store  *state.Store
	logger *slog.Logger
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(firstOf(flagLogLevel, cfg.LogLevel, "info"))
	if err != nil {
		return nil, err
	}

	mappingPath := firstOf(flagMappingFile, cfg.MappingFile, "")
	if mappingPath == "" {
		if mappingPath, err = runtimepath.MappingPath(); err != nil {
			return nil, err
		}
	}
	previousPath := firstOf(flagPreviousFile, cfg.PreviousFile, "")
	if previousPath == "" {
		if previousPath, err = runtimepath.PreviousPath(); err != nil {
			return nil, err
		}
	}

	conn, err := sway.Dial()
	if err != nil {
		return nil, err
	}

	client := sway.NewClient(conn)
	if flagDryRun {
		client.SetDryRun(os.Stdout)
	}

	return &app{
		cfg:    cfg,
		conn:   conn,
		client: client,
		snap:   sway.NewSnapshot(conn),
		store:  state.NewStore(mappingPath, previousPath),
		logger: logger,
	}, nil
}

func (a *app) Close() {
	a.conn.Close()
}

func (a *app) reconciler() *reconcile.Reconciler {
	return reconcile.New(a.client, a.snap, a.store, a.logger)
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	})), nil
}

// workspaceArgs turns the --number flag and optional NAME argument into a
// workspace target.
func workspaceArgs(cmd *cobra.Command, args []string) (sway.Target, error) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	if cmd.Flags().Changed("number") {
		number, err := cmd.Flags().GetInt32("number")
		if err != nil {
			return sway.Target{}, err
		}
		if name != "" {
			return sway.FullTarget(number, name), nil
		}
		return sway.NumberTarget(number), nil
	}
	if name != "" {
		return sway.NameTarget(name), nil
	}
	return sway.Target{}, fmt.Errorf("a workspace number or name is required")
}
