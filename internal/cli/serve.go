package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/config"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/engine"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/registry"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/server"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/store"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	ConfigPath string
	Addr       string
	Database   string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Serve the sorting API until interrupted.

Settings come from the built-in defaults, then --config, then flags.
When a run log path is configured every successful run is recorded and
can be fetched from /runs/:id.

Examples:
  sortscope serve
  sortscope serve --addr :8080 --db ./runs.db
  sortscope serve --config ./sortscope.yaml -v`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config")
	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (overrides server.addr)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite run log (overrides store.path)")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = opts.Addr
	}
	if cmd.Flags().Changed("db") {
		cfg.Store.Path = opts.Database
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid settings", err)
	}

	logger := opts.newLogger(cmd.ErrOrStderr(), cfg.SlogLevel())
	gin.SetMode(gin.ReleaseMode)

	metrics := server.NewMetrics()
	engOpts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithMaxArraySize(cfg.Server.MaxArraySize),
		engine.WithTap(metrics.Tap),
	}
	if cfg.Store.Path != "" {
		logger.Info("opening run log", "path", cfg.Store.Path)
		st, err := store.Open(cfg.Store.Path)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer st.Close()
		engOpts = append(engOpts, engine.WithStore(st))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng := engine.New(registry.Default(), engOpts...)
	if err := eng.Resume(ctx); err != nil {
		return WrapExitError(ExitCommandError, "failed to read run log", err)
	}

	srv := server.New(eng, cfg.Server,
		server.WithLogger(logger),
		server.WithMetrics(metrics),
	)
	if err := srv.Run(ctx); err != nil {
		return WrapExitError(ExitFailure, "server stopped", err)
	}
	return nil
}
