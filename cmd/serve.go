package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jvr-guru/actuatord/internal/cmd"
	cmdopts "github.com/jvr-guru/actuatord/internal/cmd/options"
	"github.com/jvr-guru/actuatord/internal/config"
	"github.com/jvr-guru/actuatord/internal/daemon"
	"github.com/jvr-guru/actuatord/internal/flags"
)

const (
	flagAddr     = "addr"
	flagBasePath = "base-path"
)

type ServeCmd struct {
	*cmd.BaseCmd
	Addr      string
	BasePath  string
	cfgLoader config.Loader
}

func NewServeCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ServeCmd{
		BaseCmd:   baseCmd,
		cfgLoader: opts.ConfigLoader,
	}

	cobraCommand := &cobra.Command{
		Use:   "serve [--addr] [--base-path]",
		Short: "Runs the management HTTP server",
		Long: "Runs the management HTTP server until interrupted. " +
			"Flags override the values from the config file.",
		Args: cobra.NoArgs,
		RunE: c.run,
	}

	cobraCommand.Flags().StringVar(
		&c.Addr,
		flagAddr,
		daemon.DefaultAddr(),
		"Address for the management server to bind",
	)

	cobraCommand.Flags().StringVar(
		&c.BasePath,
		flagBasePath,
		daemon.DefaultBasePath(),
		"Path under which the management routes are served",
	)

	return cobraCommand, nil
}

func (c *ServeCmd) run(cobraCmd *cobra.Command, _ []string) error {
	logger := c.Logger()

	cfg, err := c.cfgLoader.Load(flags.ConfigFile)
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		return err
	}
	if cfg.Path() != "" {
		logger.Info("Loaded config", "path", cfg.Path())
	}

	addr := configuredAddr(cfg)
	if cobraCmd.Flags().Changed(flagAddr) {
		addr = strings.TrimSpace(c.Addr)
	}

	apiOpts := apiOptionsFromConfig(cfg)
	if cobraCmd.Flags().Changed(flagBasePath) {
		apiOpts = append(apiOpts, daemon.WithBasePath(c.BasePath))
	}

	deps, err := daemon.NewDependencies(logger, addr)
	if err != nil {
		return fmt.Errorf("error configuring actuatord daemon: %w", err)
	}

	d, err := daemon.NewDaemon(
		deps,
		append(daemonOptionsFromConfig(cfg), daemon.WithAPIOptions(apiOpts...))...,
	)
	if err != nil {
		return fmt.Errorf("failed to create actuatord daemon instance: %w", err)
	}

	daemonCtx, daemonCtxCancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer daemonCtxCancel()

	runErr := make(chan error, 1)
	go func() {
		if err := d.StartAndManage(daemonCtx); err != nil && !errors.Is(err, context.Canceled) {
			runErr <- err
		}
		close(runErr)
	}()

	select {
	case <-daemonCtx.Done():
		logger.Info("Shutting down daemon")
		return <-runErr // Wait for graceful shutdown to complete.
	case err := <-runErr:
		if err != nil {
			logger.Error("Daemon exited with error", "error", err)
		}
		return err
	}
}
