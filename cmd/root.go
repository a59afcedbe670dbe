package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jvr-guru/actuatord/internal/cmd"
	cmdopts "github.com/jvr-guru/actuatord/internal/cmd/options"
	"github.com/jvr-guru/actuatord/internal/flags"
)

// Execute builds and runs the root command.
func Execute() error {
	rootCmd, err := NewRootCmd()
	if err != nil {
		return err
	}

	return rootCmd.Execute()
}

// NewRootCmd creates the root command and registers all subcommands.
func NewRootCmd(opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:           "actuatord <command> [args]",
		Short:         "Management endpoints for health, info and custom diagnostics",
		Long:          longDescription(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       cmd.Version(),
	}

	// Global flags
	flags.InitFlags(rootCmd.PersistentFlags())

	// Long-running commands log to stderr by default, one-shot commands stay quiet unless a log path is set.
	fns := []func() (*cobra.Command, error){
		func() (*cobra.Command, error) { return NewServeCmd(&cmd.BaseCmd{LogOutput: os.Stderr}, opt...) },
		func() (*cobra.Command, error) { return NewInitCmd(&cmd.BaseCmd{}, opt...) },
		func() (*cobra.Command, error) { return NewHealthCmd(&cmd.BaseCmd{}, opt...) },
		func() (*cobra.Command, error) { return NewInfoCmd(&cmd.BaseCmd{}, opt...) },
	}

	for _, fn := range fns {
		c, err := fn()
		if err != nil {
			return nil, fmt.Errorf("failed to create command: %w", err)
		}
		rootCmd.AddCommand(c)
	}

	return rootCmd, nil
}

func longDescription() string {
	return `actuatord serves management endpoints over HTTP: a health check, an info document,
custom diagnostic endpoints, a discovery index and Prometheus metrics.

The health and info commands evaluate the same collaborators locally without starting a server.`
}
