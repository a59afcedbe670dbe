package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvr-guru/actuatord/internal/api"
	"github.com/jvr-guru/actuatord/internal/cmd"
	cmdopts "github.com/jvr-guru/actuatord/internal/cmd/options"
	"github.com/jvr-guru/actuatord/internal/cmd/output"
	"github.com/jvr-guru/actuatord/internal/config"
	"github.com/jvr-guru/actuatord/internal/daemon"
	"github.com/jvr-guru/actuatord/internal/flags"
)

const (
	flagFormat = "format"
	flagSeed   = "seed"
	flagCount  = "count"
)

type HealthCmd struct {
	*cmd.BaseCmd
	Format    cmd.OutputFormat
	Seed      uint64
	Count     int
	cfgLoader config.Loader
	printer   output.Printer[api.Health]
}

func NewHealthCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &HealthCmd{
		BaseCmd:   baseCmd,
		Format:    cmd.FormatText,
		cfgLoader: opts.ConfigLoader,
		printer:   opts.HealthPrinter,
	}

	cobraCommand := &cobra.Command{
		Use:   "health [--format] [--seed] [--count]",
		Short: "Evaluates the health indicators locally",
		Long: "Evaluates the health indicators without starting a server and prints each result. " +
			"A non-zero seed makes the results reproducible.",
		Args: cobra.NoArgs,
		RunE: c.run,
	}

	allowed := cmd.AllowedOutputFormats()
	cobraCommand.Flags().Var(
		&c.Format,
		flagFormat,
		fmt.Sprintf("Specify the output format (one of: %s)", allowed.String()),
	)

	cobraCommand.Flags().Uint64Var(
		&c.Seed,
		flagSeed,
		0,
		"Seed for the random health indicator, overrides the config file (0: unseeded)",
	)

	cobraCommand.Flags().IntVar(
		&c.Count,
		flagCount,
		1,
		"Number of health queries to evaluate",
	)

	return cobraCommand, nil
}

func (c *HealthCmd) run(cobraCmd *cobra.Command, _ []string) error {
	logger := c.Logger()

	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}

	handler, err := cmd.NewHandler(c.Format, cobraCmd.OutOrStdout(), c.printer)
	if err != nil {
		return err
	}

	cfg, err := c.cfgLoader.Load(flags.ConfigFile)
	if err != nil {
		return handler.HandleError(err)
	}

	seed := cfg.Seed()
	if cobraCmd.Flags().Changed(flagSeed) {
		seed = c.Seed
	}

	reporter, err := daemon.NewHealthReporter(seed)
	if err != nil {
		return handler.HandleError(err)
	}

	results := make([]api.Health, 0, c.Count)
	for range c.Count {
		h, err := api.DomainHealth(reporter.Health(context.Background())).ToAPIType()
		if err != nil {
			return handler.HandleError(err)
		}
		if !cfg.ShowDetails() {
			h.Details = nil
		}
		results = append(results, h)
	}

	logger.Debug("Evaluated health", "count", len(results), "seed", seed)

	if len(results) == 1 {
		return handler.HandleResult(results[0])
	}

	return handler.HandleResults(results...)
}
