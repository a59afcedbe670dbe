package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvr-guru/actuatord/internal/cmd"
	cmdopts "github.com/jvr-guru/actuatord/internal/cmd/options"
	"github.com/jvr-guru/actuatord/internal/cmd/output"
	"github.com/jvr-guru/actuatord/internal/config"
	"github.com/jvr-guru/actuatord/internal/daemon"
	"github.com/jvr-guru/actuatord/internal/domain"
	"github.com/jvr-guru/actuatord/internal/flags"
)

type InfoCmd struct {
	*cmd.BaseCmd
	Format    cmd.OutputFormat
	cfgLoader config.Loader
	printer   output.Printer[domain.Info]
}

func NewInfoCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &InfoCmd{
		BaseCmd:   baseCmd,
		Format:    cmd.FormatText,
		cfgLoader: opts.ConfigLoader,
		printer:   opts.InfoPrinter,
	}

	cobraCommand := &cobra.Command{
		Use:   "info [--format]",
		Short: "Builds the info document locally",
		Long:  "Builds the info document from all configured contributors without starting a server.",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	allowed := cmd.AllowedOutputFormats()
	cobraCommand.Flags().Var(
		&c.Format,
		flagFormat,
		fmt.Sprintf("Specify the output format (one of: %s)", allowed.String()),
	)

	return cobraCommand, nil
}

func (c *InfoCmd) run(cobraCmd *cobra.Command, _ []string) error {
	handler, err := cmd.NewHandler(c.Format, cobraCmd.OutOrStdout(), c.printer)
	if err != nil {
		return err
	}

	cfg, err := c.cfgLoader.Load(flags.ConfigFile)
	if err != nil {
		return handler.HandleError(err)
	}

	var (
		details      map[string]string
		includeBuild bool
	)
	if cfg.Info != nil {
		details = cfg.Info.Details
		if cfg.Info.IncludeBuild != nil {
			includeBuild = *cfg.Info.IncludeBuild
		}
	}

	provider, err := daemon.NewInfoProvider(details, includeBuild)
	if err != nil {
		return handler.HandleError(err)
	}

	doc := provider.Info()
	c.Logger().Debug("Built info document", "keys", len(doc))

	return handler.HandleResult(doc)
}
