package options

import (
	"fmt"

	"github.com/jvr-guru/actuatord/internal/api"
	"github.com/jvr-guru/actuatord/internal/cmd/output"
	"github.com/jvr-guru/actuatord/internal/config"
	"github.com/jvr-guru/actuatord/internal/domain"
	"github.com/jvr-guru/actuatord/internal/printer"
)

type CmdOption func(*CmdOptions) error

type CmdOptions struct {
	ConfigLoader      config.Loader
	ConfigInitializer config.Initializer
	HealthPrinter     output.Printer[api.Health]
	InfoPrinter       output.Printer[domain.Info]
}

func defaultOptions() CmdOptions {
	configLoader := &config.DefaultLoader{}
	return CmdOptions{
		ConfigLoader:      configLoader,
		ConfigInitializer: configLoader,
		HealthPrinter:     &printer.HealthPrinter{},
		InfoPrinter:       &printer.InfoPrinter{},
	}
}

// NewOptions applies opt over the defaults, later options overriding earlier ones.
func NewOptions(opt ...CmdOption) (CmdOptions, error) {
	opts := defaultOptions()

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return CmdOptions{}, err
		}
	}
	return opts, nil
}

func WithConfigLoader(l config.Loader) CmdOption {
	return func(o *CmdOptions) error {
		if l == nil {
			return fmt.Errorf("config loader cannot be nil")
		}
		o.ConfigLoader = l
		return nil
	}
}

func WithConfigInitializer(i config.Initializer) CmdOption {
	return func(o *CmdOptions) error {
		if i == nil {
			return fmt.Errorf("config initializer cannot be nil")
		}
		o.ConfigInitializer = i
		return nil
	}
}

func WithHealthPrinter(p output.Printer[api.Health]) CmdOption {
	return func(o *CmdOptions) error {
		if p == nil {
			return fmt.Errorf("health printer cannot be nil")
		}
		o.HealthPrinter = p
		return nil
	}
}

func WithInfoPrinter(p output.Printer[domain.Info]) CmdOption {
	return func(o *CmdOptions) error {
		if p == nil {
			return fmt.Errorf("info printer cannot be nil")
		}
		o.InfoPrinter = p
		return nil
	}
}
