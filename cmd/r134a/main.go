package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"go.ngs.io/r134a-api/internal/cli"
	"go.ngs.io/r134a-api/internal/domain"
	"go.ngs.io/r134a-api/internal/observability"
	"go.ngs.io/r134a-api/internal/usecase"
)

const version = "0.1.0"

var logLevel = "warn"

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newUseCase() *usecase.SaturationUseCase {
	return usecase.NewSaturationUseCase(domain.R134a())
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "r134a",
		Short: "r134a computes saturation properties of the refrigerant R134a",
		Long: `r134a computes saturation pressure, liquid and vapor enthalpy and latent heat
of the refrigerant R134a from a saturation temperature in degrees Celsius.

Run without a subcommand to start the interactive prompt.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return observability.SetupLogger(logLevel, "text", os.Stderr)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := cli.NewSession(newUseCase(), cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", logLevel, "log level (trace, debug, info, warn, error, fatal, panic)")

	cmd.AddCommand(
		NewCalcCommand(),
		NewGUICommand(),
		NewVersionCommand(),
	)

	return cmd
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "r134a version %s\n", version)
			logrus.Debug("version printed")
		},
	}
}
