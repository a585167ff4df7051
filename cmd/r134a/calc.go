package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"go.ngs.io/r134a-api/internal/cli"
	"go.ngs.io/r134a-api/internal/usecase"
)

func NewCalcCommand() *cobra.Command {
	output := "text"

	cmd := &cobra.Command{
		Use:   "calc <celsius>",
		Short: "Print saturation properties at one temperature",
		Example: `  r134a calc 25
  r134a calc -- -40
  r134a calc 25 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := newUseCase()
			resp, err := uc.Execute(usecase.SaturationRequest{Temperature: args[0]})
			if err != nil {
				return err
			}

			switch output {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			case "text":
				if resp.Warning != "" {
					color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", resp.Warning)
				}
				cli.WriteResult(cmd.OutOrStdout(), resp)
				return nil
			default:
				return fmt.Errorf("unknown output format %q: expected text or json", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", output, "output format (text, json)")

	return cmd
}
