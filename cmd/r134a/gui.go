package main

import (
	"github.com/spf13/cobra"

	"go.ngs.io/r134a-api/internal/gui"
	"go.ngs.io/r134a-api/internal/gui/tray"
)

func NewGUICommand() *cobra.Command {
	initial := "25"

	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Show the calculator in the system tray",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			uc := newUseCase()
			tray.Run(gui.NewPanel(uc, initial), uc.Correlation().Refrigerant)
		},
	}

	cmd.Flags().StringVar(&initial, "temperature", initial, "initial temperature in Celsius")

	return cmd
}
