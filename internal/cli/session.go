// Package cli implements the interactive console for saturation properties.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"go.ngs.io/r134a-api/internal/domain"
	"go.ngs.io/r134a-api/internal/usecase"
)

const rule = "--------------------------------------------------"

var quitWords = map[string]bool{"q": true, "quit": true, "exit": true}

// Session reads temperatures from in and writes results to out until the
// quit sentinel or end of input.
type Session struct {
	uc  *usecase.SaturationUseCase
	in  *bufio.Scanner
	out io.Writer
}

// NewSession creates a console session.
func NewSession(uc *usecase.SaturationUseCase, in io.Reader, out io.Writer) *Session {
	return &Session{
		uc:  uc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run prints the banner and loops over user input. It returns nil on quit or
// end of input, ctx.Err() on cancellation and the read error otherwise.
// Calculation errors never end the loop.
func (s *Session) Run(ctx context.Context) error {
	s.banner()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, "\nEnter the saturation temperature in Celsius (or 'q' to quit): ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}

		line := strings.TrimSpace(s.in.Text())
		if quitWords[strings.ToLower(line)] {
			fmt.Fprintln(s.out, "Exiting. Goodbye!")
			return nil
		}

		s.Handle(line)
	}
}

// Handle evaluates one line of input and prints the outcome.
func (s *Session) Handle(line string) {
	temp, err := domain.ParseCelsius(line)
	if err != nil {
		s.printError(err)
		return
	}

	resp, err := s.uc.Evaluate(temp)
	if err != nil {
		s.printError(err)
		return
	}

	if resp.Extrapolated {
		warn := color.New(color.FgYellow)
		r := s.uc.Correlation().Fitted
		warn.Fprintf(s.out, "Warning: the temperature is outside the usual range for %s (%g to %g °C).\n",
			resp.Refrigerant, r.MinC, r.MaxC)
		warn.Fprintln(s.out, "Results may not be accurate outside this interval.")
	}

	WriteResult(s.out, resp)
}

func (s *Session) banner() {
	corr := s.uc.Correlation()
	fmt.Fprintln(s.out, rule)
	bold(s.out, " %s Saturation Property Calculator\n", corr.Refrigerant)
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "Enter the saturation temperature in Celsius.")
	fmt.Fprintln(s.out, "Properties are reported in:")
	fmt.Fprintln(s.out, "  - Pressure: kPa")
	fmt.Fprintln(s.out, "  - Enthalpies (HL and HV): kJ/kg")
	fmt.Fprintln(s.out, rule)
}

func (s *Session) printError(err error) {
	red := color.New(color.FgRed)
	switch domain.KindOf(err) {
	case domain.KindInputFormat:
		red.Fprintf(s.out, "Input error: %v. Please enter a valid number.\n", err)
	case domain.KindDomain:
		red.Fprintf(s.out, "Input error: %v.\n", err)
	default:
		red.Fprintf(s.out, "Unexpected error: %v\n", err)
	}
}

// WriteResult prints one result block with four decimal places.
func WriteResult(w io.Writer, resp *usecase.SaturationResponse) {
	bold(w, "\n--- Results for T = %.2f °C ---\n", resp.TemperatureC)
	fmt.Fprintf(w, "  Saturation pressure (P): %.4f kPa\n", resp.PressureKPa)
	fmt.Fprintf(w, "  Saturated liquid enthalpy (HL): %.4f kJ/kg\n", resp.HL)
	fmt.Fprintf(w, "  Saturated vapor enthalpy (HV): %.4f kJ/kg\n", resp.HV)
	fmt.Fprintf(w, "  Latent heat of vaporization (HV-HL): %.4f kJ/kg\n", resp.LatentHeat)
}

func bold(w io.Writer, format string, a ...interface{}) {
	color.New(color.Bold).Fprintf(w, format, a...)
}
