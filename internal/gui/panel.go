// Package gui holds the presentation model of the desktop window: one input
// field, a trigger and four read-only output fields.
package gui

import (
	"fmt"
	"strconv"

	"go.ngs.io/r134a-api/internal/domain"
	"go.ngs.io/r134a-api/internal/usecase"
)

// View is what the window displays after a trigger.
type View struct {
	Pressure   string
	HL         string
	HV         string
	LatentHeat string
	// Message is an advisory or error text shown instead of values.
	Message string
}

// Panel is not safe for concurrent use; drive it from the UI event loop.
type Panel struct {
	uc    *usecase.SaturationUseCase
	input string
	view  View
}

// NewPanel creates a panel with initial as the input text.
func NewPanel(uc *usecase.SaturationUseCase, initial string) *Panel {
	return &Panel{uc: uc, input: initial}
}

// Input returns the text of the input field.
func (p *Panel) Input() string {
	return p.input
}

// SetInput replaces the text of the input field.
func (p *Panel) SetInput(s string) {
	p.input = s
}

// Step adds delta degrees to the input field. Unparseable text is treated as 0.
func (p *Panel) Step(delta float64) {
	temp, err := domain.ParseCelsius(p.input)
	if err != nil {
		temp = domain.FromCelsius(0)
	}
	p.input = strconv.FormatFloat(temp.Celsius+delta, 'f', -1, 64)
}

// View returns the current outputs.
func (p *Panel) View() View {
	return p.view
}

// Trigger evaluates the input field and updates the outputs. Temperatures
// outside the fitted band show the advisory message instead of values.
func (p *Panel) Trigger() View {
	p.view = p.evaluate()
	return p.view
}

func (p *Panel) evaluate() View {
	temp, err := domain.ParseCelsius(p.input)
	if err != nil {
		return View{Message: errorMessage(err)}
	}

	corr := p.uc.Correlation()
	if !corr.InFittedRange(temp) {
		return View{Message: fmt.Sprintf("Enter a temperature between %g and %g °C.", corr.Fitted.MinC, corr.Fitted.MaxC)}
	}

	resp, err := p.uc.Evaluate(temp)
	if err != nil {
		return View{Message: errorMessage(err)}
	}

	return View{
		Pressure:   fmt.Sprintf("%.4f", resp.PressureKPa),
		HL:         fmt.Sprintf("%.4f", resp.HL),
		HV:         fmt.Sprintf("%.4f", resp.HV),
		LatentHeat: fmt.Sprintf("%.4f", resp.LatentHeat),
	}
}

func errorMessage(err error) string {
	switch domain.KindOf(err) {
	case domain.KindInputFormat:
		return "Invalid input: enter a number."
	case domain.KindDomain:
		return fmt.Sprintf("Error: %v", err)
	default:
		return fmt.Sprintf("Unexpected error: %v", err)
	}
}
