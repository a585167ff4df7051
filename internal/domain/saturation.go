package domain

import (
	"math"

	pkgerrors "github.com/pkg/errors"
)

// Messages carried by DomainError.
const (
	MsgNonPositiveKelvin = "temperature in Kelvin must be positive"
	MsgOutsideRange      = "temperature outside correlation's applicable range"
)

// SaturationResult holds the saturation properties at one temperature.
type SaturationResult struct {
	Temperature    Temperature
	PressureKPa    float64
	LiquidEnthalpy float64 // kJ/kg
	VaporEnthalpy  float64 // kJ/kg
	LatentHeat     float64 // kJ/kg, VaporEnthalpy - LiquidEnthalpy.
	// Extrapolated is set when the temperature lies outside the fitted band.
	Extrapolated bool
}

// SaturationPressure returns the saturation pressure in kPa at kelvin.
//
// It fails with *DomainError when kelvin is not positive or when ln(P) or one
// of its terms is not representable, and with *ComputationError for any other
// arithmetic fault.
func (c Correlation) SaturationPressure(kelvin float64) (float64, error) {
	if kelvin <= 0 {
		return 0, &DomainError{Reason: MsgNonPositiveKelvin, Kelvin: kelvin}
	}

	t := kelvin
	lnT := math.Log(t)
	if math.IsNaN(lnT) || math.IsInf(lnT, 0) {
		return 0, &ComputationError{
			Op:  "saturation pressure",
			Err: pkgerrors.Errorf("ln(T) is not finite for T=%g K", t),
		}
	}

	p := c.Pressure
	t2 := t * t
	terms := [...]float64{p.A, p.B / t, p.C * lnT, p.D * t, p.E * t2, p.F / t2}

	// T^2 over- or underflows far outside the fitted band.
	lnP := 0.0
	for _, term := range terms {
		if math.IsInf(term, 0) {
			return 0, &DomainError{Reason: MsgOutsideRange, Kelvin: kelvin}
		}
		lnP += term
	}
	if math.IsInf(lnP, 0) {
		return 0, &DomainError{Reason: MsgOutsideRange, Kelvin: kelvin}
	}
	if math.IsNaN(lnP) {
		return 0, &ComputationError{
			Op:  "saturation pressure",
			Err: pkgerrors.Errorf("ln(P) is NaN for T=%g K", t),
		}
	}

	pressure := math.Exp(lnP)
	if math.IsInf(pressure, 1) {
		return 0, &DomainError{Reason: MsgOutsideRange, Kelvin: kelvin}
	}

	return pressure, nil
}

// LiquidEnthalpy returns the saturated liquid enthalpy in kJ/kg at celsius.
func (c Correlation) LiquidEnthalpy(celsius float64) float64 {
	return c.Liquid.Eval(celsius)
}

// VaporEnthalpy returns the saturated vapor enthalpy in kJ/kg at celsius.
func (c Correlation) VaporEnthalpy(celsius float64) float64 {
	return c.Vapor.Eval(celsius)
}

// LatentHeat returns the latent heat of vaporization in kJ/kg at celsius.
func (c Correlation) LatentHeat(celsius float64) float64 {
	return c.VaporEnthalpy(celsius) - c.LiquidEnthalpy(celsius)
}

// InFittedRange reports whether t lies within the band the correlations were
// fitted over. Results outside it are extrapolations.
func (c Correlation) InFittedRange(t Temperature) bool {
	return c.Fitted.Contains(t.Celsius)
}

// Saturate evaluates all saturation properties at t.
func (c Correlation) Saturate(t Temperature) (SaturationResult, error) {
	pressure, err := c.SaturationPressure(t.Kelvin())
	if err != nil {
		return SaturationResult{}, err
	}

	hl := c.LiquidEnthalpy(t.Celsius)
	hv := c.VaporEnthalpy(t.Celsius)
	latent := hv - hl
	for _, v := range []float64{hl, hv, latent} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return SaturationResult{}, &DomainError{Reason: MsgOutsideRange, Kelvin: t.Kelvin()}
		}
	}

	return SaturationResult{
		Temperature:    t,
		PressureKPa:    pressure,
		LiquidEnthalpy: hl,
		VaporEnthalpy:  hv,
		LatentHeat:     latent,
		Extrapolated:   !c.InFittedRange(t),
	}, nil
}

// SaturationPressure evaluates the R134a pressure correlation.
func SaturationPressure(kelvin float64) (float64, error) {
	return R134a().SaturationPressure(kelvin)
}

// LiquidEnthalpy evaluates the R134a liquid enthalpy correlation.
func LiquidEnthalpy(celsius float64) float64 {
	return R134a().LiquidEnthalpy(celsius)
}

// VaporEnthalpy evaluates the R134a vapor enthalpy correlation.
func VaporEnthalpy(celsius float64) float64 {
	return R134a().VaporEnthalpy(celsius)
}

// LatentHeat evaluates the R134a latent heat.
func LatentHeat(celsius float64) float64 {
	return R134a().LatentHeat(celsius)
}
