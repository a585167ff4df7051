package domain

import (
	"errors"
	"math"
	"testing"
)

// Reference value of the pressure fit at 0 °C, evaluated once from the coefficients.
const pressureAtZeroCelsius = 3696135701.245393

// TestSaturationPressure_NonPositiveKelvin tests the hard domain boundary at 0 K.
func TestSaturationPressure_NonPositiveKelvin(t *testing.T) {
	inputs := []float64{0, -1e-12, -0.5, -1, -100, -273.15, -1e9, math.Inf(-1)}

	for _, k := range inputs {
		_, err := SaturationPressure(k)
		if err == nil {
			t.Fatalf("T=%g K: expected DomainError, got nil", k)
		}

		var domainErr *DomainError
		if !errors.As(err, &domainErr) {
			t.Fatalf("T=%g K: expected *DomainError, got %T", k, err)
		}
		if domainErr.Error() != MsgNonPositiveKelvin {
			t.Errorf("T=%g K: unexpected message %q", k, domainErr.Error())
		}
		if KindOf(err) != KindDomain {
			t.Errorf("T=%g K: expected KindDomain, got %v", k, KindOf(err))
		}
	}
}

// TestSaturationPressure_ZeroCelsius pins the pressure fit against its golden value.
func TestSaturationPressure_ZeroCelsius(t *testing.T) {
	p, err := SaturationPressure(ZeroCelsiusK)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	rel := math.Abs(p-pressureAtZeroCelsius) / pressureAtZeroCelsius
	if rel > 1e-6 {
		t.Errorf("P(273.15 K): expected %.6f, got %.6f (rel err %.3g)", pressureAtZeroCelsius, p, rel)
	}
}

// TestSaturationPressure_Overflow tests that an overflowing exponential is a DomainError.
func TestSaturationPressure_Overflow(t *testing.T) {
	c := R134a()
	c.Pressure.A = 1000

	p, err := c.SaturationPressure(ZeroCelsiusK)
	if err == nil {
		t.Fatalf("expected overflow error, got %g", p)
	}
	if KindOf(err) != KindDomain {
		t.Fatalf("expected KindDomain, got %v (%v)", KindOf(err), err)
	}
	if err.Error() != MsgOutsideRange {
		t.Errorf("unexpected message %q", err.Error())
	}

	// The shared coefficients are untouched.
	if R134a().Pressure.A != 24.8033968 {
		t.Errorf("R134a coefficients were mutated: A=%g", R134a().Pressure.A)
	}
}

// TestSaturationPressure_NonFinite tests that non-finite input surfaces as ComputationError.
func TestSaturationPressure_NonFinite(t *testing.T) {
	for _, k := range []float64{math.NaN(), math.Inf(1)} {
		_, err := SaturationPressure(k)
		if KindOf(err) != KindComputation {
			t.Errorf("T=%g K: expected KindComputation, got %v (%v)", k, KindOf(err), err)
		}

		var compErr *ComputationError
		if errors.As(err, &compErr) && errors.Unwrap(compErr) == nil {
			t.Errorf("T=%g K: ComputationError does not wrap its cause", k)
		}
	}
}

// TestEnthalpy_ZeroCelsius tests that only the constant terms are active at 0 °C.
func TestEnthalpy_ZeroCelsius(t *testing.T) {
	if hl := LiquidEnthalpy(0); hl != 200.0 {
		t.Errorf("HL(0): expected 200.0, got %.10f", hl)
	}
	if hv := VaporEnthalpy(0); hv != 397.747352 {
		t.Errorf("HV(0): expected 397.747352, got %.10f", hv)
	}
}

// TestLiquidEnthalpy_Linear tests that the liquid fit reduces to G + H*T.
func TestLiquidEnthalpy_Linear(t *testing.T) {
	for _, c := range []float64{-273.15, -40, -1, 0, 0.5, 25, 100, 1e6} {
		want := 200.0 + c
		if got := LiquidEnthalpy(c); math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
			t.Errorf("HL(%g): expected %.10f, got %.10f", c, want, got)
		}
	}

	c := R134a()
	if c.Liquid[2] != 0 || c.Liquid[3] != 0 || c.Liquid[4] != 0 {
		t.Errorf("liquid fit higher-order terms changed: %v", c.Liquid)
	}
}

// TestVaporEnthalpy_KnownValues tests the vapor fit against direct evaluation.
func TestVaporEnthalpy_KnownValues(t *testing.T) {
	tests := []struct {
		celsius  float64
		expected float64
	}{
		{25, 412.78438600625},
		{-40, 362.65612352000005},
		{100, 437.7045223999999},
	}

	for _, tt := range tests {
		got := VaporEnthalpy(tt.celsius)
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("HV(%g): expected %.10f, got %.10f", tt.celsius, tt.expected, got)
		}
	}
}

// TestLatentHeat_Identity tests that latent heat is exactly HV - HL.
func TestLatentHeat_Identity(t *testing.T) {
	for c := -300.0; c <= 300.0; c += 7.25 {
		want := VaporEnthalpy(c) - LiquidEnthalpy(c)
		if got := LatentHeat(c); got != want {
			t.Errorf("latent(%g): expected %.12f, got %.12f", c, want, got)
		}
	}
}

// TestEnthalpy_Continuous tests that the polynomial fits have no jumps.
func TestEnthalpy_Continuous(t *testing.T) {
	const h = 1e-7
	for _, c := range []float64{-273.15, -40, -1e-9, 0, 1e-9, 25, 100, 500} {
		for name, f := range map[string]func(float64) float64{
			"HL": LiquidEnthalpy,
			"HV": VaporEnthalpy,
		} {
			left, mid, right := f(c-h), f(c), f(c+h)
			if math.IsInf(mid, 0) || math.IsNaN(mid) {
				t.Fatalf("%s(%g) is not finite", name, c)
			}
			if math.Abs(right-left) > 1e-3 {
				t.Errorf("%s jumps around %g: %.12f vs %.12f", name, c, left, right)
			}
		}
	}
}

// TestSaturate_RoundTrip tests the 25 °C scenario end to end.
func TestSaturate_RoundTrip(t *testing.T) {
	temp, err := ParseCelsius("25")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(temp.Kelvin()-298.15) > 1e-9 {
		t.Fatalf("Kelvin: expected 298.15, got %.10f", temp.Kelvin())
	}

	r, err := R134a().Saturate(temp)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for name, v := range map[string]float64{
		"pressure": r.PressureKPa,
		"hl":       r.LiquidEnthalpy,
		"hv":       r.VaporEnthalpy,
	} {
		if math.IsInf(v, 0) || math.IsNaN(v) || v <= 0 {
			t.Errorf("%s: expected finite positive value, got %g", name, v)
		}
	}
	if r.VaporEnthalpy <= r.LiquidEnthalpy {
		t.Errorf("expected HV > HL, got HV=%.4f HL=%.4f", r.VaporEnthalpy, r.LiquidEnthalpy)
	}
	if r.LatentHeat != r.VaporEnthalpy-r.LiquidEnthalpy {
		t.Errorf("latent heat %.10f != HV-HL", r.LatentHeat)
	}
	if r.Extrapolated {
		t.Errorf("25 °C flagged as extrapolated")
	}
}

// TestSaturate_Boundaries tests the edges of the fitted band and absolute zero.
func TestSaturate_Boundaries(t *testing.T) {
	c := R134a()

	for _, in := range []string{"-40", "100"} {
		temp, err := ParseCelsius(in)
		if err != nil {
			t.Fatalf("%s: unexpected parse error: %v", in, err)
		}
		r, err := c.Saturate(temp)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", in, err)
		}
		if r.Extrapolated {
			t.Errorf("%s: flagged as extrapolated", in)
		}
	}

	temp, err := ParseCelsius("-273.15")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, err := c.Saturate(temp); KindOf(err) != KindDomain {
		t.Errorf("-273.15: expected KindDomain, got %v (%v)", KindOf(err), err)
	}
}

// TestSaturate_Extrapolated tests the advisory flag outside the fitted band.
func TestSaturate_Extrapolated(t *testing.T) {
	c := R134a()
	for _, celsius := range []float64{-40.001, -200, 100.001, 150} {
		r, err := c.Saturate(FromCelsius(celsius))
		if err != nil {
			t.Fatalf("%g: unexpected error: %v", celsius, err)
		}
		if !r.Extrapolated {
			t.Errorf("%g: expected extrapolated result", celsius)
		}
	}
}

func TestQuartic_Eval(t *testing.T) {
	q := Quartic{1, 2, 3, 4, 5}
	// 1 + 2*2 + 3*4 + 4*8 + 5*16 = 129
	if got := q.Eval(2); got != 129 {
		t.Errorf("expected 129, got %g", got)
	}
}

// TestSaturationPressure_Unrepresentable tests that over- and underflowing terms are DomainErrors.
func TestSaturationPressure_Unrepresentable(t *testing.T) {
	for _, k := range []float64{1e160, 1e200, math.MaxFloat64, 1e-200} {
		p, err := SaturationPressure(k)
		if err == nil {
			t.Fatalf("T=%g K: expected DomainError, got P=%g", k, p)
		}
		if KindOf(err) != KindDomain {
			t.Errorf("T=%g K: expected KindDomain, got %v (%v)", k, KindOf(err), err)
		}
		if err.Error() != MsgOutsideRange {
			t.Errorf("T=%g K: unexpected message %q", k, err.Error())
		}
	}
}

// TestSaturate_EnthalpyOverflow tests that non-finite enthalpies are never returned.
func TestSaturate_EnthalpyOverflow(t *testing.T) {
	c := R134a()

	for _, in := range []string{"1e80", "1e160"} {
		temp, err := ParseCelsius(in)
		if err != nil {
			t.Fatalf("%s: unexpected parse error: %v", in, err)
		}

		r, err := c.Saturate(temp)
		if KindOf(err) != KindDomain {
			t.Fatalf("%s: expected KindDomain, got %v (result %+v)", in, err, r)
		}
		if err.Error() != MsgOutsideRange {
			t.Errorf("%s: unexpected message %q", in, err.Error())
		}
	}
}
