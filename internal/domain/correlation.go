package domain

// PressureCoefficients holds the constants of the vapor pressure correlation
// ln(P) = A + B/T + C*ln(T) + D*T + E*T^2 + F/T^2
// where:
//   - P is the saturation pressure in kPa
//   - T is the saturation temperature in Kelvin
type PressureCoefficients struct {
	A, B, C, D, E, F float64
}

// Quartic holds the coefficients of y = c0 + c1*T + c2*T^2 + c3*T^3 + c4*T^4.
type Quartic [5]float64

// Eval evaluates the polynomial at t using Horner's scheme.
func (q Quartic) Eval(t float64) float64 {
	return q[0] + t*(q[1]+t*(q[2]+t*(q[3]+t*q[4])))
}

// Range is a closed temperature interval in degrees Celsius.
type Range struct {
	MinC float64
	MaxC float64
}

// Contains reports whether celsius lies within the range.
func (r Range) Contains(celsius float64) bool {
	return celsius >= r.MinC && celsius <= r.MaxC
}

// Correlation is a set of fitted saturation correlations for one refrigerant.
// It is a value type; copies never share state.
type Correlation struct {
	Refrigerant string
	Pressure    PressureCoefficients
	// Liquid is the saturated liquid enthalpy fit (kJ/kg, T in Celsius).
	Liquid Quartic
	// Vapor is the saturated vapor enthalpy fit (kJ/kg, T in Celsius).
	Vapor Quartic
	// Fitted is the band the correlations were fitted over.
	Fitted Range
}

// R134a returns the R134a saturation correlations.
//
// The liquid enthalpy fit only carries a constant and a linear term; the higher
// order coefficients are kept at zero so a refit can populate them.
func R134a() Correlation {
	return Correlation{
		Refrigerant: "R134a",
		Pressure: PressureCoefficients{
			A: 24.8033968,
			B: -335.4048,
			C: -0.0244075,
			D: 0.000106511,
			E: -0.000000138865,
			F: -106450.0,
		},
		Liquid: Quartic{200.0, 1.0, 0.0, 0.0, 0.0},
		Vapor:  Quartic{397.747352, 0.697479704, -0.004101890, 0.00001022830, 0.000000009998000},
		Fitted: Range{MinC: -40, MaxC: 100},
	}
}
