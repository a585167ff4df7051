package usecase

import (
	"fmt"

	"go.ngs.io/r134a-api/internal/domain"
)

// SaturationRequest encapsulates a saturation property request.
type SaturationRequest struct {
	// Temperature is the raw user input in degrees Celsius.
	Temperature string
}

// SaturationResponse contains the saturation properties at one temperature.
type SaturationResponse struct {
	Refrigerant  string  `json:"refrigerant"`
	TemperatureC float64 `json:"temperature_c"`
	TemperatureK float64 `json:"temperature_k"`
	PressureKPa  float64 `json:"pressure"`
	HL           float64 `json:"hl"`
	HV           float64 `json:"hv"`
	LatentHeat   float64 `json:"latent_heat"`
	Extrapolated bool    `json:"extrapolated"`
	Warning      string  `json:"warning,omitempty"`
}

// SaturationUseCase evaluates saturation properties for a correlation set.
type SaturationUseCase struct {
	correlation domain.Correlation
}

// NewSaturationUseCase creates a new saturation use case.
func NewSaturationUseCase(correlation domain.Correlation) *SaturationUseCase {
	return &SaturationUseCase{
		correlation: correlation,
	}
}

// Correlation returns the correlation set in use.
func (uc *SaturationUseCase) Correlation() domain.Correlation {
	return uc.correlation
}

// Execute parses the request temperature and evaluates all properties.
// Errors keep their domain type so callers can classify them with domain.KindOf.
func (uc *SaturationUseCase) Execute(req SaturationRequest) (*SaturationResponse, error) {
	temp, err := domain.ParseCelsius(req.Temperature)
	if err != nil {
		return nil, err
	}

	return uc.Evaluate(temp)
}

// Evaluate computes the properties for an already parsed temperature.
func (uc *SaturationUseCase) Evaluate(temp domain.Temperature) (*SaturationResponse, error) {
	result, err := uc.correlation.Saturate(temp)
	if err != nil {
		return nil, err
	}

	response := &SaturationResponse{
		Refrigerant:  uc.correlation.Refrigerant,
		TemperatureC: result.Temperature.Celsius,
		TemperatureK: result.Temperature.Kelvin(),
		PressureKPa:  result.PressureKPa,
		HL:           result.LiquidEnthalpy,
		HV:           result.VaporEnthalpy,
		LatentHeat:   result.LatentHeat,
		Extrapolated: result.Extrapolated,
	}
	if result.Extrapolated {
		response.Warning = uc.AdvisoryMessage()
	}

	return response, nil
}

// AdvisoryMessage describes the fitted band for out-of-range temperatures.
func (uc *SaturationUseCase) AdvisoryMessage() string {
	r := uc.correlation.Fitted
	return fmt.Sprintf("temperature is outside the usual range for %s (%g to %g °C); results are extrapolated and may be inaccurate",
		uc.correlation.Refrigerant, r.MinC, r.MaxC)
}

// CorrelationInfo describes one fitted equation.
type CorrelationInfo struct {
	Name         string             `json:"name"`
	Equation     string             `json:"equation"`
	InputUnit    string             `json:"input_unit"`
	OutputUnit   string             `json:"output_unit"`
	Coefficients map[string]float64 `json:"coefficients"`
}

// CorrelationsResponse lists the equations of the correlation set.
type CorrelationsResponse struct {
	Refrigerant  string            `json:"refrigerant"`
	FittedRangeC [2]float64        `json:"fitted_range_c"`
	Correlations []CorrelationInfo `json:"correlations"`
}

// Correlations describes the fitted equations and their coefficients.
func (uc *SaturationUseCase) Correlations() CorrelationsResponse {
	c := uc.correlation
	p := c.Pressure

	return CorrelationsResponse{
		Refrigerant:  c.Refrigerant,
		FittedRangeC: [2]float64{c.Fitted.MinC, c.Fitted.MaxC},
		Correlations: []CorrelationInfo{
			{
				Name:       "saturation_pressure",
				Equation:   "ln(P) = A + B/T + C*ln(T) + D*T + E*T^2 + F/T^2",
				InputUnit:  "K",
				OutputUnit: "kPa",
				Coefficients: map[string]float64{
					"A": p.A, "B": p.B, "C": p.C, "D": p.D, "E": p.E, "F": p.F,
				},
			},
			{
				Name:       "liquid_enthalpy",
				Equation:   "HL = G + H*T + I*T^2 + J*T^3 + K*T^4",
				InputUnit:  "°C",
				OutputUnit: "kJ/kg",
				Coefficients: map[string]float64{
					"G": c.Liquid[0], "H": c.Liquid[1], "I": c.Liquid[2], "J": c.Liquid[3], "K": c.Liquid[4],
				},
			},
			{
				Name:       "vapor_enthalpy",
				Equation:   "HV = L + M*T + N*T^2 + O*T^3 + P*T^4",
				InputUnit:  "°C",
				OutputUnit: "kJ/kg",
				Coefficients: map[string]float64{
					"L": c.Vapor[0], "M": c.Vapor[1], "N": c.Vapor[2], "O": c.Vapor[3], "P": c.Vapor[4],
				},
			},
		},
	}
}
