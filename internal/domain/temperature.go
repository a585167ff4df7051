package domain

import (
	"math"
	"strconv"
	"strings"
)

// ZeroCelsiusK is 0 °C expressed in Kelvin.
const ZeroCelsiusK = 273.15

// Temperature is a saturation temperature. The enthalpy fits take Celsius and
// the pressure fit takes Kelvin, so both views are exposed.
type Temperature struct {
	Celsius float64
}

// FromCelsius creates a Temperature from degrees Celsius.
func FromCelsius(c float64) Temperature {
	return Temperature{Celsius: c}
}

// FromKelvin creates a Temperature from Kelvin.
func FromKelvin(k float64) Temperature {
	return Temperature{Celsius: k - ZeroCelsiusK}
}

// Kelvin returns the temperature in Kelvin.
func (t Temperature) Kelvin() float64 {
	return t.Celsius + ZeroCelsiusK
}

// ParseCelsius parses user input holding a temperature in degrees Celsius.
// Surrounding whitespace is ignored. Anything that is not a finite number
// yields an *InputFormatError.
func ParseCelsius(input string) (Temperature, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Temperature{}, &InputFormatError{Input: input, Reason: "temperature is empty"}
	}

	c, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Temperature{}, &InputFormatError{Input: input, Reason: "not a number", Err: err}
	}
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return Temperature{}, &InputFormatError{Input: input, Reason: "temperature must be finite"}
	}

	return FromCelsius(c), nil
}
