package entropy

import "github.com/lixenwraith/despar/constants"

// Thermometer reports ambient temperature in kelvin
type Thermometer interface {
	Kelvin() float64
}

// TMP36 converts a normalised ADC reading of a TMP36 sensor
// V = 3.3 * reading; °C = 100 * V - 50
type TMP36 struct {
	In AnalogIn
}

// Kelvin implements Thermometer
func (s TMP36) Kelvin() float64 {
	volts := constants.ADCReference * s.In.Read()
	return constants.TMP36Scale*volts - constants.TMP36Offset + constants.CelsiusToKelvin
}

// FixedKelvin is a constant temperature
type FixedKelvin float64

// Kelvin implements Thermometer
func (k FixedKelvin) Kelvin() float64 {
	return float64(k)
}
