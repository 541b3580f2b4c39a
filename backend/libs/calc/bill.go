package calc

import "strings"

const (
	electricityDutyRate = 0.16
	taxRate             = 0.05
)

// Method selects how billed units are derived.
type Method string

// Bill calculation methods.
const (
	MethodReadings Method = "readings"
	MethodUnits    Method = "units"
)

// ParseMethod accepts a method name in any case; empty means readings.
func ParseMethod(raw string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(raw))); m {
	case "":
		return MethodReadings, nil
	case MethodReadings, MethodUnits:
		return m, nil
	default:
		return "", invalid("method", CodeUnknownMethod, raw)
	}
}

// BillInput carries either a meter reading pair or a direct unit count.
// Only the fields of the selected Method are read.
type BillInput struct {
	Method          Method  `json:"method"`
	PreviousReading float64 `json:"previous_reading"`
	CurrentReading  float64 `json:"current_reading"`
	DirectUnits     float64 `json:"units"`
}

// BillResult is an itemized bill.
type BillResult struct {
	TotalUnits      float64 `json:"total_units"`
	EnergyCharges   float64 `json:"energy_charges"`
	FixedCharges    float64 `json:"fixed_charges"`
	ElectricityDuty float64 `json:"electricity_duty"`
	Taxes           float64 `json:"taxes"`
	TotalAmount     float64 `json:"total_amount"`
	TariffRate      float64 `json:"tariff_rate"`
}

// UnitsFromReadings returns consumed units for a meter reading pair.
// Meter rollover is not handled: current must exceed previous.
func UnitsFromReadings(previous, current float64) (float64, error) {
	if !isNumber(previous) || previous < 0 {
		return 0, invalid("previous_reading", CodeInvalidReading, previous)
	}
	if !isNumber(current) || current < 0 {
		return 0, invalid("current_reading", CodeInvalidReading, current)
	}
	if current <= previous {
		return 0, invalid("current_reading", CodeReadingOrder, current)
	}
	return current - previous, nil
}

// ComputeBill itemizes a bill for units consumed under category.
func ComputeBill(units float64, category Category) (BillResult, error) {
	if !isNumber(units) || units <= 0 {
		return BillResult{}, invalid("units", CodeInvalidUnits, units)
	}
	tariff, err := LookupTariff(category)
	if err != nil {
		return BillResult{}, err
	}

	energy := units * tariff.RatePerUnit
	fixed := tariff.FixedCharge
	duty := energy * electricityDutyRate
	taxes := (energy + fixed + duty) * taxRate

	return BillResult{
		TotalUnits:      units,
		EnergyCharges:   energy,
		FixedCharges:    fixed,
		ElectricityDuty: duty,
		Taxes:           taxes,
		TotalAmount:     energy + fixed + duty + taxes,
		TariffRate:      tariff.RatePerUnit,
	}, nil
}

// ComputeBillFromInput resolves units from input and computes the bill.
func ComputeBillFromInput(input BillInput, category Category) (BillResult, error) {
	method := input.Method
	if method == "" {
		method = MethodReadings
	}

	switch method {
	case MethodReadings:
		units, err := UnitsFromReadings(input.PreviousReading, input.CurrentReading)
		if err != nil {
			return BillResult{}, err
		}
		return ComputeBill(units, category)
	case MethodUnits:
		return ComputeBill(input.DirectUnits, category)
	default:
		return BillResult{}, invalid("method", CodeUnknownMethod, string(input.Method))
	}
}
