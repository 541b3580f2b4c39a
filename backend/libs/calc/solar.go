package calc

// Solar estimation assumptions. Yield and offset are flat: no geographic or
// seasonal modeling.
const (
	RoofAreaPerKW        = 10.0   // m² of roof per kW installed
	AnnualYieldPerKW     = 1500.0 // kWh generated per kW per year
	OffsetTariffPerUnit  = 6.0    // ₹ saved per generated kWh
	SystemCostPerKW      = 50000.0
	SubsidyPerKWUpTo3    = 30000.0
	SubsidyBaseAbove3    = 90000.0
	SubsidyPerKWAbove3   = 18000.0
	SubsidyTierKW        = 3.0
	SubsidyCap           = 78000.0
	GridEmissionKgPerKWh = 0.82
	SystemLifetimeYears  = 25
	monthsPerYear        = 12
)

// SolarInput holds the optional rooftop calculator fields.
// MonthlyBillINR is accepted but does not resolve a capacity.
type SolarInput struct {
	RoofAreaSqM       *float64 `json:"roof_area_sqm,omitempty"`
	MonthlyBillINR    *float64 `json:"monthly_bill_inr,omitempty"`
	DesiredCapacityKW *float64 `json:"desired_capacity_kw,omitempty"`
}

// SolarResult is a rooftop system estimate.
type SolarResult struct {
	CapacityKW          float64 `json:"capacity_kw"`
	AnnualGenerationKWh float64 `json:"annual_generation_kwh"`
	AnnualSavingsINR    float64 `json:"annual_savings_inr"`
	MonthlySavingsINR   float64 `json:"monthly_savings_inr"`
	SystemCostINR       float64 `json:"system_cost_inr"`
	SubsidyINR          float64 `json:"subsidy_inr"`
	NetCostINR          float64 `json:"net_cost_inr"`
	PaybackYears        float64 `json:"payback_years"`
	LifetimeSavingsINR  float64 `json:"lifetime_savings_inr"`
	CO2SavedKg          float64 `json:"co2_saved_kg"`
}

// ResolveCapacity picks the system size: desired capacity first, then roof area.
func ResolveCapacity(in SolarInput) (float64, bool) {
	if positive(in.DesiredCapacityKW) {
		return *in.DesiredCapacityKW, true
	}
	if positive(in.RoofAreaSqM) {
		return *in.RoofAreaSqM / RoofAreaPerKW, true
	}
	return 0, false
}

// Subsidy applies the tiered capital subsidy with its cap.
func Subsidy(capacityKW float64) float64 {
	var s float64
	if capacityKW <= SubsidyTierKW {
		s = capacityKW * SubsidyPerKWUpTo3
	} else {
		s = SubsidyBaseAbove3 + (capacityKW-SubsidyTierKW)*SubsidyPerKWAbove3
	}
	if s > SubsidyCap {
		s = SubsidyCap
	}
	return s
}

// EstimateSolar returns false when no capacity can be resolved from in.
func EstimateSolar(in SolarInput) (SolarResult, bool) {
	capacity, ok := ResolveCapacity(in)
	if !ok {
		return SolarResult{}, false
	}

	generation := capacity * AnnualYieldPerKW
	annualSavings := generation * OffsetTariffPerUnit
	cost := capacity * SystemCostPerKW
	subsidy := Subsidy(capacity)
	net := cost - subsidy

	return SolarResult{
		CapacityKW:          capacity,
		AnnualGenerationKWh: generation,
		AnnualSavingsINR:    annualSavings,
		MonthlySavingsINR:   annualSavings / monthsPerYear,
		SystemCostINR:       cost,
		SubsidyINR:          subsidy,
		NetCostINR:          net,
		PaybackYears:        net / annualSavings,
		LifetimeSavingsINR:  annualSavings*SystemLifetimeYears - net,
		CO2SavedKg:          generation * GridEmissionKgPerKWh,
	}, true
}

func positive(v *float64) bool {
	return v != nil && isNumber(*v) && *v > 0
}
