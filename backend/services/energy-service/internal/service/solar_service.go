package service

import (
	"go.uber.org/zap"

	"urjaportal/backend/libs/calc"
)

// SolarEstimate wraps an optional estimate. Available is false when no
// capacity could be resolved from the input.
type SolarEstimate struct {
	Available bool              `json:"available"`
	Result    *calc.SolarResult `json:"result"`
}

// SolarService runs the rooftop estimator.
type SolarService struct {
	logger *zap.Logger
}

// NewSolarService builds service.
func NewSolarService(logger *zap.Logger) *SolarService {
	return &SolarService{logger: logger}
}

// Estimate returns the estimate for in.
func (s *SolarService) Estimate(in calc.SolarInput) SolarEstimate {
	result, ok := calc.EstimateSolar(in)
	if !ok {
		if in.MonthlyBillINR != nil {
			s.logger.Debug("solar estimate unresolved, monthly bill does not size a system",
				zap.Float64("monthly_bill_inr", *in.MonthlyBillINR))
		}
		return SolarEstimate{}
	}
	return SolarEstimate{Available: true, Result: &result}
}
