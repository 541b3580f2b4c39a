package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"urjaportal/backend/libs/calc"
	"urjaportal/backend/services/energy-service/internal/clients"
)

// ErrInvalidUser is returned for missing or non-positive user ids.
var ErrInvalidUser = errors.New("energy: user id required")

// ApplianceStore keeps per-user appliance lists.
type ApplianceStore interface {
	List(ctx context.Context, userID int64) ([]calc.Appliance, error)
	Add(ctx context.Context, userID int64, a calc.Appliance) error
	Remove(ctx context.Context, userID int64, id string) error
	Clear(ctx context.Context, userID int64) error
}

// BillQuoter prices a unit count.
type BillQuoter interface {
	QuoteUnits(ctx context.Context, units float64, category, lang string) (*clients.BillQuote, error)
}

// ApplianceSummary is an appliance list with its totals.
type ApplianceSummary struct {
	Appliances []calc.Appliance       `json:"appliances"`
	Totals     calc.ConsumptionTotals `json:"totals"`
}

// ApplianceBill is the bill for a saved appliance list's monthly use.
type ApplianceBill struct {
	Totals calc.ConsumptionTotals `json:"totals"`
	Bill   *clients.BillQuote     `json:"bill"`
}

// ApplianceService aggregates ad-hoc and saved appliance lists.
type ApplianceService struct {
	store  ApplianceStore
	quoter BillQuoter
	logger *zap.Logger
}

// NewApplianceService builds service.
func NewApplianceService(store ApplianceStore, quoter BillQuoter, logger *zap.Logger) *ApplianceService {
	return &ApplianceService{store: store, quoter: quoter, logger: logger}
}

// Catalog returns the predefined appliances.
func (s *ApplianceService) Catalog() []calc.CatalogEntry {
	return calc.Catalog()
}

// Aggregate validates specs and sums them without storing anything.
// The first invalid spec aborts with its validation error.
func (s *ApplianceService) Aggregate(specs []calc.ApplianceSpec) (ApplianceSummary, error) {
	list := calc.NewApplianceList()
	for i, spec := range specs {
		if _, err := list.Add(spec); err != nil {
			return ApplianceSummary{}, indexed(i, err)
		}
	}
	return ApplianceSummary{Appliances: list.Items(), Totals: list.Totals()}, nil
}

// List returns the saved list of userID.
func (s *ApplianceService) List(ctx context.Context, userID int64) (ApplianceSummary, error) {
	if userID <= 0 {
		return ApplianceSummary{}, ErrInvalidUser
	}
	items, err := s.store.List(ctx, userID)
	if err != nil {
		return ApplianceSummary{}, fmt.Errorf("energy: load appliances: %w", err)
	}
	return ApplianceSummary{Appliances: items, Totals: calc.AggregateAppliances(items)}, nil
}

// Add validates spec and appends it to the saved list.
func (s *ApplianceService) Add(ctx context.Context, userID int64, spec calc.ApplianceSpec) (calc.Appliance, error) {
	if userID <= 0 {
		return calc.Appliance{}, ErrInvalidUser
	}
	a, err := calc.NewAppliance(spec)
	if err != nil {
		return calc.Appliance{}, err
	}
	if err := s.store.Add(ctx, userID, a); err != nil {
		return calc.Appliance{}, fmt.Errorf("energy: save appliance: %w", err)
	}
	s.logger.Debug("appliance added",
		zap.Int64("user_id", userID),
		zap.String("appliance_id", a.ID),
		zap.Float64("daily_kwh", a.DailyKWh()),
	)
	return a, nil
}

// Remove deletes one appliance. Unknown ids are ignored.
func (s *ApplianceService) Remove(ctx context.Context, userID int64, id string) error {
	if userID <= 0 {
		return ErrInvalidUser
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return s.store.Remove(ctx, userID, id)
}

// Clear empties the saved list.
func (s *ApplianceService) Clear(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return ErrInvalidUser
	}
	return s.store.Clear(ctx, userID)
}

// Bill prices the saved list's monthly consumption as direct units.
func (s *ApplianceService) Bill(ctx context.Context, userID int64, category, lang string) (ApplianceBill, error) {
	summary, err := s.List(ctx, userID)
	if err != nil {
		return ApplianceBill{}, err
	}
	quote, err := s.quoter.QuoteUnits(ctx, summary.Totals.MonthlyKWh, category, lang)
	if err != nil {
		return ApplianceBill{}, err
	}
	return ApplianceBill{Totals: summary.Totals, Bill: quote}, nil
}

func indexed(i int, err error) error {
	var ve *calc.ValidationError
	if errors.As(err, &ve) {
		return &calc.ValidationError{Field: fmt.Sprintf("appliances[%d].%s", i, ve.Field), Code: ve.Code, Value: ve.Value}
	}
	return err
}
