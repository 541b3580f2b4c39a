package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"urjaportal/backend/libs/calc"
	"urjaportal/backend/services/billing-service/internal/models"
	"urjaportal/backend/services/billing-service/internal/repository"
)

const defaultHistoryLimit = 50

// ErrBillNotFound is returned for bills that do not exist or belong to someone else.
var ErrBillNotFound = errors.New("billing: bill not found")

// BillStore persists bills.
type BillStore interface {
	Create(ctx context.Context, b *models.Bill) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]models.Bill, error)
	GetForUser(ctx context.Context, userID, id int64) (*models.Bill, error)
}

// CalculateInput is a bill request: the unit source plus a tariff category.
type CalculateInput struct {
	calc.BillInput
	Category string `json:"category"`
}

// BillingService calculates and stores bills.
type BillingService struct {
	bills  BillStore
	logger *zap.Logger
}

// NewBillingService builds service.
func NewBillingService(bills BillStore, logger *zap.Logger) *BillingService {
	return &BillingService{
		bills:  bills,
		logger: logger,
	}
}

// Tariffs returns the rate table.
func (s *BillingService) Tariffs() []calc.Tariff {
	return calc.Tariffs()
}

// Quote is a priced bill with the category and method it was resolved to.
type Quote struct {
	Result   calc.BillResult
	Category calc.Category
	Method   calc.Method
}

// Calculate itemizes a bill without storing it. An empty category means residential.
func (s *BillingService) Calculate(in CalculateInput) (Quote, error) {
	category := calc.Residential
	if strings.TrimSpace(in.Category) != "" {
		c, err := calc.ParseCategory(in.Category)
		if err != nil {
			return Quote{}, err
		}
		category = c
	}

	method, err := calc.ParseMethod(string(in.Method))
	if err != nil {
		return Quote{}, err
	}
	in.Method = method

	result, err := calc.ComputeBillFromInput(in.BillInput, category)
	if err != nil {
		return Quote{}, err
	}
	return Quote{Result: result, Category: category, Method: method}, nil
}

// CreateBill calculates a bill and saves it to the user's history as unpaid.
func (s *BillingService) CreateBill(ctx context.Context, userID int64, in CalculateInput) (*models.Bill, error) {
	if userID <= 0 {
		return nil, errors.New("billing: user id required")
	}
	quote, err := s.Calculate(in)
	if err != nil {
		return nil, err
	}
	result := quote.Result

	bill := &models.Bill{
		UserID:          userID,
		Category:        string(quote.Category),
		Method:          string(quote.Method),
		Units:           result.TotalUnits,
		EnergyCharges:   result.EnergyCharges,
		FixedCharges:    result.FixedCharges,
		ElectricityDuty: result.ElectricityDuty,
		Taxes:           result.Taxes,
		TotalAmount:     result.TotalAmount,
		TariffRate:      result.TariffRate,
		Status:          models.BillStatusUnpaid,
	}
	if quote.Method == calc.MethodReadings {
		prev, cur := in.PreviousReading, in.CurrentReading
		bill.PreviousReading, bill.CurrentReading = &prev, &cur
	}

	if err := s.bills.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("billing: save bill: %w", err)
	}

	s.logger.Info("bill created",
		zap.Int64("user_id", userID),
		zap.Int64("bill_id", bill.ID),
		zap.Float64("units", bill.Units),
		zap.Float64("total_amount", bill.TotalAmount),
	)
	return bill, nil
}

// BillsForUser returns the latest bills for userID, newest first.
func (s *BillingService) BillsForUser(ctx context.Context, userID int64) ([]models.Bill, error) {
	return s.bills.ListByUser(ctx, userID, defaultHistoryLimit)
}

// Bill returns a single bill owned by userID.
func (s *BillingService) Bill(ctx context.Context, userID, id int64) (*models.Bill, error) {
	bill, err := s.bills.GetForUser(ctx, userID, id)
	if errors.Is(err, repository.ErrBillNotFound) {
		return nil, ErrBillNotFound
	}
	return bill, err
}
