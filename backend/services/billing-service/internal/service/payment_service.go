package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"urjaportal/backend/services/billing-service/internal/models"
	"urjaportal/backend/services/billing-service/internal/repository"
)

var (
	// ErrBillPaid is returned when a bill has already been settled.
	ErrBillPaid = errors.New("billing: bill already paid")
	// ErrUnknownPaymentMethod is returned for methods outside PaymentMethods.
	ErrUnknownPaymentMethod = errors.New("billing: unknown payment method")
)

// PaymentMethods lists the accepted mock payment methods.
var PaymentMethods = []string{"upi", "card", "netbanking", "wallet"}

// PaymentStore settles bills atomically.
type PaymentStore interface {
	Settle(ctx context.Context, p *models.Payment) error
}

// PaymentService mocks bill payment. No money moves; a receipt is issued
// and the bill is marked paid.
type PaymentService struct {
	payments   PaymentStore
	logger     *zap.Logger
	newReceipt func() string
}

// NewPaymentService builds service.
func NewPaymentService(payments PaymentStore, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		payments:   payments,
		logger:     logger,
		newReceipt: func() string { return "RCPT-" + strings.ToUpper(uuid.NewString()) },
	}
}

// Pay settles bill id for userID using method.
func (s *PaymentService) Pay(ctx context.Context, userID, billID int64, method string) (*models.Payment, error) {
	method = strings.ToLower(strings.TrimSpace(method))
	if !validPaymentMethod(method) {
		return nil, ErrUnknownPaymentMethod
	}

	payment := &models.Payment{
		BillID:  billID,
		UserID:  userID,
		Method:  method,
		Receipt: s.newReceipt(),
	}
	if err := s.payments.Settle(ctx, payment); err != nil {
		switch {
		case errors.Is(err, repository.ErrBillNotFound):
			return nil, ErrBillNotFound
		case errors.Is(err, repository.ErrBillPaid):
			return nil, ErrBillPaid
		}
		return nil, err
	}

	s.logger.Info("bill paid",
		zap.Int64("user_id", userID),
		zap.Int64("bill_id", billID),
		zap.String("method", method),
		zap.String("receipt", payment.Receipt),
	)
	return payment, nil
}

func validPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
