package service

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"urjaportal/backend/libs/calc"
	"urjaportal/backend/services/billing-service/internal/models"
	"urjaportal/backend/services/billing-service/internal/repository"
)

type memoryBills struct {
	mu    sync.Mutex
	bills []models.Bill
}

func (m *memoryBills) Create(_ context.Context, b *models.Bill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = int64(len(m.bills) + 1)
	m.bills = append(m.bills, *b)
	return nil
}

func (m *memoryBills) ListByUser(_ context.Context, userID int64, limit int) ([]models.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Bill
	for _, b := range m.bills {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryBills) GetForUser(_ context.Context, userID, id int64) (*models.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bills {
		if b.ID == id && b.UserID == userID {
			return &b, nil
		}
	}
	return nil, repository.ErrBillNotFound
}

// Settle mirrors PaymentRepository.Settle on top of memoryBills.
func (m *memoryBills) Settle(_ context.Context, p *models.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bills {
		b := &m.bills[i]
		if b.ID != p.BillID || b.UserID != p.UserID {
			continue
		}
		if b.Status == models.BillStatusPaid {
			return repository.ErrBillPaid
		}
		b.Status = models.BillStatusPaid
		p.ID = int64(i + 1)
		p.Amount = b.TotalAmount
		return nil
	}
	return repository.ErrBillNotFound
}

func TestCalculate(t *testing.T) {
	svc := NewBillingService(&memoryBills{}, zap.NewNop())

	quote, err := svc.Calculate(CalculateInput{
		BillInput: calc.BillInput{Method: "UNITS", DirectUnits: 100},
	})
	require.NoError(t, err)
	assert.Equal(t, calc.Residential, quote.Category)
	assert.Equal(t, calc.MethodUnits, quote.Method)
	assert.InDelta(t, 1344.0, quote.Result.TotalAmount, 1e-9)

	quote, err = svc.Calculate(CalculateInput{
		BillInput: calc.BillInput{PreviousReading: 12450, CurrentReading: 12735},
		Category:  " Commercial ",
	})
	require.NoError(t, err)
	assert.Equal(t, calc.Commercial, quote.Category)
	assert.Equal(t, calc.MethodReadings, quote.Method)
	assert.InDelta(t, 285.0, quote.Result.TotalUnits, 1e-9)
}

func TestCalculateValidation(t *testing.T) {
	svc := NewBillingService(&memoryBills{}, zap.NewNop())

	tests := []struct {
		name  string
		in    CalculateInput
		code  string
		field string
	}{
		{"reading order", CalculateInput{BillInput: calc.BillInput{PreviousReading: 10, CurrentReading: 10}}, calc.CodeReadingOrder, "current_reading"},
		{"zero units", CalculateInput{BillInput: calc.BillInput{Method: calc.MethodUnits}}, calc.CodeInvalidUnits, "units"},
		{"bad category", CalculateInput{BillInput: calc.BillInput{Method: calc.MethodUnits, DirectUnits: 5}, Category: "domestic"}, calc.CodeUnknownCategory, "category"},
		{"bad method", CalculateInput{BillInput: calc.BillInput{Method: "guess"}}, calc.CodeUnknownMethod, "method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Calculate(tt.in)
			require.ErrorIs(t, err, calc.ErrValidation)
			var ve *calc.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.code, ve.Code)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestCreateBillAndHistory(t *testing.T) {
	store := &memoryBills{}
	svc := NewBillingService(store, zap.NewNop())
	ctx := context.Background()

	first, err := svc.CreateBill(ctx, 7, CalculateInput{BillInput: calc.BillInput{PreviousReading: 100, CurrentReading: 200}})
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusUnpaid, first.Status)
	assert.Equal(t, "readings", first.Method)
	require.NotNil(t, first.PreviousReading)
	assert.Equal(t, 100.0, *first.PreviousReading)

	second, err := svc.CreateBill(ctx, 7, CalculateInput{BillInput: calc.BillInput{Method: "Units", DirectUnits: 50}, Category: "agricultural"})
	require.NoError(t, err)
	assert.Equal(t, "units", second.Method)
	assert.Nil(t, second.PreviousReading)

	_, err = svc.CreateBill(ctx, 8, CalculateInput{BillInput: calc.BillInput{Method: "units", DirectUnits: 1}})
	require.NoError(t, err)

	history, err := svc.BillsForUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)

	_, err = svc.Bill(ctx, 8, first.ID)
	assert.ErrorIs(t, err, ErrBillNotFound)

	_, err = svc.CreateBill(ctx, 7, CalculateInput{BillInput: calc.BillInput{Method: "units"}})
	assert.ErrorIs(t, err, calc.ErrValidation)
	assert.Len(t, store.bills, 3)
}

func TestPay(t *testing.T) {
	store := &memoryBills{}
	bills := NewBillingService(store, zap.NewNop())
	payments := NewPaymentService(store, zap.NewNop())
	ctx := context.Background()

	bill, err := bills.CreateBill(ctx, 7, CalculateInput{BillInput: calc.BillInput{Method: "units", DirectUnits: 100}})
	require.NoError(t, err)

	_, err = payments.Pay(ctx, 7, bill.ID, "cash")
	assert.ErrorIs(t, err, ErrUnknownPaymentMethod)

	_, err = payments.Pay(ctx, 9, bill.ID, "upi")
	assert.ErrorIs(t, err, ErrBillNotFound)

	payment, err := payments.Pay(ctx, 7, bill.ID, " UPI ")
	require.NoError(t, err)
	assert.Equal(t, "upi", payment.Method)
	assert.Regexp(t, `^RCPT-[0-9A-F-]{36}$`, payment.Receipt)
	assert.InDelta(t, 1344.0, payment.Amount, 1e-9)

	stored, err := bills.Bill(ctx, 7, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, stored.Status)

	_, err = payments.Pay(ctx, 7, bill.ID, "card")
	assert.ErrorIs(t, err, ErrBillPaid)
}
