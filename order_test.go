package fio

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewOrder(t *testing.T) *TransactionOrder {
	t.Helper()

	order, err := NewTransactionOrder(decimal.NewFromInt(100), "CZK", "2111111111", "2010")
	require.NoError(t, err)
	return order
}

func TestNewTransactionOrder(t *testing.T) {
	tests := []struct {
		name      string
		amount    decimal.Decimal
		currency  string
		accountTo string
		bankCode  string
		wantErr   string
	}{
		{
			name:      "valid minimal",
			amount:    decimal.NewFromInt(100),
			currency:  "CZK",
			accountTo: "2111111111",
			bankCode:  "2010",
		},
		{
			name:      "valid with account prefix",
			amount:    decimal.NewFromFloat(99.5),
			currency:  "EUR",
			accountTo: "123456-1234567890",
			bankCode:  "0800",
		},
		{
			name:      "zero amount",
			amount:    decimal.Zero,
			currency:  "CZK",
			accountTo: "2111111111",
			bankCode:  "2010",
			wantErr:   "amount must be positive",
		},
		{
			name:      "negative amount",
			amount:    decimal.NewFromInt(-5),
			currency:  "CZK",
			accountTo: "2111111111",
			bankCode:  "2010",
			wantErr:   "amount must be positive",
		},
		{
			name:      "account base too long",
			amount:    decimal.NewFromInt(100),
			currency:  "CZK",
			accountTo: "12-3456789012345",
			bankCode:  "2010",
			wantErr:   "invalid destination account",
		},
		{
			name:      "bank code too short",
			amount:    decimal.NewFromInt(100),
			currency:  "CZK",
			accountTo: "2111111111",
			bankCode:  "123",
			wantErr:   "invalid bank code",
		},
		{
			name:      "lowercase currency",
			amount:    decimal.NewFromInt(100),
			currency:  "eur",
			accountTo: "2111111111",
			bankCode:  "2010",
			wantErr:   "invalid currency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := NewTransactionOrder(tt.amount, tt.currency, tt.accountTo, tt.bankCode)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidOrder)
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Nil(t, order)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, PaymentTypeStandard, order.PaymentType())
			assert.WithinDuration(t, time.Now(), order.MaturityDate(), 10*time.Second)
		})
	}
}

func TestTransactionOrder_SetSymbols(t *testing.T) {
	order := mustNewOrder(t)

	require.NoError(t, order.SetVariableSymbol("0123456789"))
	assert.Equal(t, "0123456789", order.VariableSymbol())
	require.NoError(t, order.SetConstantSymbol("0308"))
	assert.Equal(t, "0308", order.ConstantSymbol())
	require.NoError(t, order.SetSpecificSymbol("1"))
	assert.Equal(t, "1", order.SpecificSymbol())

	assert.ErrorIs(t, order.SetVariableSymbol("12345678901"), ErrInvalidOrder)
	assert.ErrorIs(t, order.SetVariableSymbol("12a4"), ErrInvalidOrder)
	assert.ErrorIs(t, order.SetConstantSymbol("12345"), ErrInvalidOrder)
	assert.ErrorIs(t, order.SetSpecificSymbol(""), ErrInvalidOrder)

	// Failed setters leave prior state untouched
	assert.Equal(t, "0123456789", order.VariableSymbol())
	assert.Equal(t, "0308", order.ConstantSymbol())
	assert.Equal(t, "1", order.SpecificSymbol())
}

func TestTransactionOrder_SetMessageForRecipient(t *testing.T) {
	order := mustNewOrder(t)

	message := strings.Repeat("a", 140)
	require.NoError(t, order.SetMessageForRecipient(message))
	assert.Equal(t, message, order.MessageForRecipient())

	err := order.SetMessageForRecipient(strings.Repeat("a", 141))
	assert.ErrorIs(t, err, ErrInvalidOrder)
	assert.Equal(t, message, order.MessageForRecipient())
}

func TestTransactionOrder_SetComment(t *testing.T) {
	order := mustNewOrder(t)

	comment := strings.Repeat("b", 255)
	require.NoError(t, order.SetComment(comment))
	assert.Equal(t, comment, order.Comment())

	err := order.SetComment(strings.Repeat("b", 256))
	assert.ErrorIs(t, err, ErrInvalidOrder)
	assert.Equal(t, comment, order.Comment())
}

func TestTransactionOrder_SetPaymentType(t *testing.T) {
	order := mustNewOrder(t)

	for _, pt := range []PaymentType{PaymentTypeStandard, PaymentTypeFaster, PaymentTypePriority, PaymentTypeEncashment} {
		require.NoError(t, order.SetPaymentType(pt))
		assert.Equal(t, pt, order.PaymentType())
	}

	err := order.SetPaymentType(PaymentType(431002))
	assert.ErrorIs(t, err, ErrInvalidOrder)
	assert.Equal(t, PaymentTypeEncashment, order.PaymentType())
}

func TestTransactionOrder_SetMaturityDate(t *testing.T) {
	order := mustNewOrder(t)

	date := time.Date(2024, 5, 1, 15, 4, 5, 0, time.UTC)
	order.SetMaturityDate(date)
	assert.Equal(t, date, order.MaturityDate())
}
