package fio

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// PaymentType is one of the bank's domestic payment routing codes.
type PaymentType int

const (
	PaymentTypeStandard   PaymentType = 431001
	PaymentTypeFaster     PaymentType = 431004
	PaymentTypePriority   PaymentType = 431005
	PaymentTypeEncashment PaymentType = 431022
)

const (
	maxMessageLength = 140
	maxCommentLength = 255
)

var (
	accountToPattern      = regexp.MustCompile(`^([0-9]{2,6}-)?[0-9]{2,10}$`)
	bankCodePattern       = regexp.MustCompile(`^[0-9]{4}$`)
	currencyPattern       = regexp.MustCompile(`^[A-Z]{3}$`)
	variableSymbolPattern = regexp.MustCompile(`^[0-9]{1,10}$`)
	constantSymbolPattern = regexp.MustCompile(`^[0-9]{1,4}$`)
	specificSymbolPattern = regexp.MustCompile(`^[0-9]{1,10}$`)
)

// TransactionOrder is an outbound domestic payment instruction, mutable
// until submission. Every setter either fully applies the value or leaves
// prior state unchanged and returns a validation error.
type TransactionOrder struct {
	amount              decimal.Decimal
	currency            string
	accountTo           string
	bankCode            string
	variableSymbol      string
	constantSymbol      string
	specificSymbol      string
	maturityDate        time.Time
	messageForRecipient string
	comment             string
	paymentType         PaymentType
}

// NewTransactionOrder validates the required fields eagerly. Amount must be
// positive, accountTo is (prefix-)base with a 2-6 digit prefix and a 2-10
// digit base, bankCode exactly four digits, currency ISO 4217 upper case.
// Payment type defaults to standard and maturity date to the current day.
func NewTransactionOrder(amount decimal.Decimal, currency, accountTo, bankCode string) (*TransactionOrder, error) {
	switch {
	case !amount.IsPositive():
		return nil, fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidOrder, amount)
	case !accountToPattern.MatchString(accountTo):
		return nil, fmt.Errorf("%w: invalid destination account %q", ErrInvalidOrder, accountTo)
	case !bankCodePattern.MatchString(bankCode):
		return nil, fmt.Errorf("%w: invalid bank code %q, expected exactly four digits", ErrInvalidOrder, bankCode)
	case !currencyPattern.MatchString(currency):
		return nil, fmt.Errorf("%w: invalid currency %q, expected ISO 4217 format", ErrInvalidOrder, currency)
	}

	return &TransactionOrder{
		amount:       amount,
		currency:     currency,
		accountTo:    accountTo,
		bankCode:     bankCode,
		paymentType:  PaymentTypeStandard,
		maturityDate: time.Now(),
	}, nil
}

// SetVariableSymbol accepts up to ten digits.
func (o *TransactionOrder) SetVariableSymbol(vs string) error {
	if !variableSymbolPattern.MatchString(vs) {
		return fmt.Errorf("%w: invalid variable symbol %q, expected up to ten digits", ErrInvalidOrder, vs)
	}
	o.variableSymbol = vs
	return nil
}

// SetConstantSymbol accepts up to four digits.
func (o *TransactionOrder) SetConstantSymbol(ks string) error {
	if !constantSymbolPattern.MatchString(ks) {
		return fmt.Errorf("%w: invalid constant symbol %q, expected up to four digits", ErrInvalidOrder, ks)
	}
	o.constantSymbol = ks
	return nil
}

// SetSpecificSymbol accepts up to ten digits.
func (o *TransactionOrder) SetSpecificSymbol(ss string) error {
	if !specificSymbolPattern.MatchString(ss) {
		return fmt.Errorf("%w: invalid specific symbol %q, expected up to ten digits", ErrInvalidOrder, ss)
	}
	o.specificSymbol = ss
	return nil
}

// SetMaturityDate sets the order's due date. Only the day matters, the
// time of day is ignored when serializing.
func (o *TransactionOrder) SetMaturityDate(date time.Time) {
	o.maturityDate = date
}

// SetMessageForRecipient accepts at most 140 characters.
func (o *TransactionOrder) SetMessageForRecipient(message string) error {
	if utf8.RuneCountInString(message) > maxMessageLength {
		return fmt.Errorf("%w: message for recipient exceeds %d characters", ErrInvalidOrder, maxMessageLength)
	}
	o.messageForRecipient = message
	return nil
}

// SetPaymentType accepts one of the PaymentType* constants.
func (o *TransactionOrder) SetPaymentType(pt PaymentType) error {
	switch pt {
	case PaymentTypeStandard, PaymentTypeFaster, PaymentTypePriority, PaymentTypeEncashment:
		o.paymentType = pt
		return nil
	default:
		return fmt.Errorf("%w: invalid payment type %d", ErrInvalidOrder, pt)
	}
}

// SetComment accepts at most 255 characters.
func (o *TransactionOrder) SetComment(comment string) error {
	if utf8.RuneCountInString(comment) > maxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidOrder, maxCommentLength)
	}
	o.comment = comment
	return nil
}

func (o *TransactionOrder) Amount() decimal.Decimal {
	return o.amount
}

func (o *TransactionOrder) Currency() string {
	return o.currency
}

func (o *TransactionOrder) AccountTo() string {
	return o.accountTo
}

func (o *TransactionOrder) BankCode() string {
	return o.bankCode
}

func (o *TransactionOrder) VariableSymbol() string {
	return o.variableSymbol
}

func (o *TransactionOrder) ConstantSymbol() string {
	return o.constantSymbol
}

func (o *TransactionOrder) SpecificSymbol() string {
	return o.specificSymbol
}

func (o *TransactionOrder) MaturityDate() time.Time {
	return o.maturityDate
}

func (o *TransactionOrder) MessageForRecipient() string {
	return o.messageForRecipient
}

func (o *TransactionOrder) PaymentType() PaymentType {
	return o.paymentType
}

func (o *TransactionOrder) Comment() string {
	return o.comment
}
