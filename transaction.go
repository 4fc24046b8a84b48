package fio

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// moveDateLayout matches the vendor format YYYY-MM-DD+GMT, e.g. 2024-01-10+0100.
const moveDateLayout = "2006-01-02-0700"

// Transaction is one posted bank movement from a downloaded statement.
// It is populated field by field while parsing a statement row and is
// read-only afterwards. All values are kept in the bank's own textual
// rendering; typed accessors parse on demand.
type Transaction struct {
	moveID             string
	moveDate           string
	amount             string
	currency           string
	account            string
	accountName        string
	bankCode           string
	bankName           string
	constantSymbol     string
	variableSymbol     string
	specificSymbol     string
	userIdentification string
	message            string
	transactionType    string
	performed          string
	specification      string
	comment            string
	bic                string
	instructionID      string
}

// setByID writes the value for the given FIO column id. Unknown ids are
// rejected rather than skipped so a vendor schema change surfaces loudly.
func (t *Transaction) setByID(id int, value string) error {
	switch id {
	case 22:
		t.moveID = value
	case 0:
		t.moveDate = value
	case 1:
		t.amount = value
	case 14:
		t.currency = value
	case 2:
		t.account = value
	case 10:
		t.accountName = value
	case 3:
		t.bankCode = value
	case 12:
		t.bankName = value
	case 4:
		t.constantSymbol = value
	case 5:
		t.variableSymbol = value
	case 6:
		t.specificSymbol = value
	case 7:
		t.userIdentification = value
	case 16:
		t.message = value
	case 8:
		t.transactionType = value
	case 9:
		t.performed = value
	case 18:
		t.specification = value
	case 25:
		t.comment = value
	case 26:
		t.bic = value
	case 17:
		t.instructionID = value
	default:
		return fmt.Errorf("unknown FIO transaction column id %d", id)
	}
	return nil
}

// MoveID returns the vendor-assigned movement identifier. Treated as an
// opaque string, it is not guaranteed to be purely numeric.
func (t *Transaction) MoveID() string {
	return t.moveID
}

// MoveDate parses the movement date from the vendor format YYYY-MM-DD+GMT.
func (t *Transaction) MoveDate() (time.Time, error) {
	return time.Parse(moveDateLayout, t.moveDate)
}

// Amount parses the movement amount. The bank's exact figure is preserved
// internally as text; see AmountText.
func (t *Transaction) Amount() (decimal.Decimal, error) {
	return decimal.NewFromString(t.amount)
}

// AmountText returns the amount exactly as the bank rendered it.
func (t *Transaction) AmountText() string {
	return t.amount
}

// Currency returns the ISO 4217 currency code.
func (t *Transaction) Currency() string {
	return t.currency
}

// Account returns the counterparty account number.
func (t *Transaction) Account() string {
	return t.account
}

// AccountName returns the counterparty account holder name.
func (t *Transaction) AccountName() string {
	return t.accountName
}

// BankCode returns the counterparty bank code.
func (t *Transaction) BankCode() string {
	return t.bankCode
}

// BankName returns the counterparty bank name.
func (t *Transaction) BankName() string {
	return t.bankName
}

// ConstantSymbol returns the constant symbol. Leading zeros are preserved.
func (t *Transaction) ConstantSymbol() string {
	return t.constantSymbol
}

// VariableSymbol returns the variable symbol. Leading zeros are preserved.
func (t *Transaction) VariableSymbol() string {
	return t.variableSymbol
}

// SpecificSymbol returns the specific symbol. Leading zeros are preserved.
func (t *Transaction) SpecificSymbol() string {
	return t.specificSymbol
}

// UserIdentification returns the user identification text.
func (t *Transaction) UserIdentification() string {
	return t.userIdentification
}

// Message returns the free-text message.
func (t *Transaction) Message() string {
	return t.message
}

// Type returns the movement type/category text.
func (t *Transaction) Type() string {
	return t.transactionType
}

// Performed returns who performed the movement.
func (t *Transaction) Performed() string {
	return t.performed
}

// Specification returns the specification text.
func (t *Transaction) Specification() string {
	return t.specification
}

// Comment returns the comment text.
func (t *Transaction) Comment() string {
	return t.comment
}

// BIC returns the counterparty BIC.
func (t *Transaction) BIC() string {
	return t.bic
}

// InstructionID returns the payment instruction id.
func (t *Transaction) InstructionID() string {
	return t.instructionID
}
