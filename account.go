package fio

import (
	"context"
	"time"
)

// Account binds an account number, its access token and a Client together
// so callers need not repeat credentials per call. It holds no other state.
type Account struct {
	accountNumber string
	token         string
	client        *Client
}

// NewAccount creates a facade for one account session.
func NewAccount(accountNumber, token string, client *Client) *Account {
	return &Account{
		accountNumber: accountNumber,
		token:         token,
		client:        client,
	}
}

// Number returns the bound account number.
func (a *Account) Number() string {
	return a.accountNumber
}

// GetNewTransactions downloads transactions posted since the last download.
func (a *Account) GetNewTransactions(ctx context.Context) ([]*Transaction, error) {
	return a.client.GetNewTransactions(ctx, a.token)
}

// GetTransactions downloads transactions posted between from and to.
func (a *Account) GetTransactions(ctx context.Context, from, to time.Time) ([]*Transaction, error) {
	return a.client.GetTransactions(ctx, a.token, from, to)
}

// SetBreakpointByID resets the download cursor to the movement id given.
func (a *Account) SetBreakpointByID(ctx context.Context, moveID string) error {
	return a.client.SetBreakpointByID(ctx, a.token, moveID)
}

// SetBreakpointByDate resets the download cursor to the day given.
func (a *Account) SetBreakpointByDate(ctx context.Context, date time.Time) error {
	return a.client.SetBreakpointByDate(ctx, a.token, date)
}

// SendOrders uploads payment orders drawn from the bound account.
func (a *Account) SendOrders(ctx context.Context, orders []*TransactionOrder) error {
	return a.client.SendTransactionOrders(ctx, a.token, a.accountNumber, orders)
}
