package fio

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const (
	statusOK      = "ok"
	statusWarning = "warning"
)

// statementResponse mirrors the statement download envelope. Rows are sparse
// maps keyed by column name; only the id inside each cell is authoritative.
type statementResponse struct {
	AccountStatement struct {
		TransactionList *struct {
			Transaction []map[string]*statementCell `json:"transaction"`
		} `json:"transactionList"`
	} `json:"accountStatement"`
}

type statementCell struct {
	ID    int `json:"id"`
	Value any `json:"value"`
}

// parseTransactions turns a statement download body into transaction
// records. A missing, null or empty transactionList is a normal outcome
// ("no new transactions") and yields an empty slice.
func parseTransactions(body []byte) ([]*Transaction, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var envelope statementResponse
	if err := dec.Decode(&envelope); err != nil {
		return nil, failure("invalid JSON from FIO API", err)
	}

	list := envelope.AccountStatement.TransactionList
	if list == nil {
		return []*Transaction{}, nil
	}

	transactions := make([]*Transaction, 0, len(list.Transaction))
	for i, row := range list.Transaction {
		transaction := &Transaction{}
		for _, cell := range row {
			if cell == nil {
				continue
			}
			if err := transaction.setByID(cell.ID, coerceValue(cell.Value)); err != nil {
				return nil, failure(fmt.Sprintf("statement row %d", i), err)
			}
		}
		transactions = append(transactions, transaction)
	}

	return transactions, nil
}

// coerceValue renders any JSON cell value as text. Numbers keep the bank's
// exact rendering thanks to json.Number, so no precision is lost before a
// caller asks for a typed value.
func coerceValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// parseUploadStatus classifies an order-import response body by the text of
// its first status element: "ok" is success, "warning" means the import was
// accepted with reservations, anything else (including unparseable XML or a
// missing status element) is a failure.
func parseUploadStatus(body []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(body))

	for {
		token, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return &Error{Kind: Failure, Message: "missing status element in FIO API response"}
		}
		if err != nil {
			return failure("invalid XML received from FIO API", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "status" {
			continue
		}

		var status string
		if err := dec.DecodeElement(&status, &start); err != nil {
			return failure("invalid XML received from FIO API", err)
		}

		switch status {
		case statusOK:
			return nil
		case statusWarning:
			return &Error{Kind: Warning, Message: "sending FIO orders succeeded with warning"}
		default:
			return &Error{Kind: Failure, Message: fmt.Sprintf("sending FIO orders failed with status %q", status)}
		}
	}
}
