package fio

import (
	"encoding/xml"
	"strconv"
)

const (
	xsiNamespace         = "http://www.w3.org/2001/XMLSchema-instance"
	importSchemaLocation = "http://www.fio.cz/schema/importIB.xsd"
	importDateLayout     = "2006-01-02"
)

// importDocument is the root of the order-import payload. Element names and
// order are the bank's schema contract and must not change.
type importDocument struct {
	XMLName        xml.Name     `xml:"Import"`
	XsiNamespace   string       `xml:"xmlns:xsi,attr"`
	SchemaLocation string       `xml:"xsi:noNamespaceSchemaLocation,attr"`
	Orders         importOrders `xml:"Orders"`
}

type importOrders struct {
	Transactions []domesticTransaction `xml:"DomesticTransaction"`
}

type domesticTransaction struct {
	AccountFrom         string `xml:"accountFrom"`
	Currency            string `xml:"currency"`
	Amount              string `xml:"amount"`
	AccountTo           string `xml:"accountTo"`
	BankCode            string `xml:"bankCode"`
	ConstantSymbol      string `xml:"ks"`
	VariableSymbol      string `xml:"vs"`
	SpecificSymbol      string `xml:"ss"`
	Date                string `xml:"date"`
	MessageForRecipient string `xml:"messageForRecipient"`
	Comment             string `xml:"comment"`
	PaymentType         string `xml:"paymentType"`
}

// buildImportXML serializes orders into the bank's import schema. Amounts
// carry exactly two decimal places with a dot separator and no grouping;
// absent optional fields serialize as empty elements.
func buildImportXML(accountFrom string, orders []*TransactionOrder) ([]byte, error) {
	doc := importDocument{
		XsiNamespace:   xsiNamespace,
		SchemaLocation: importSchemaLocation,
	}

	doc.Orders.Transactions = make([]domesticTransaction, 0, len(orders))
	for _, order := range orders {
		doc.Orders.Transactions = append(doc.Orders.Transactions, domesticTransaction{
			AccountFrom:         accountFrom,
			Currency:            order.Currency(),
			Amount:              order.Amount().StringFixed(2),
			AccountTo:           order.AccountTo(),
			BankCode:            order.BankCode(),
			ConstantSymbol:      order.ConstantSymbol(),
			VariableSymbol:      order.VariableSymbol(),
			SpecificSymbol:      order.SpecificSymbol(),
			Date:                order.MaturityDate().Format(importDateLayout),
			MessageForRecipient: order.MessageForRecipient(),
			Comment:             order.Comment(),
			PaymentType:         strconv.Itoa(int(order.PaymentType())),
		})
	}

	payload, err := xml.Marshal(doc)
	if err != nil {
		return nil, failure("marshaling order import XML", err)
	}

	return append([]byte(xml.Header), payload...), nil
}
