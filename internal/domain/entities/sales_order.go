package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrder is the one-way result of converting a quotation.
//
// Storage model (DynamoDB):
//   - PK: id, derived from quotation_id so a quotation converts at most once
type SalesOrder struct {
	ID           string          `json:"id"`
	SONumber     string          `json:"so_number"`
	QuotationID  string          `json:"quotation_id"`
	CustomerName string          `json:"customer_name"`
	Items        []LineItem      `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	PaymentTerms string          `json:"payment_terms,omitempty"`
	CustomerPO   string          `json:"customer_po"`
	CreatedAt    time.Time       `json:"created_at"`
}
