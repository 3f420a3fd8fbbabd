package domain

import (
	"time"

	"github.com/dwikikusuma/pharmacy-pos/internal/payment"
	"github.com/shopspring/decimal"
)

type QuoteLine struct {
	ItemID    string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

type Quote struct {
	Lines    []QuoteLine
	Subtotal decimal.Decimal
}

type ReceiptLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Receipt is the immutable record of a committed sale. AmountReceived and
// Change are only set for cash.
type Receipt struct {
	Date           time.Time
	Lines          []ReceiptLine
	Subtotal       decimal.Decimal
	PaymentMethod  payment.Method
	AmountReceived *decimal.Decimal
	Change         *decimal.Decimal
}
