// Package payment settles tender against a subtotal. It is pure arithmetic:
// no state, no I/O. Card settlement is a stub that always approves.
package payment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Method string

const (
	Cash Method = "Cash"
	Card Method = "Card"
)

var (
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrUnknownMethod       = errors.New("unknown payment method")
)

func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash":
		return Cash, nil
	case "card":
		return Card, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Settlement records the outcome of a validated payment. Received and Change
// are only meaningful for cash.
type Settlement struct {
	Method   Method
	Received decimal.Decimal
	Change   decimal.Decimal
}

// SettleCash validates raw tender input against the subtotal. Unparsable
// input counts as insufficient payment, not a separate failure mode.
func SettleCash(tendered string, subtotal decimal.Decimal) (received, change decimal.Decimal, err error) {
	t, perr := decimal.NewFromString(strings.TrimSpace(tendered))
	if perr != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: cannot read tendered amount %q", ErrInsufficientPayment, tendered)
	}
	if t.LessThan(subtotal) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: tendered %s below subtotal %s", ErrInsufficientPayment, t, subtotal)
	}
	return t, t.Sub(subtotal), nil
}

func Settle(method Method, tendered string, subtotal decimal.Decimal) (Settlement, error) {
	switch method {
	case Card:
		return Settlement{Method: Card}, nil
	case Cash:
		received, change, err := SettleCash(tendered, subtotal)
		if err != nil {
			return Settlement{}, err
		}
		return Settlement{Method: Cash, Received: received, Change: change}, nil
	}
	return Settlement{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
}

// CanComplete reports whether a sale could settle right now. An empty cart
// never completes, regardless of method.
func CanComplete(lineCount int, method Method, tendered string, subtotal decimal.Decimal) bool {
	if lineCount == 0 {
		return false
	}
	switch method {
	case Card:
		return true
	case Cash:
		_, _, err := SettleCash(tendered, subtotal)
		return err == nil
	}
	return false
}
