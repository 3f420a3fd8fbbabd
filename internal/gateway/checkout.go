package gateway

import (
	"net/http"
	"time"

	"github.com/dwikikusuma/pharmacy-pos/internal/checkout/domain"
	"github.com/dwikikusuma/pharmacy-pos/internal/payment"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type checkoutRequest struct {
	PaymentMethod  string `json:"payment_method"`
	AmountTendered string `json:"amount_tendered"`
}

type receiptLineResponse struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}

type receiptResponse struct {
	Date           string                `json:"date"`
	Items          []receiptLineResponse `json:"items"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	PaymentMethod  payment.Method        `json:"payment_method"`
	AmountReceived *decimal.Decimal      `json:"amount_received,omitempty"`
	Change         *decimal.Decimal      `json:"change,omitempty"`
}

func toReceiptResponse(r domain.Receipt) receiptResponse {
	out := receiptResponse{
		Date:           r.Date.Format(time.RFC3339),
		Items:          make([]receiptLineResponse, 0, len(r.Lines)),
		Subtotal:       r.Subtotal,
		PaymentMethod:  r.PaymentMethod,
		AmountReceived: r.AmountReceived,
		Change:         r.Change,
	}
	for _, line := range r.Lines {
		out.Items = append(out.Items, receiptLineResponse{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.UnitPrice,
			Total:    line.LineTotal,
		})
	}
	return out
}

func (s *Server) completePurchase(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErr(c, payment.ErrUnknownMethod)
		return
	}

	method, err := payment.ParseMethod(req.PaymentMethod)
	if err != nil {
		writeErr(c, err)
		return
	}

	receipt, err := s.checkout.Complete(c.Request.Context(), method, req.AmountTendered)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toReceiptResponse(receipt))
}

func (s *Server) lastReceipt(c *gin.Context) {
	receipt, err := s.checkout.LastReceipt()
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toReceiptResponse(receipt))
}
