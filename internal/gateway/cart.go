package gateway

import (
	"errors"
	"fmt"
	"net/http"

	catalogapp "github.com/dwikikusuma/pharmacy-pos/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/pharmacy-pos/internal/checkout/app"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type addCartItemRequest struct {
	ItemID string `json:"item_id"`
}

type updateCartItemRequest struct {
	Delta int `json:"delta"`
}

type cartLineResponse struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type cartResponse struct {
	Items    []cartLineResponse `json:"items"`
	Subtotal decimal.Decimal    `json:"subtotal"`
}

func (s *Server) getCart(c *gin.Context) {
	quote, err := s.checkout.Quote(c.Request.Context())
	if err != nil {
		if errors.Is(err, checkoutapp.ErrEmptyCart) {
			c.JSON(http.StatusOK, cartResponse{Items: []cartLineResponse{}, Subtotal: decimal.Zero})
			return
		}
		writeErr(c, err)
		return
	}

	out := cartResponse{
		Items:    make([]cartLineResponse, 0, len(quote.Lines)),
		Subtotal: quote.Subtotal,
	}
	for _, line := range quote.Lines {
		out.Items = append(out.Items, cartLineResponse{
			ItemID:    line.ItemID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) addCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
		writeErr(c, fmt.Errorf("%w: item_id is required", catalogapp.ErrInvalidInput))
		return
	}

	if err := s.cart.AddItem(c.Request.Context(), req.ItemID); err != nil {
		writeErr(c, err)
		return
	}
	s.getCart(c)
}

func (s *Server) updateCartItem(c *gin.Context) {
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErr(c, fmt.Errorf("%w: %v", catalogapp.ErrInvalidInput, err))
		return
	}

	if err := s.cart.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Delta); err != nil {
		writeErr(c, err)
		return
	}
	s.getCart(c)
}

func (s *Server) removeCartItem(c *gin.Context) {
	if err := s.cart.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	s.getCart(c)
}
