package gateway

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	catalogapp "github.com/dwikikusuma/pharmacy-pos/internal/catalog/app"
	"github.com/dwikikusuma/pharmacy-pos/internal/catalog/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Numeric fields arrive as raw strings and are parsed-and-validated here;
// unparsed input never reaches the catalog.
type createItemRequest struct {
	Name         string `json:"name"`
	Price        string `json:"price"`
	Stock        string `json:"stock"`
	ReorderLevel string `json:"reorder_level"`
}

type updateItemRequest struct {
	Name         *string `json:"name"`
	Price        *string `json:"price"`
	Stock        *string `json:"stock"`
	ReorderLevel *string `json:"reorder_level"`
}

type itemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	ReorderLevel int             `json:"reorder_level"`
}

func toItemResponse(item domain.Item) itemResponse {
	return itemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Price:        item.Price,
		Stock:        item.Stock,
		ReorderLevel: item.ReorderLevel,
	}
}

func (s *Server) listItems(c *gin.Context) {
	items, err := s.catalog.ListItems(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}

	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	c.JSON(http.StatusOK, gin.H{"items": out})
}

func (s *Server) getItem(c *gin.Context) {
	item, err := s.catalog.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemResponse(item))
}

func (s *Server) createItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErr(c, fmt.Errorf("%w: %v", catalogapp.ErrInvalidInput, err))
		return
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		writeErr(c, err)
		return
	}
	stock, err := parseCount("stock", req.Stock)
	if err != nil {
		writeErr(c, err)
		return
	}
	reorderLevel, err := parseCount("reorder_level", req.ReorderLevel)
	if err != nil {
		writeErr(c, err)
		return
	}

	item, err := s.catalog.CreateItem(c.Request.Context(), catalogapp.CreateItemParams{
		Name:         req.Name,
		Price:        price,
		Stock:        stock,
		ReorderLevel: reorderLevel,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, toItemResponse(item))
}

func (s *Server) updateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErr(c, fmt.Errorf("%w: %v", catalogapp.ErrInvalidInput, err))
		return
	}

	var params catalogapp.UpdateItemParams
	params.Name = req.Name

	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			writeErr(c, err)
			return
		}
		params.Price = &price
	}
	if req.Stock != nil {
		stock, err := parseCount("stock", *req.Stock)
		if err != nil {
			writeErr(c, err)
			return
		}
		params.Stock = &stock
	}
	if req.ReorderLevel != nil {
		reorderLevel, err := parseCount("reorder_level", *req.ReorderLevel)
		if err != nil {
			writeErr(c, err)
			return
		}
		params.ReorderLevel = &reorderLevel
	}

	item, err := s.catalog.UpdateItem(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemResponse(item))
}

func (s *Server) deleteItem(c *gin.Context) {
	if err := s.catalog.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: price %q", catalogapp.ErrInvalidInput, raw)
	}
	return price, nil
}

func parseCount(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s %q", catalogapp.ErrInvalidInput, field, raw)
	}
	return n, nil
}
