package gateway

import (
	"net/http"

	reorderapp "github.com/dwikikusuma/pharmacy-pos/internal/reorder/app"
	"github.com/gin-gonic/gin"
)

type lowStockItemResponse struct {
	itemResponse
	SuggestedOrderQuantity int `json:"suggested_order_quantity"`
}

func (s *Server) lowStock(c *gin.Context) {
	items, err := s.reorder.LowStockItems(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}

	out := make([]lowStockItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, lowStockItemResponse{
			itemResponse:           toItemResponse(item),
			SuggestedOrderQuantity: reorderapp.SuggestedOrderQuantity(item),
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": out})
}

func (s *Server) placeOrder(c *gin.Context) {
	item, err := s.reorder.PlaceOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemResponse(item))
}
