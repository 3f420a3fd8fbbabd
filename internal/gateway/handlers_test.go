package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	cartapp "github.com/dwikikusuma/pharmacy-pos/internal/cart/app"
	cartadapter "github.com/dwikikusuma/pharmacy-pos/internal/cart/infra/adapter"
	catalogapp "github.com/dwikikusuma/pharmacy-pos/internal/catalog/app"
	"github.com/dwikikusuma/pharmacy-pos/internal/catalog/infra/memory"
	checkoutapp "github.com/dwikikusuma/pharmacy-pos/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/pharmacy-pos/internal/checkout/infra/adapter"
	reorderapp "github.com/dwikikusuma/pharmacy-pos/internal/reorder/app"
	"github.com/gin-gonic/gin"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	catalogSvc := catalogapp.NewService(memory.NewItemRepo())
	cartSvc := cartapp.NewService(cartadapter.NewCatalogServiceReader(catalogSvc))
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceAccess(cartSvc),
		checkoutadapter.NewCatalogServiceAccess(catalogSvc),
		10,
	)
	reorderSvc := reorderapp.NewService(catalogSvc)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(log, catalogSvc, cartSvc, checkoutSvc, reorderSvc).Engine()
}

func do(t *testing.T, engine *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	out := map[string]any{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("unmarshal response %q: %v", rec.Body.String(), err)
		}
	}
	return rec.Code, out
}

func TestSaleFlow(t *testing.T) {
	engine := newTestEngine(t)

	code, created := do(t, engine, http.MethodPost, "/api/v1/items", map[string]string{
		"name":          "Paracetamol 500mg",
		"price":         "5.99",
		"stock":         "150",
		"reorder_level": "50",
	})
	if code != http.StatusCreated {
		t.Fatalf("create item: %d %v", code, created)
	}
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatalf("no id in %v", created)
	}

	for i := 0; i < 3; i++ {
		code, _ = do(t, engine, http.MethodPost, "/api/v1/cart/items", map[string]string{"item_id": id})
		if code != http.StatusOK {
			t.Fatalf("add to cart: %d", code)
		}
	}

	code, cart := do(t, engine, http.MethodGet, "/api/v1/cart", nil)
	if code != http.StatusOK {
		t.Fatalf("get cart: %d", code)
	}
	if cart["subtotal"] != "17.97" {
		t.Fatalf("cart subtotal %v", cart["subtotal"])
	}

	code, receipt := do(t, engine, http.MethodPost, "/api/v1/checkout", map[string]string{
		"payment_method":  "cash",
		"amount_tendered": "20.00",
	})
	if code != http.StatusOK {
		t.Fatalf("checkout: %d %v", code, receipt)
	}
	if receipt["subtotal"] != "17.97" || receipt["change"] != "2.03" || receipt["payment_method"] != "Cash" {
		t.Fatalf("unexpected receipt: %v", receipt)
	}
	items, _ := receipt["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("receipt items: %v", receipt["items"])
	}
	line, _ := items[0].(map[string]any)
	if line["name"] != "Paracetamol 500mg" || line["quantity"] != float64(3) || line["total"] != "17.97" {
		t.Fatalf("receipt line: %v", line)
	}

	code, item := do(t, engine, http.MethodGet, "/api/v1/items/"+id, nil)
	if code != http.StatusOK || item["stock"] != float64(147) {
		t.Fatalf("stock after sale: %d %v", code, item["stock"])
	}

	code, cart = do(t, engine, http.MethodGet, "/api/v1/cart", nil)
	if code != http.StatusOK {
		t.Fatalf("get cart: %d", code)
	}
	if lines, _ := cart["items"].([]any); len(lines) != 0 {
		t.Fatalf("cart must be empty: %v", cart)
	}

	code, last := do(t, engine, http.MethodGet, "/api/v1/checkout/receipt", nil)
	if code != http.StatusOK || last["subtotal"] != "17.97" {
		t.Fatalf("last receipt: %d %v", code, last)
	}
}

func TestSaleFlowErrors(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("bad price -> 400", func(t *testing.T) {
		code, body := do(t, engine, http.MethodPost, "/api/v1/items", map[string]string{
			"name":          "Aspirin",
			"price":         "cheap",
			"stock":         "10",
			"reorder_level": "5",
		})
		if code != http.StatusBadRequest {
			t.Fatalf("got %d %v", code, body)
		}
	})

	t.Run("unknown item -> 404", func(t *testing.T) {
		code, _ := do(t, engine, http.MethodGet, "/api/v1/items/ghost", nil)
		if code != http.StatusNotFound {
			t.Fatalf("got %d", code)
		}
	})

	t.Run("checkout with empty cart -> 409", func(t *testing.T) {
		code, _ := do(t, engine, http.MethodPost, "/api/v1/checkout", map[string]string{
			"payment_method": "card",
		})
		if code != http.StatusConflict {
			t.Fatalf("got %d", code)
		}
	})

	t.Run("receipt before any sale -> 404", func(t *testing.T) {
		code, _ := do(t, engine, http.MethodGet, "/api/v1/checkout/receipt", nil)
		if code != http.StatusNotFound {
			t.Fatalf("got %d", code)
		}
	})

	t.Run("unknown payment method -> 400", func(t *testing.T) {
		code, _ := do(t, engine, http.MethodPost, "/api/v1/checkout", map[string]string{
			"payment_method": "cheque",
		})
		if code != http.StatusBadRequest {
			t.Fatalf("got %d", code)
		}
	})
}

func TestReorderFlow(t *testing.T) {
	engine := newTestEngine(t)

	code, created := do(t, engine, http.MethodPost, "/api/v1/items", map[string]string{
		"name":          "Ibuprofen 200mg",
		"price":         "7.49",
		"stock":         "30",
		"reorder_level": "40",
	})
	if code != http.StatusCreated {
		t.Fatalf("create item: %d", code)
	}
	id, _ := created["id"].(string)

	code, low := do(t, engine, http.MethodGet, "/api/v1/reorder/low-stock", nil)
	if code != http.StatusOK {
		t.Fatalf("low stock: %d", code)
	}
	entries, _ := low["items"].([]any)
	if len(entries) != 1 {
		t.Fatalf("low stock entries: %v", low)
	}
	entry, _ := entries[0].(map[string]any)
	if entry["id"] != id || entry["suggested_order_quantity"] != float64(50) {
		t.Fatalf("unexpected entry: %v", entry)
	}

	code, restocked := do(t, engine, http.MethodPost, "/api/v1/reorder/items/"+id+"/order", nil)
	if code != http.StatusOK || restocked["stock"] != float64(80) {
		t.Fatalf("place order: %d %v", code, restocked)
	}

	code, low = do(t, engine, http.MethodGet, "/api/v1/reorder/low-stock", nil)
	if code != http.StatusOK {
		t.Fatalf("low stock: %d", code)
	}
	if entries, _ := low["items"].([]any); len(entries) != 0 {
		t.Fatalf("item must leave the low-stock list: %v", low)
	}
}
