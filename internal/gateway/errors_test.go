package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	cartapp "github.com/dwikikusuma/pharmacy-pos/internal/cart/app"
	catalogapp "github.com/dwikikusuma/pharmacy-pos/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/pharmacy-pos/internal/checkout/app"
	"github.com/dwikikusuma/pharmacy-pos/internal/payment"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestHTTPStatusFromGRPC(t *testing.T) {
	t.Run("InvalidArgument -> 400", func(t *testing.T) {
		err := status.Error(codes.InvalidArgument, "bad")
		gotStatus, gotCode, _ := httpStatusFromGRPC(err)
		if gotStatus != http.StatusBadRequest || gotCode != "INVALID_ARGUMENT" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("NotFound -> 404", func(t *testing.T) {
		err := status.Error(codes.NotFound, "missing")
		gotStatus, gotCode, _ := httpStatusFromGRPC(err)
		if gotStatus != http.StatusNotFound || gotCode != "NOT_FOUND" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("FailedPrecondition -> 409", func(t *testing.T) {
		err := status.Error(codes.FailedPrecondition, "blocked")
		gotStatus, gotCode, _ := httpStatusFromGRPC(err)
		if gotStatus != http.StatusConflict || gotCode != "FAILED_PRECONDITION" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("Unavailable -> 503", func(t *testing.T) {
		err := status.Error(codes.Unavailable, "down")
		gotStatus, gotCode, _ := httpStatusFromGRPC(err)
		if gotStatus != http.StatusServiceUnavailable || gotCode != "UNAVAILABLE" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("non-grpc error -> 500", func(t *testing.T) {
		err := errors.New("boom")
		gotStatus, gotCode, _ := httpStatusFromGRPC(err)
		if gotStatus != http.StatusInternalServerError || gotCode != "INTERNAL" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})
}

func TestStatusFromErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"validation", fmt.Errorf("%w: price", catalogapp.ErrInvalidInput), codes.InvalidArgument},
		{"unknown method", payment.ErrUnknownMethod, codes.InvalidArgument},
		{"catalog not found", catalogapp.ErrNotFound, codes.NotFound},
		{"cart not found", cartapp.ErrNotFound, codes.NotFound},
		{"no receipt", checkoutapp.ErrNoReceipt, codes.NotFound},
		{"catalog stock", catalogapp.ErrInsufficientStock, codes.FailedPrecondition},
		{"cart stock", cartapp.ErrInsufficientStock, codes.FailedPrecondition},
		{"payment", payment.ErrInsufficientPayment, codes.FailedPrecondition},
		{"empty cart", checkoutapp.ErrEmptyCart, codes.FailedPrecondition},
		{"anything else", errors.New("boom"), codes.Internal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, ok := status.FromError(statusFromErr(tc.err))
			if !ok {
				t.Fatal("expected a grpc status")
			}
			if st.Code() != tc.want {
				t.Fatalf("got %s, want %s", st.Code(), tc.want)
			}
		})
	}
}
