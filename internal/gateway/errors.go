package gateway

import (
	"errors"
	"net/http"

	cartapp "github.com/dwikikusuma/pharmacy-pos/internal/cart/app"
	catalogapp "github.com/dwikikusuma/pharmacy-pos/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/pharmacy-pos/internal/checkout/app"
	"github.com/dwikikusuma/pharmacy-pos/internal/payment"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromErr translates domain errors into grpc status codes, the error
// taxonomy shared between core and transport.
func statusFromErr(err error) error {
	switch {
	case errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, payment.ErrUnknownMethod):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, catalogapp.ErrNotFound),
		errors.Is(err, cartapp.ErrNotFound),
		errors.Is(err, checkoutapp.ErrNoReceipt):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, catalogapp.ErrInsufficientStock),
		errors.Is(err, cartapp.ErrInsufficientStock),
		errors.Is(err, payment.ErrInsufficientPayment),
		errors.Is(err, checkoutapp.ErrEmptyCart):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func httpStatusFromGRPC(err error) (int, string, string) {
	st, ok := status.FromError(err)
	if !ok {
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest, "INVALID_ARGUMENT", st.Message()
	case codes.NotFound:
		return http.StatusNotFound, "NOT_FOUND", st.Message()
	case codes.FailedPrecondition:
		return http.StatusConflict, "FAILED_PRECONDITION", st.Message()
	case codes.Unavailable, codes.DeadlineExceeded:
		return http.StatusServiceUnavailable, "UNAVAILABLE", st.Message()
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}

func writeErr(c *gin.Context, err error) {
	httpStatus, code, msg := httpStatusFromGRPC(statusFromErr(err))
	c.JSON(httpStatus, gin.H{"error": gin.H{"code": code, "message": msg}})
}
