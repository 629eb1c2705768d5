package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"foodies/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "42"), http.StatusNotFound},
		{"invalid value", errs.NewValueIsInvalidError("amount"), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("items"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("latitude", 91, -90, 90), http.StatusBadRequest},
		{"signature", fmt.Errorf("verify: %w", errs.ErrSignatureMismatch), http.StatusBadRequest},
		{"transition", errs.NewInvalidTransitionError("order", "PENDING", "DELIVERED"), http.StatusConflict},
		{"version", errs.NewVersionIsInvalidError("order", nil), http.StatusConflict},
		{"authorization", errs.NewAuthorizationError("CUSTOMER:c-1", "refund payments"), http.StatusForbidden},
		{"provider", errs.NewProviderError("create order", true, errors.New("timeout")), http.StatusBadGateway},
		{"storage", errs.NewStorageUnavailableError("commit", errors.New("conn reset")), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(tt.err))
		})
	}
}
