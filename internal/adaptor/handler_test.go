package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"car-rental/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleServiceErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: bad email", usecase.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: return before pickup", usecase.ErrInvalidDateRange), http.StatusBadRequest},
		{fmt.Errorf("%w: BMW X5", usecase.ErrVehicleUnavailable), http.StatusBadRequest},
		{fmt.Errorf("%w: completed -> pending", usecase.ErrInvalidTransition), http.StatusBadRequest},
		{fmt.Errorf("%w: no matching signature", usecase.ErrInvalidSignature), http.StatusBadRequest},
		{fmt.Errorf("%w: email or password incorrect", usecase.ErrInvalidCredentials), http.StatusUnauthorized},
		{fmt.Errorf("%w: intent status is processing", usecase.ErrPaymentNotCompleted), http.StatusPaymentRequired},
		{fmt.Errorf("%w: not your payment", usecase.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("%w: booking abc", usecase.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: stripe timeout", usecase.ErrPaymentProcessor), http.StatusBadGateway},
		{fmt.Errorf("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		handleServiceError(rec, zap.NewNop(), tc.err)

		assert.Equal(t, tc.code, rec.Code, "error: %v", tc.err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["status"])
	}
}

func TestHandleServiceErrorHidesInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	handleServiceError(rec, zap.NewNop(), fmt.Errorf("pq: connection refused at 10.0.0.5"))

	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.Contains(t, rec.Body.String(), "Internal server error")
}
