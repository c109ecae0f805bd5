package orders_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"garments/globals"
	"garments/middleware"
	"garments/orders"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, userID string) string {
	t.Helper()
	claims := middleware.Claims{
		Username: "tester",
		UserID:   userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	require.NoError(t, err)
	return signed
}

func trackRequest(t *testing.T, target string, header string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	orders.TrackOrderWS(rec, req, httprouter.Params{{Key: "orderid", Value: "ORD-abc"}})
	return rec
}

func TestTrackOrderRejectsMissingToken(t *testing.T) {
	rec := trackRequest(t, "/ws/orders/ORD-abc", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTrackOrderRejectsBadToken(t *testing.T) {
	rec := trackRequest(t, "/ws/orders/ORD-abc", "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A raw token without the Bearer prefix is rejected too.
	rec = trackRequest(t, "/ws/orders/ORD-abc", mintToken(t, "user-1"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTrackOrderRequiresOwnedOrder(t *testing.T) {
	// A valid identity alone is not enough: the order must resolve to the
	// caller, so an unknown order never reaches the upgrade.
	rec := trackRequest(t, "/ws/orders/ORD-abc", "Bearer "+mintToken(t, "user-1"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTrackOrderAcceptsQueryToken(t *testing.T) {
	// Browsers cannot set headers on a WebSocket dial, so the token may
	// ride in the query string. It authenticates, then fails ownership.
	rec := trackRequest(t, "/ws/orders/ORD-abc?token="+mintToken(t, "user-1"), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
