package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "planetapi/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithRequestID(t *testing.T, header string) (*httptest.ResponseRecorder, string, bool) {
	t.Helper()

	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))

	var seenID string
	var hasLogger bool
	e.GET("/planets", func(c echo.Context) error {
		seenID = deliverycontext.RequestIDFromContext(c.Request().Context())
		hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

		return c.NoContent(http.StatusOK)
	}, mw.Process)

	req := httptest.NewRequest(http.MethodGet, "/planets", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec, seenID, hasLogger
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	rec, seenID, hasLogger := serveWithRequestID(t, "abc-123")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "abc-123", seenID)
	assert.True(t, hasLogger)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	for name, header := range map[string]string{
		"missing":   "",
		"oversized": strings.Repeat("x", maxRequestIDLength+1),
	} {
		t.Run(name, func(t *testing.T) {
			rec, seenID, _ := serveWithRequestID(t, header)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Len(t, got, 36)
			assert.Equal(t, got, seenID)
		})
	}
}
