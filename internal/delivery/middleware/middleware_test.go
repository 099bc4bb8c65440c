package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram/config"
	deliverycontext "foodgram/internal/delivery/context"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	var buf bytes.Buffer
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "keeps client id", incoming: "abc-123", keep: true},
		{name: "generates when missing", incoming: ""},
		{name: "replaces oversized id", incoming: strings.Repeat("x", 129)},
		{name: "replaces id with spaces", incoming: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var scopedID string
			err := m.Process(func(c echo.Context) error {
				scopedID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLogger(c.Request().Context()).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			id := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, id)
			assert.Equal(t, id, scopedID)
			assert.Equal(t, id, deliverycontext.GetRequestID(c))
			if tt.keep {
				assert.Equal(t, tt.incoming, id)
			} else {
				assert.NotEqual(t, tt.incoming, id)
			}
			assert.Contains(t, buf.String(), "request_id="+id)
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true
	m := NewLoggerMiddleware(logger, cfg)

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/recipes?page=2", nil), httptest.NewRecorder())
	err := m.Handle(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound)
	})(c)

	require.Error(t, err)
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=404")
	assert.Contains(t, out, "query=\"page=2\"")

	buf.Reset()
	cfg.Env.Debug = false
	quiet := NewLoggerMiddleware(logger, cfg)
	require.NoError(t, quiet.Handle(func(c echo.Context) error { return nil })(c))
	assert.Empty(t, buf.String())
}
