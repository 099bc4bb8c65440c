package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "foodgram/internal/delivery/context"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/errors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestHandleAppError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		details any
	}{
		{
			name:    "validation keeps details",
			err:     errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name is required"), "create"),
			status:  http.StatusBadRequest,
			details: "name is required",
		},
		{
			name:   "unauthorized hides details",
			err:    domainerrors.ErrUnauthorized.WithDetails("token expired"),
			status: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, HandleAppError(c, tt.err))
			assert.Equal(t, tt.status, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.details, body.Error.Details)
			assert.Equal(t, "req-1", body.Meta.RequestID)
		})
	}
}

func TestHandleAppError_PassesThroughOtherErrors(t *testing.T) {
	c, rec := newContext()
	cause := errors.New("boom")

	err := HandleAppError(c, cause)

	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))
	assert.False(t, c.Response().Committed)
	assert.Empty(t, rec.Body.String())
}

func TestAttachment(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Attachment(c, "list.txt", "text/plain; charset=utf-8", []byte("salt (g) - 5")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="list.txt"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "salt (g) - 5", rec.Body.String())
}
