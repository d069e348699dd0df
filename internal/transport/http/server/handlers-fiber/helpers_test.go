package handlers_fiber

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"employee-directory/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected errorBody
	}{
		{
			name:     "fetch_failed",
			err:      fmt.Errorf("list employees: %w", entities.NewFetchError("connection refused", nil)),
			status:   http.StatusBadGateway,
			expected: errorBody{Code: codeFetchFailed, Message: "connection refused"},
		},
		{
			name:     "unknown",
			err:      errors.New("boom"),
			status:   http.StatusInternalServerError,
			expected: errorBody{Code: codeInternal, Message: "internal error"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body errorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.expected, body.Error)
		})
	}
}
