package handlers_fiber

import (
	"errors"
	"net/http"

	"employee-directory/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// Error codes reported in JSON error bodies.
const (
	codeFetchFailed = "FETCH_FAILED"
	codeInternal    = "INTERNAL"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := codeInternal
	msg := "internal error"

	if errors.Is(err, entities.ErrFetchFailed) {
		status = http.StatusBadGateway
		code = codeFetchFailed
		msg = entities.FetchMessage(err)
	}

	return c.Status(status).JSON(errorResponse{Error: errorBody{Code: code, Message: msg}})
}
