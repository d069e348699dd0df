package handlers_fiber

import (
	"net/http"

	"employee-directory/internal/entities"
	"employee-directory/internal/mapper"
	"employee-directory/internal/view"

	"github.com/gofiber/fiber/v2"
)

// GetDirectory renders the employee table. Fetch failures are shown inside
// the page, so the response is always a complete document.
func (h *Handler) GetDirectory(c *fiber.Ctx) error {
	records, err := h.uc.ListEmployees(c.UserContext())
	doc := h.renderer.Render(view.ListResult{Records: records, Err: err})

	c.Type("html", "utf-8")
	return c.Status(http.StatusOK).Send(doc)
}

// GetEmployees returns the normalized rows as JSON.
func (h *Handler) GetEmployees(c *fiber.Ctx) error {
	records, err := h.uc.ListEmployees(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to list employees", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Employees []entities.DisplayRow `json:"employees"`
	}{
		Employees: mapper.ToDisplayRows(records),
	}
	return c.Status(http.StatusOK).JSON(resp)
}
