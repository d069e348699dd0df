// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"employee-directory/internal/usecase"
	"employee-directory/internal/view"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the directory page and its JSON counterpart.
type Handler struct {
	log      *zap.SugaredLogger
	uc       usecase.InterfaceUsecase
	renderer *view.Renderer
}

// NewHandler constructs the directory handler from the usecase layer and page renderer.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, renderer *view.Renderer) *Handler {
	return &Handler{
		log:      log,
		uc:       usecase,
		renderer: renderer,
	}
}

// RegisterHandlers mounts the handler routes on app.
func RegisterHandlers(app fiber.Router, h *Handler) {
	app.Get("/", h.GetDirectory)
	app.Get("/api/employees", h.GetEmployees)
}
