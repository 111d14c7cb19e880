package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// SeedHandler maneja la carga idempotente de datos de demostración.
type SeedHandler struct {
	uc *usecase.SeedUseCase
}

// NewSeedHandler construye el handler.
func NewSeedHandler(uc *usecase.SeedUseCase) *SeedHandler {
	return &SeedHandler{uc: uc}
}

// Run godoc
// @Summary      Sembrar datos de demostración (idempotente)
// @Tags         seed
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /seed [post]
func (h *SeedHandler) Run(c *fiber.Ctx) error {
	if err := h.uc.Run(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
