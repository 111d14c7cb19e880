package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
)

// MoveHandler maneja las peticiones HTTP del libro de movimientos (read-only).
type MoveHandler struct {
	uc *ledger.LedgerUseCase
}

// NewMoveHandler construye el handler.
func NewMoveHandler(uc *ledger.LedgerUseCase) *MoveHandler {
	return &MoveHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos en orden de creación
// @Tags         moves
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(50)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.MoveResponse
// @Router       /moves [get]
func (h *MoveHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
