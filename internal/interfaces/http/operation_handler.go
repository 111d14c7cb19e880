package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/operations"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// OperationHandler maneja las peticiones HTTP de recepciones o entregas según
// el kind con el que se construye; el router registra una instancia por tipo.
type OperationHandler struct {
	uc   *operations.OperationUseCase
	kind string
}

// NewOperationHandler construye el handler para un tipo de operación.
func NewOperationHandler(uc *operations.OperationUseCase, kind string) *OperationHandler {
	return &OperationHandler{uc: uc, kind: kind}
}

// Create godoc
// @Summary      Crear operación en estado Draft
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOperationRequest  true  "Ubicaciones, contacto, fecha y líneas"
// @Success      201   {object}  dto.OperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /receipts [post]
func (h *OperationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), h.kind, GetLoginID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "líneas inválidas: sku requerido y cantidad >= 0"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar operaciones del tipo
// @Tags         operations
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(50)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.OperationResponse
// @Router       /receipts [get]
func (h *OperationHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(h.kind, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener operación por referencia
// @Tags         operations
// @Produce      json
// @Param        reference  path  string  true  "Referencia, ej. WH/IN/0001"
// @Success      200  {object}  dto.OperationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /receipts/{reference} [get]
func (h *OperationHandler) Get(c *fiber.Ctx) error {
	reference := c.Params("+")
	out, err := h.uc.GetByReference(h.kind, reference)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "referencia no encontrada"})
	}
	return c.JSON(out)
}

// Action godoc
// @Summary      Aplicar una acción (todo, validate, cancel)
// @Description  validate aplica los deltas de stock y escribe los movimientos
//
//	en la misma transacción que el cambio de estado.
//
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        reference  path  string             true  "Referencia, ej. WH/IN/0001"
// @Param        body       body  dto.ActionRequest  true  "Acción a aplicar"
// @Success      200  {object}  dto.ActionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /receipts/{reference}/action [post]
func (h *OperationHandler) Action(c *fiber.Ctx) error {
	reference := c.Params("+")
	var in dto.ActionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Apply(c.Context(), h.kind, reference, in.Action)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "acción desconocida"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "referencia o producto no encontrado"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la acción no aplica al estado actual"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
