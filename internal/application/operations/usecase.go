package operations

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Ubicaciones por defecto del flujo de una sola bodega.
const (
	LocationStock    = "STOCK"
	LocationCustomer = "CUSTOMER"

	defaultResponsible = "admin"
)

// OperationUseCase es el motor de ciclo de vida de recepciones y entregas:
// creación con referencia secuencial, transiciones de estado y efectos de
// stock/libro al validar.
//
// Cada acción corre completa dentro de una transacción (TxRunner) y la
// transición a un nuevo estado usa compare-and-swap sobre el estado almacenado,
// de modo que dos validate concurrentes sobre la misma referencia no pueden
// aplicar los deltas dos veces.
type OperationUseCase struct {
	txRunner TxRunner
	opRepo   repository.OperationRepository // atado al pool, para lecturas
}

// NewOperationUseCase construye el motor de operaciones.
func NewOperationUseCase(txRunner TxRunner, opRepo repository.OperationRepository) *OperationUseCase {
	return &OperationUseCase{txRunner: txRunner, opRepo: opRepo}
}

// Create registra una operación en estado Draft con la siguiente referencia
// del consecutivo por tipo (WH/IN/0001, WH/OUT/0001, ...). Las ubicaciones
// omitidas se completan según el tipo; no se valida su existencia.
func (uc *OperationUseCase) Create(ctx context.Context, kind, responsible string, in dto.CreateOperationRequest) (*dto.OperationResponse, error) {
	if !entity.ValidKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	lines := make([]entity.OperationLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.ProductSKU == "" || l.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		lines = append(lines, entity.OperationLine{ProductSKU: l.ProductSKU, Quantity: l.Quantity})
	}

	now := time.Now()
	op := &entity.Operation{
		Kind:         kind,
		FromLocation: in.FromLocation,
		ToLocation:   in.ToLocation,
		Contact:      in.Contact,
		ScheduleDate: now,
		Status:       entity.StatusDraft,
		Responsible:  responsible,
		Lines:        lines,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.ScheduleDate != nil {
		op.ScheduleDate = *in.ScheduleDate
	}
	if op.Responsible == "" {
		op.Responsible = defaultResponsible
	}
	switch kind {
	case entity.KindReceipt:
		if op.ToLocation == "" {
			op.ToLocation = LocationStock
		}
	case entity.KindDelivery:
		op.FromLocation = LocationStock
		if op.ToLocation == "" {
			op.ToLocation = LocationCustomer
		}
	}

	// Consecutivo e inserción en la misma transacción: si el insert falla el
	// contador no queda consumido a medias para otros escritores.
	err := uc.txRunner.Run(ctx, func(
		opRepo repository.OperationRepository,
		_ repository.ProductRepository,
		_ repository.MoveRepository,
	) error {
		seq, err := opRepo.NextReference(kind)
		if err != nil {
			return err
		}
		op.Reference = entity.FormatReference(kind, seq)
		return opRepo.Create(op)
	})
	if err != nil {
		return nil, err
	}
	return toOperationResponse(op), nil
}

// Apply ejecuta una acción (todo, validate, cancel) sobre la operación
// identificada por tipo y referencia, y devuelve el estado resultante.
//
// Acciones desconocidas devuelven ErrInvalidInput; precondiciones de estado
// incumplidas devuelven ErrConflict en lugar de re-persistir en silencio.
func (uc *OperationUseCase) Apply(ctx context.Context, kind, reference, action string) (*dto.ActionResponse, error) {
	if !entity.ValidKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	switch action {
	case entity.ActionTodo, entity.ActionValidate, entity.ActionCancel:
	default:
		return nil, domain.ErrInvalidInput
	}

	var final string
	err := uc.txRunner.Run(ctx, func(
		opRepo repository.OperationRepository,
		productRepo repository.ProductRepository,
		moveRepo repository.MoveRepository,
	) error {
		op, err := opRepo.GetByReference(kind, reference)
		if err != nil {
			return err
		}
		if op == nil {
			return domain.ErrNotFound
		}

		switch action {
		case entity.ActionTodo:
			if op.Status != entity.StatusDraft {
				return domain.ErrConflict
			}
			next := entity.StatusReady
			if kind == entity.KindDelivery {
				ok, err := linesAvailable(productRepo, op.Lines)
				if err != nil {
					return err
				}
				if !ok {
					next = entity.StatusWaiting
				}
			}
			return transition(opRepo, op, entity.StatusDraft, next, &final)

		case entity.ActionValidate:
			if op.Status != entity.StatusReady {
				return domain.ErrConflict
			}
			// El guard va primero: si otro validate ya movió Ready->Done, aquí
			// no se aplica ningún delta ni se escribe ningún movimiento.
			if err := transition(opRepo, op, entity.StatusReady, entity.StatusDone, &final); err != nil {
				return err
			}
			return applyStockAndMoves(productRepo, moveRepo, op)

		case entity.ActionCancel:
			if entity.IsTerminal(op.Status) {
				return domain.ErrConflict
			}
			return transition(opRepo, op, op.Status, entity.StatusCanceled, &final)
		}
		return domain.ErrInvalidInput
	})
	if err != nil {
		return nil, err
	}
	return &dto.ActionResponse{Reference: reference, Status: final}, nil
}

// GetByReference obtiene una operación por tipo y referencia; nil si no existe.
func (uc *OperationUseCase) GetByReference(kind, reference string) (*dto.OperationResponse, error) {
	if !entity.ValidKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	op, err := uc.opRepo.GetByReference(kind, reference)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, nil
	}
	return toOperationResponse(op), nil
}

// List lista operaciones de un tipo con paginación.
func (uc *OperationUseCase) List(kind string, limit, offset int) ([]*dto.OperationResponse, error) {
	if !entity.ValidKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	ops, err := uc.opRepo.List(kind, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OperationResponse, 0, len(ops))
	for _, op := range ops {
		out = append(out, toOperationResponse(op))
	}
	return out, nil
}

// transition aplica el compare-and-swap de estado. Si el estado almacenado ya
// no es el esperado la transacción completa se descarta con ErrConflict.
func transition(opRepo repository.OperationRepository, op *entity.Operation, expected, next string, final *string) error {
	ok, err := opRepo.UpdateStatusIf(op.Kind, op.Reference, expected, next)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrConflict
	}
	*final = next
	return nil
}

// linesAvailable verifica que cada línea tenga FreeToUse suficiente. Un SKU
// inexistente cuenta como insuficiente.
func linesAvailable(productRepo repository.ProductRepository, lines []entity.OperationLine) (bool, error) {
	for _, l := range lines {
		p, err := productRepo.GetBySKU(l.ProductSKU)
		if err != nil {
			return false, err
		}
		if p == nil || p.FreeToUse < l.Quantity {
			return false, nil
		}
	}
	return true, nil
}

// applyStockAndMoves aplica los deltas de stock de todas las líneas y después
// escribe los movimientos, en dos pasadas: los registros del libro quedan
// escritos sobre un stock ya actualizado por completo.
func applyStockAndMoves(productRepo repository.ProductRepository, moveRepo repository.MoveRepository, op *entity.Operation) error {
	sign := int64(1)
	direction := entity.DirectionIn
	if op.Kind == entity.KindDelivery {
		sign = -1
		direction = entity.DirectionOut
	}
	for _, l := range op.Lines {
		if err := productRepo.AdjustStock(l.ProductSKU, sign*l.Quantity, sign*l.Quantity); err != nil {
			return err
		}
	}
	now := time.Now()
	for _, l := range op.Lines {
		mv := &entity.Move{
			Reference:    op.Reference,
			Date:         now,
			Contact:      op.Contact,
			FromLocation: op.FromLocation,
			ToLocation:   op.ToLocation,
			ProductSKU:   l.ProductSKU,
			Quantity:     l.Quantity,
			Direction:    direction,
			Status:       entity.StatusDone,
			CreatedAt:    now,
		}
		if err := moveRepo.Create(mv); err != nil {
			return err
		}
	}
	return nil
}

func toOperationResponse(op *entity.Operation) *dto.OperationResponse {
	lines := make([]dto.OperationLineDTO, 0, len(op.Lines))
	for _, l := range op.Lines {
		lines = append(lines, dto.OperationLineDTO{ProductSKU: l.ProductSKU, Quantity: l.Quantity})
	}
	return &dto.OperationResponse{
		ID:           op.ID,
		Reference:    op.Reference,
		FromLocation: op.FromLocation,
		ToLocation:   op.ToLocation,
		Contact:      op.Contact,
		ScheduleDate: op.ScheduleDate,
		Status:       op.Status,
		Responsible:  op.Responsible,
		Lines:        lines,
	}
}
