package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// OperationRepository define el puerto de persistencia para operaciones
// (recepciones y entregas).
//
// UpdateStatusIf es el guard de transición: cambia el estado solo si el estado
// almacenado todavía es el esperado (compare-and-swap); devuelve false si la
// precondición no se cumple al momento del commit.
//
// NextReference entrega el siguiente consecutivo por tipo desde un contador
// monotónico del store (seguro ante concurrencia, a diferencia de contar filas).
type OperationRepository interface {
	Create(op *entity.Operation) error
	GetByReference(kind, reference string) (*entity.Operation, error)
	List(kind string, limit, offset int) ([]*entity.Operation, error)
	UpdateStatusIf(kind, reference, expected, next string) (bool, error)
	NextReference(kind string) (int64, error)
	Count(kind string) (int64, error)
}
