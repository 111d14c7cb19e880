package operations

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción del store con repositorios
// atados a esa transacción. Si fn devuelve error se hace Rollback: estado,
// deltas de stock y movimientos se descartan como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		opRepo repository.OperationRepository,
		productRepo repository.ProductRepository,
		moveRepo repository.MoveRepository,
	) error) error
}
