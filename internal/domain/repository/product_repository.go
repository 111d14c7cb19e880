package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// AdjustStock aplica deltas con signo en una sola sentencia (incremento atómico
// a nivel de store); devuelve domain.ErrNotFound si el SKU no existe.
type ProductRepository interface {
	Upsert(product *entity.Product) error
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	AdjustStock(sku string, deltaOnHand, deltaFreeToUse int64) error
	List(limit, offset int) ([]*entity.Product, error)
}
