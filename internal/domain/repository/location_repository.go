package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Upsert(location *entity.Location) error
	List(limit, offset int) ([]*entity.Location, error)
}
