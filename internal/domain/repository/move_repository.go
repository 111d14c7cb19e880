package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// MoveRepository define el puerto del libro de movimientos: solo inserción y
// listado en orden de creación. Los registros nunca se actualizan ni se borran.
type MoveRepository interface {
	Create(move *entity.Move) error
	List(limit, offset int) ([]*entity.Move, error)
}
