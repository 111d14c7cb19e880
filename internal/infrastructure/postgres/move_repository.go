package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.MoveRepository = (*MoveRepo)(nil)

// MoveRepo implementación del libro de movimientos sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lista; no existe update ni delete sobre la tabla moves.
type MoveRepo struct {
	q Querier
}

// NewMoveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMoveRepository(q Querier) *MoveRepo {
	return &MoveRepo{q: q}
}

// Create persiste un movimiento.
func (r *MoveRepo) Create(move *entity.Move) error {
	if move.ID == "" {
		move.ID = uuid.New().String()
	}
	query := `
		INSERT INTO moves (id, reference, date, contact, from_location, to_location, product_sku, quantity, direction, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		move.ID, move.Reference, move.Date, move.Contact, move.FromLocation, move.ToLocation,
		move.ProductSKU, move.Quantity, move.Direction, move.Status, move.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create move: %w", err)
	}
	return nil
}

// List lista movimientos en orden de creación con paginación.
func (r *MoveRepo) List(limit, offset int) ([]*entity.Move, error) {
	query := `
		SELECT id, reference, date, contact, from_location, to_location, product_sku, quantity, direction, status, created_at
		FROM moves ORDER BY created_at, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list moves: %w", err)
	}
	defer rows.Close()
	var list []*entity.Move
	for rows.Next() {
		var m entity.Move
		if err := rows.Scan(&m.ID, &m.Reference, &m.Date, &m.Contact, &m.FromLocation, &m.ToLocation,
			&m.ProductSKU, &m.Quantity, &m.Direction, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
