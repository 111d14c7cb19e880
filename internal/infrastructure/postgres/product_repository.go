package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Upsert inserta el producto si el SKU no existe; si ya existe no toca nada
// (semántica de seed: nunca pisa cantidades ya mutadas por operaciones).
func (r *ProductRepo) Upsert(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, cost, on_hand, free_to_use, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (sku) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Cost,
		product.OnHand, product.FreeToUse, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

// GetBySKU obtiene un producto por SKU; nil si no existe.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `
		SELECT id, sku, name, cost, on_hand, free_to_use, created_at, updated_at
		FROM products WHERE sku = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, sku).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Cost, &p.OnHand, &p.FreeToUse, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza nombre, costo y cantidades de un producto por SKU
// (parche administrativo; el flujo normal muta cantidades vía AdjustStock).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, cost = $3, on_hand = $4, free_to_use = $5, updated_at = $6
		WHERE sku = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.SKU, product.Name, product.Cost, product.OnHand, product.FreeToUse, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// AdjustStock aplica deltas con signo a on_hand y free_to_use en una sola
// sentencia (incremento atómico: nunca read-then-write sobre cantidades).
// Devuelve domain.ErrNotFound si el SKU no existe.
func (r *ProductRepo) AdjustStock(sku string, deltaOnHand, deltaFreeToUse int64) error {
	query := `
		UPDATE products
		SET on_hand = on_hand + $2, free_to_use = free_to_use + $3, updated_at = now()
		WHERE sku = $1`
	cmd, err := r.q.Exec(context.Background(), query, sku, deltaOnHand, deltaFreeToUse)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos ordenados por SKU con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, sku, name, cost, on_hand, free_to_use, created_at, updated_at
		FROM products ORDER BY sku LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Cost, &p.OnHand, &p.FreeToUse, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
