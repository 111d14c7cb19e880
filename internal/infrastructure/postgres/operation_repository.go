package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.OperationRepository = (*OperationRepo)(nil)

// OperationRepo implementación del puerto OperationRepository sobre PostgreSQL (usable con pool o tx).
// Las líneas viven en operation_lines con columna position para conservar el orden.
type OperationRepo struct {
	q Querier
}

// NewOperationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOperationRepository(q Querier) *OperationRepo {
	return &OperationRepo{q: q}
}

// Create persiste la operación y sus líneas.
func (r *OperationRepo) Create(op *entity.Operation) error {
	if op.ID == "" {
		op.ID = uuid.New().String()
	}
	query := `
		INSERT INTO operations (id, kind, reference, from_location, to_location, contact, schedule_date, status, responsible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		op.ID, op.Kind, op.Reference, op.FromLocation, op.ToLocation, op.Contact,
		op.ScheduleDate, op.Status, op.Responsible, op.CreatedAt, op.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert operation %s: referencia duplicada: %w", op.Reference, err)
		}
		return fmt.Errorf("insert operation: %w", err)
	}
	lineQuery := `
		INSERT INTO operation_lines (operation_id, position, product_sku, quantity)
		VALUES ($1, $2, $3, $4)`
	for i, l := range op.Lines {
		if _, err := r.q.Exec(context.Background(), lineQuery, op.ID, i, l.ProductSKU, l.Quantity); err != nil {
			return fmt.Errorf("insert operation line: %w", err)
		}
	}
	return nil
}

// GetByReference obtiene una operación por tipo y referencia, con sus líneas; nil si no existe.
func (r *OperationRepo) GetByReference(kind, reference string) (*entity.Operation, error) {
	query := `
		SELECT id, kind, reference, from_location, to_location, contact, schedule_date, status, responsible, created_at, updated_at
		FROM operations WHERE kind = $1 AND reference = $2`
	var op entity.Operation
	err := r.q.QueryRow(context.Background(), query, kind, reference).Scan(
		&op.ID, &op.Kind, &op.Reference, &op.FromLocation, &op.ToLocation, &op.Contact,
		&op.ScheduleDate, &op.Status, &op.Responsible, &op.CreatedAt, &op.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operation: %w", err)
	}
	if err := r.loadLines(&op); err != nil {
		return nil, err
	}
	return &op, nil
}

// List lista operaciones de un tipo, más recientes primero, con sus líneas.
func (r *OperationRepo) List(kind string, limit, offset int) ([]*entity.Operation, error) {
	query := `
		SELECT id, kind, reference, from_location, to_location, contact, schedule_date, status, responsible, created_at, updated_at
		FROM operations WHERE kind = $1 ORDER BY created_at DESC, reference DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Operation
	for rows.Next() {
		var op entity.Operation
		if err := rows.Scan(&op.ID, &op.Kind, &op.Reference, &op.FromLocation, &op.ToLocation, &op.Contact,
			&op.ScheduleDate, &op.Status, &op.Responsible, &op.CreatedAt, &op.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		list = append(list, &op)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, op := range list {
		if err := r.loadLines(op); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// UpdateStatusIf cambia el estado solo si el almacenado sigue siendo expected
// (compare-and-swap). Bajo dos transacciones concurrentes la segunda espera el
// row lock y reevalúa el WHERE contra el estado ya commiteado: 0 filas.
func (r *OperationRepo) UpdateStatusIf(kind, reference, expected, next string) (bool, error) {
	query := `
		UPDATE operations SET status = $4, updated_at = now()
		WHERE kind = $1 AND reference = $2 AND status = $3`
	cmd, err := r.q.Exec(context.Background(), query, kind, reference, expected, next)
	if err != nil {
		return false, fmt.Errorf("update operation status: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// NextReference incrementa y devuelve el consecutivo del tipo en una sola
// sentencia; el contador vive en operation_counters.
func (r *OperationRepo) NextReference(kind string) (int64, error) {
	query := `
		INSERT INTO operation_counters (kind, last_value) VALUES ($1, 1)
		ON CONFLICT (kind) DO UPDATE SET last_value = operation_counters.last_value + 1
		RETURNING last_value`
	var seq int64
	if err := r.q.QueryRow(context.Background(), query, kind).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next reference: %w", err)
	}
	return seq, nil
}

// Count cuenta operaciones de un tipo.
func (r *OperationRepo) Count(kind string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM operations WHERE kind = $1`, kind).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count operations: %w", err)
	}
	return n, nil
}

func (r *OperationRepo) loadLines(op *entity.Operation) error {
	query := `
		SELECT product_sku, quantity
		FROM operation_lines WHERE operation_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, op.ID)
	if err != nil {
		return fmt.Errorf("load operation lines: %w", err)
	}
	defer rows.Close()
	op.Lines = op.Lines[:0]
	for rows.Next() {
		var l entity.OperationLine
		if err := rows.Scan(&l.ProductSKU, &l.Quantity); err != nil {
			return fmt.Errorf("scan operation line: %w", err)
		}
		op.Lines = append(op.Lines, l)
	}
	return rows.Err()
}
