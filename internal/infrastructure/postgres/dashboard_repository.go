package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas read-only de agregación para el tablero de operaciones.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de agregaciones.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountByStatus cuenta operaciones de un tipo agrupadas por estado.
func (r *DashboardRepo) CountByStatus(ctx context.Context, kind string) (map[string]int64, error) {
	rows, err := r.q.Query(ctx,
		`SELECT status, COUNT(*) FROM operations WHERE kind = $1 GROUP BY status`, kind)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()
	out := make(map[string]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out[status] = n
	}
	return out, rows.Err()
}

// CountLate cuenta operaciones no terminales con fecha programada anterior a now.
func (r *DashboardRepo) CountLate(ctx context.Context, kind string, now time.Time) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM operations
		WHERE kind = $1 AND schedule_date < $2 AND status NOT IN ($3, $4)`,
		kind, now, entity.StatusDone, entity.StatusCanceled,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count late: %w", err)
	}
	return n, nil
}
