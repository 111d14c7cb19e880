package repository

import (
	"context"
	"time"
)

// DashboardRepository consultas read-only de agregación para el tablero.
type DashboardRepository interface {
	// CountByStatus cuenta operaciones de un tipo agrupadas por estado.
	CountByStatus(ctx context.Context, kind string) (map[string]int64, error)
	// CountLate cuenta operaciones no terminales con fecha programada anterior a now.
	CountLate(ctx context.Context, kind string, now time.Time) (int64, error)
}
