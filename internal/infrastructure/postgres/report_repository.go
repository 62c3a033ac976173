package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jvalencia/crm-ventas/internal/domain/entity"
	"github.com/jvalencia/crm-ventas/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación de solo lectura sobre pedidos completados.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// TopCustomers agrupa los pedidos COMPLETED por cliente, suma el total y
// resuelve el cliente, ordenado de mayor a menor facturación.
func (r *ReportRepo) TopCustomers(ctx context.Context, limit int) ([]repository.TopCustomerResult, error) {
	const query = `
	SELECT
	    c.id, c.name, c.surname, c.company, c.email, c.phone, c.seller_id, c.created_at,
	    SUM(o.total) AS total
	FROM orders o
	JOIN customers c ON c.id = o.customer_id
	WHERE o.status = 'COMPLETED'
	GROUP BY c.id, c.name, c.surname, c.company, c.email, c.phone, c.seller_id, c.created_at
	ORDER BY total DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("report.TopCustomers: %w", err)
	}
	defer rows.Close()

	var results []repository.TopCustomerResult
	for rows.Next() {
		var row repository.TopCustomerResult
		var c entity.Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Surname, &c.Company, &c.Email, &c.Phone, &c.SellerID, &c.CreatedAt,
			&row.Total,
		); err != nil {
			return nil, fmt.Errorf("report.TopCustomers scan: %w", err)
		}
		row.Customer = c
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopSellers agrupa los pedidos COMPLETED por vendedor, suma el total y
// resuelve el vendedor, ordenado de mayor a menor facturación.
func (r *ReportRepo) TopSellers(ctx context.Context, limit int) ([]repository.TopSellerResult, error) {
	const query = `
	SELECT
	    u.id, u.name, u.surname, u.email, u.created_at,
	    SUM(o.total) AS total
	FROM orders o
	JOIN users u ON u.id = o.seller_id
	WHERE o.status = 'COMPLETED'
	GROUP BY u.id, u.name, u.surname, u.email, u.created_at
	ORDER BY total DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("report.TopSellers: %w", err)
	}
	defer rows.Close()

	var results []repository.TopSellerResult
	for rows.Next() {
		var row repository.TopSellerResult
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Surname, &u.Email, &u.CreatedAt,
			&row.Total,
		); err != nil {
			return nil, fmt.Errorf("report.TopSellers scan: %w", err)
		}
		row.Seller = u
		results = append(results, row)
	}
	return results, rows.Err()
}
