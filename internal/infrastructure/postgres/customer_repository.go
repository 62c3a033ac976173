package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jvalencia/crm-ventas/internal/domain"
	"github.com/jvalencia/crm-ventas/internal/domain/entity"
	"github.com/jvalencia/crm-ventas/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, surname, company, email, phone, seller_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Surname, customer.Company,
		customer.Email, customer.Phone, customer.SellerID, customer.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, surname, company, email, phone, seller_id, created_at
		FROM customers WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get customer")
}

// GetByEmail obtiene un cliente por email (clave natural única).
func (r *CustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	query := `
		SELECT id, name, surname, company, email, phone, seller_id, created_at
		FROM customers WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get customer by email")
}

// List lista todos los clientes con paginación.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, surname, company, email, phone, seller_id, created_at
		FROM customers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return r.scanMany(rows)
}

// ListBySeller lista los clientes de un vendedor con paginación.
func (r *CustomerRepo) ListBySeller(sellerID string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, surname, company, email, phone, seller_id, created_at
		FROM customers WHERE seller_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, sellerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers by seller: %w", err)
	}
	return r.scanMany(rows)
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, surname = $3, company = $4, email = $5, phone = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Surname, customer.Company, customer.Email, customer.Phone,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) scanOne(row pgx.Row, op string) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Surname, &c.Company, &c.Email, &c.Phone, &c.SellerID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

func (r *CustomerRepo) scanMany(rows pgx.Rows) ([]*entity.Customer, error) {
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Surname, &c.Company, &c.Email, &c.Phone, &c.SellerID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
