package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"foodfriend/order-svc/internal/domain"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

const schema = `
	CREATE TABLE IF NOT EXISTS orders (
		id           TEXT PRIMARY KEY,
		items        JSONB NOT NULL,
		total        NUMERIC(10, 2) NOT NULL,
		status       TEXT NOT NULL,
		table_number INTEGER NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.DB.Exec(schema)
	return err
}

func (r *PostgresRepository) InsertOrder(order *domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}

	err = r.DB.QueryRow(`
		INSERT INTO orders (id, items, total, status, table_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, order.ID, items, order.Total, order.Status, order.TableNumber).
		Scan(&order.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrOrderExists
	}
	return err
}

// ListOrders returns every order, newest first. Rows that fail to decode are
// skipped.
func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, items, total, status, table_number, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var (
			o     domain.Order
			items []byte
		)
		if err := rows.Scan(&o.ID, &items, &o.Total, &o.Status, &o.TableNumber, &o.CreatedAt); err != nil {
			continue
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			continue
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(id, status string) (*domain.Order, error) {
	var (
		o     domain.Order
		items []byte
	)
	err := r.DB.QueryRow(`
		UPDATE orders
		SET status = $1
		WHERE id = $2
		RETURNING id, items, total, status, table_number, created_at
	`, status, id).Scan(&o.ID, &items, &o.Total, &o.Status, &o.TableNumber, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return &o, nil
}
