package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"campus-courier-service/internal/domain"
)

// SQLite-backed implementation of the OrderRepository port.
type SqliteOrderRepository struct{ DB *sql.DB }

func NewSqliteOrderRepository(db *sql.DB) *SqliteOrderRepository {
	return &SqliteOrderRepository{DB: db}
}

// Insert or replace a single order row.
func (s *SqliteOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	if s.DB == nil {
		return errors.New("sqlite order repository: DB is nil")
	}

	query := `
	INSERT OR REPLACE INTO orders (
		order_id,
		customer_name,
		pickup_location,
		delivery_location,
		items,
		priority,
		status,
		created_at,
		completed_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`

	var completedAt *string
	if order.CompletedAt != nil {
		v := order.CompletedAt.UTC().Format(time.RFC3339Nano)
		completedAt = &v
	}

	_, err := s.DB.ExecContext(ctx, query,
		order.OrderID,
		order.CustomerName,
		order.PickupLocation,
		order.DeliveryLocation,
		strings.Join(order.Items, "\n"),
		order.Priority,
		string(order.Status),
		order.CreatedAt.UTC().Format(time.RFC3339Nano),
		completedAt,
	)
	if err != nil {
		return fmt.Errorf("save order %s: %w", order.OrderID, err)
	}

	return nil
}

// Return all orders stored in the database.
func (s *SqliteOrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite order repository: DB is nil")
	}

	query := `
	SELECT
		order_id,
		customer_name,
		pickup_location,
		delivery_location,
		items,
		priority,
		status,
		created_at,
		completed_at
	FROM orders
	ORDER BY order_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0, 64)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}

	return orders, nil
}

// scanOrder decodes one row into a domain order. SQLite stores
// timestamps as RFC 3339 text.
func scanOrder(rows *sql.Rows) (domain.Order, error) {
	var (
		order       domain.Order
		items       string
		status      string
		createdAt   string
		completedAt *string
	)

	err := rows.Scan(
		&order.OrderID,
		&order.CustomerName,
		&order.PickupLocation,
		&order.DeliveryLocation,
		&items,
		&order.Priority,
		&status,
		&createdAt,
		&completedAt,
	)
	if err != nil {
		return domain.Order{}, fmt.Errorf("scan row: %w", err)
	}

	if items != "" {
		order.Items = strings.Split(items, "\n")
	}
	order.Status = domain.OrderStatus(status)

	order.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return domain.Order{}, fmt.Errorf("parse created_at for %s: %w", order.OrderID, err)
	}

	if completedAt != nil {
		done, err := time.Parse(time.RFC3339Nano, *completedAt)
		if err != nil {
			return domain.Order{}, fmt.Errorf("parse completed_at for %s: %w", order.OrderID, err)
		}
		order.CompletedAt = &done
	}

	return order, nil
}
