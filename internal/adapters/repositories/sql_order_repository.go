package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"campus-courier-service/internal/domain"
	"campus-courier-service/internal/platform/obs"
)

// SQLOrderRepository is the Postgres flavor of the OrderRepository port,
// used when DATABASE_URL is configured.
type SQLOrderRepository struct{ DB *sql.DB }

func NewSQLOrderRepository(db *sql.DB) *SQLOrderRepository {
	return &SQLOrderRepository{DB: db}
}

// Insert or update a single order row.
func (s *SQLOrderRepository) SaveOrder(ctx context.Context, order domain.Order) (err error) {
	defer obs.Time(ctx, "orders.repo.SaveOrder")(&err)

	if s.DB == nil {
		return errors.New("sql order repository: DB is nil")
	}

	query := `
	INSERT INTO orders (
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
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (order_id) DO UPDATE
	SET status = EXCLUDED.status,
		completed_at = EXCLUDED.completed_at;
	`

	_, err = s.DB.ExecContext(ctx, query,
		order.OrderID,
		order.CustomerName,
		order.PickupLocation,
		order.DeliveryLocation,
		strings.Join(order.Items, "\n"),
		order.Priority,
		string(order.Status),
		order.CreatedAt.UTC(),
		order.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("save order %s: %w", order.OrderID, err)
	}

	return nil
}

// Return all orders stored in the database.
func (s *SQLOrderRepository) ListOrders(ctx context.Context) (_ []domain.Order, err error) {
	defer obs.Time(ctx, "orders.repo.ListOrders")(&err)

	if s.DB == nil {
		return nil, errors.New("sql order repository: DB is nil")
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
		order, err := scanOrderPG(rows)
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

// scanOrderPG decodes one row; Postgres returns native timestamps.
func scanOrderPG(rows *sql.Rows) (domain.Order, error) {
	var (
		order  domain.Order
		items  string
		status string
	)

	err := rows.Scan(
		&order.OrderID,
		&order.CustomerName,
		&order.PickupLocation,
		&order.DeliveryLocation,
		&items,
		&order.Priority,
		&status,
		&order.CreatedAt,
		&order.CompletedAt,
	)
	if err != nil {
		return domain.Order{}, fmt.Errorf("scan row: %w", err)
	}

	if items != "" {
		order.Items = strings.Split(items, "\n")
	}
	order.Status = domain.OrderStatus(status)

	return order, nil
}
