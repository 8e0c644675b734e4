package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/customer-api/internal/domain"
	"github.com/Gunvolt24/customer-api/internal/ports"
	"github.com/Gunvolt24/customer-api/pkg/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — реализация репозитория заказов на Postgres (pgxpool).
// Выборки обогащены владельцем (JOIN users): customer_name / customer_email.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository — конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// orderSelect — общий SELECT обогащённого заказа (порядок — как в scanOrder).
const orderSelect = `
	SELECT o.order_id, o.user_id, o.status, o.gender, o.created_at,
		o.returned_at, o.shipped_at, o.delivered_at, o.num_of_item,
		u.first_name, u.last_name, u.email
	FROM orders o
	JOIN users u ON u.id = o.user_id`

// scanOrder — типизированная проекция строки заказа.
// Имя владельца склеивается здесь: "first last".
func scanOrder(row pgx.Row) (*domain.Order, error) {
	o := &domain.Order{}
	var firstName, lastName string
	if err := row.Scan(
		&o.OrderID, &o.UserID, &o.Status, &o.Gender, &o.CreatedAt,
		&o.ReturnedAt, &o.ShippedAt, &o.DeliveredAt, &o.NumOfItem,
		&firstName, &lastName, &o.CustomerEmail,
	); err != nil {
		return nil, err
	}
	o.CustomerName = firstName + " " + lastName
	return o, nil
}

// ListByCustomer — постраничный список заказов покупателя,
// created_at DESC (свежие первыми), order_id DESC как tie-break.
func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]*domain.Order, error) {
	defer metrics.ObserveDBQuery("orders_list_by_customer", time.Now())

	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, orderSelect+`
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC, o.order_id DESC
		LIMIT $2 OFFSET $3
	`, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select customer orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, limit)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders rows: %w", err)
	}
	return orders, nil
}

// CountByCustomer — число заказов покупателя.
func (r *OrderRepository) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	defer metrics.ObserveDBQuery("orders_count_by_customer", time.Now())

	var total int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE user_id = $1`, customerID,
	).Scan(&total); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return total, nil
}

// GetByID — обогащённый заказ по id без проверки владельца.
// Если не нашли — (nil, nil).
func (r *OrderRepository) GetByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	defer metrics.ObserveDBQuery("orders_get_by_id", time.Now())

	o, err := scanOrder(r.pool.QueryRow(ctx, orderSelect+` WHERE o.order_id = $1`, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	return o, nil
}

// ExistsForCustomer — существует ли заказ и принадлежит ли он покупателю.
func (r *OrderRepository) ExistsForCustomer(ctx context.Context, orderID, customerID int64) (bool, error) {
	defer metrics.ObserveDBQuery("orders_exists_for_customer", time.Now())

	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM orders WHERE order_id = $1 AND user_id = $2)`,
		orderID, customerID,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("order exists: %w", err)
	}
	return exists, nil
}
