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

// Проверка, что CustomerRepository удовлетворяет интерфейсу CustomerRepository.
var _ ports.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository — реализация репозитория покупателей на Postgres (pgxpool).
// Все строки читаются в типизированную проекцию domain.Customer —
// без позиционных []any-массивов.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository — конструктор CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// customerColumns — колонки users в порядке сканирования scanCustomer.
const customerColumns = `
	u.id, u.first_name, u.last_name, u.email, u.age, u.gender, u.state,
	u.street_address, u.postal_code, u.city, u.country, u.latitude, u.longitude,
	u.traffic_source, u.created_at`

// customerWhere — WHERE-фрагмент по фильтру плюс его аргументы.
// Приоритет фильтров уже разрешён сервисным слоем: при непустом Search
// сюда приходит фильтр только с Search.
func customerWhere(f domain.CustomerFilter) (string, []any) {
	switch {
	case f.Search != "":
		return `WHERE u.first_name ILIKE '%' || $1 || '%'
			OR u.last_name ILIKE '%' || $1 || '%'
			OR u.email ILIKE '%' || $1 || '%'`, []any{f.Search}
	case f.Country != "":
		return `WHERE u.country = $1`, []any{f.Country}
	default:
		return "", nil
	}
}

// List — страница покупателей по фильтру, id ASC, каждый с order_count.
// LEFT JOIN: покупатели без заказов не выпадают (order_count = 0).
func (r *CustomerRepository) List(ctx context.Context, f domain.CustomerFilter, limit, offset int) ([]*domain.Customer, error) {
	defer metrics.ObserveDBQuery("customers_list", time.Now())

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	where, args := customerWhere(f)
	query := fmt.Sprintf(`
		SELECT %s, COUNT(o.order_id) AS order_count
		FROM users u
		LEFT JOIN orders o ON o.user_id = u.id
		%s
		GROUP BY u.id
		ORDER BY u.id
		LIMIT $%d OFFSET $%d
	`, customerColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select customers: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0, limit)
	for rows.Next() {
		c := &domain.Customer{}
		if err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Age, &c.Gender, &c.State,
			&c.StreetAddress, &c.PostalCode, &c.City, &c.Country, &c.Latitude, &c.Longitude,
			&c.TrafficSource, &c.CreatedAt, &c.OrderCount,
		); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("customers rows: %w", err)
	}
	return customers, nil
}

// CountFiltered — мощность отфильтрованной выборки (для total_elements).
func (r *CustomerRepository) CountFiltered(ctx context.Context, f domain.CustomerFilter) (int64, error) {
	defer metrics.ObserveDBQuery("customers_count_filtered", time.Now())

	where, args := customerWhere(f)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM users u %s`, where)

	var total int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return total, nil
}

// GetByID — покупатель по id без order_count. Если не нашли — (nil, nil).
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	defer metrics.ObserveDBQuery("customers_get_by_id", time.Now())

	c := &domain.Customer{}
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s
		FROM users u
		WHERE u.id = $1
	`, customerColumns), id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Age, &c.Gender, &c.State,
		&c.StreetAddress, &c.PostalCode, &c.City, &c.Country, &c.Latitude, &c.Longitude,
		&c.TrafficSource, &c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select customer: %w", err)
	}
	return c, nil
}

// Exists — есть ли покупатель с таким id.
func (r *CustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	defer metrics.ObserveDBQuery("customers_exists", time.Now())

	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("customer exists: %w", err)
	}
	return exists, nil
}

// Count — общее число покупателей.
func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	defer metrics.ObserveDBQuery("customers_count", time.Now())

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return total, nil
}

// CountOrders — число заказов покупателя (0, если заказов нет).
func (r *CustomerRepository) CountOrders(ctx context.Context, customerID int64) (int64, error) {
	defer metrics.ObserveDBQuery("customers_count_orders", time.Now())

	var total int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE user_id = $1`, customerID,
	).Scan(&total); err != nil {
		return 0, fmt.Errorf("count customer orders: %w", err)
	}
	return total, nil
}
