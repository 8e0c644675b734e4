package ports

import (
	"context"

	"github.com/Gunvolt24/customer-api/internal/domain"
)

// CustomerRepository — доступ к таблице users (только чтение).
// Отсутствующая запись — (nil, nil), а не ошибка: решение о Not-Found
// принимает сервисный слой.
type CustomerRepository interface {
	// List — страница покупателей по фильтру, отсортированная по id ASC;
	// каждая запись уже содержит order_count (outer join, 0 без заказов).
	List(ctx context.Context, f domain.CustomerFilter, limit, offset int) ([]*domain.Customer, error)

	// CountFiltered — мощность отфильтрованной выборки (для метаданных страницы).
	CountFiltered(ctx context.Context, f domain.CustomerFilter) (int64, error)

	// GetByID — покупатель по id без order_count; (nil, nil) если не найден.
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)

	// Exists — есть ли покупатель с таким id.
	Exists(ctx context.Context, id int64) (bool, error)

	// Count — общее число покупателей без фильтров.
	Count(ctx context.Context) (int64, error)

	// CountOrders — число заказов покупателя (0, если заказов нет).
	CountOrders(ctx context.Context, customerID int64) (int64, error)
}
