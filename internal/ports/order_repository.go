package ports

import (
	"context"

	"github.com/Gunvolt24/customer-api/internal/domain"
)

// OrderRepository — доступ к таблице orders (только чтение).
// Все выборки обогащены данными владельца (JOIN users): имя и email.
type OrderRepository interface {
	// ListByCustomer — страница заказов покупателя, created_at DESC
	// (свежие первыми).
	ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]*domain.Order, error)

	// CountByCustomer — число заказов покупателя.
	CountByCustomer(ctx context.Context, customerID int64) (int64, error)

	// GetByID — заказ по id без проверки владельца; (nil, nil) если не найден.
	GetByID(ctx context.Context, orderID int64) (*domain.Order, error)

	// ExistsForCustomer — существует ли заказ И принадлежит ли он покупателю.
	ExistsForCustomer(ctx context.Context, orderID, customerID int64) (bool, error)
}
