package ports

import (
	"context"

	"github.com/Gunvolt24/customer-api/internal/domain"
)

// OrderReadService — сервис чтения заказов.
type OrderReadService interface {
	ListCustomerOrders(ctx context.Context, customerID int64, page, size int) (domain.Page[*domain.Order], error)
	GetOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	GetCustomerOrder(ctx context.Context, customerID, orderID int64) (*domain.Order, error)
	CountCustomerOrders(ctx context.Context, customerID int64) (int64, error)
}
