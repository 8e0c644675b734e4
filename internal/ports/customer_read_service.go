package ports

import (
	"context"

	"github.com/Gunvolt24/customer-api/internal/domain"
)

// CustomerReadService — сервис чтения покупателей.
type CustomerReadService interface {
	ListCustomers(ctx context.Context, page, size int, search, country string) (domain.Page[*domain.Customer], error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	CustomerExists(ctx context.Context, id int64) (bool, error)
	CustomerCount(ctx context.Context) (int64, error)
}
