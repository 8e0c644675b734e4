package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/customer-api/internal/domain"
	"github.com/Gunvolt24/customer-api/internal/ports"
)

// OrderService — прикладная логика чтения заказов.
// Зависит и от репозитория покупателей: существование владельца
// проверяется до любых зависимых выборок (short-circuit).
type OrderService struct {
	orders    ports.OrderRepository
	customers ports.CustomerRepository
	log       ports.Logger
}

// NewOrderService — DI-конструктор.
func NewOrderService(orders ports.OrderRepository, customers ports.CustomerRepository, log ports.Logger) *OrderService {
	return &OrderService{orders: orders, customers: customers, log: log}
}

// ensureCustomer — валидация id и проверка существования покупателя.
func (s *OrderService) ensureCustomer(ctx context.Context, customerID int64) error {
	if customerID <= 0 {
		return fmt.Errorf("%w: customer ID must be a positive integer", domain.ErrInvalidRequest)
	}
	exists, err := s.customers.Exists(ctx, customerID)
	if err != nil {
		s.log.Errorf(ctx, "customers.Exists failed id=%d err=%v", customerID, err)
		return err
	}
	if !exists {
		return fmt.Errorf("%w with ID: %d", domain.ErrCustomerNotFound, customerID)
	}
	return nil
}

// normalizeOrder — нормализация производных полей:
// паддинг CHAR(1)-пола, все временные метки — в UTC.
func normalizeOrder(o *domain.Order) {
	o.Gender = strings.TrimSpace(o.Gender)
	o.CreatedAt = o.CreatedAt.UTC()
	o.ReturnedAt = toUTC(o.ReturnedAt)
	o.ShippedAt = toUTC(o.ShippedAt)
	o.DeliveredAt = toUTC(o.DeliveredAt)
}

func toUTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

// ListCustomerOrders — страница заказов покупателя, свежие первыми.
// Покупатель проверяется до выборки; пагинация — как у списка покупателей.
func (s *OrderService) ListCustomerOrders(ctx context.Context, customerID int64, page, size int) (domain.Page[*domain.Order], error) {
	if err := validatePageRequest(page, size); err != nil {
		return domain.Page[*domain.Order]{}, err
	}
	if err := s.ensureCustomer(ctx, customerID); err != nil {
		return domain.Page[*domain.Order]{}, err
	}

	total, err := s.orders.CountByCustomer(ctx, customerID)
	if err != nil {
		s.log.Errorf(ctx, "orders.CountByCustomer failed customer=%d err=%v", customerID, err)
		return domain.Page[*domain.Order]{}, err
	}

	orders, err := s.orders.ListByCustomer(ctx, customerID, size, page*size)
	if err != nil {
		s.log.Errorf(ctx, "orders.ListByCustomer failed customer=%d err=%v", customerID, err)
		return domain.Page[*domain.Order]{}, err
	}
	for _, o := range orders {
		normalizeOrder(o)
	}

	return domain.NewPage(orders, page, size, total), nil
}

// GetOrder — глобальный поиск заказа по id, без проверки владельца.
func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	if orderID <= 0 {
		return nil, fmt.Errorf("%w: order ID must be a positive integer", domain.ErrInvalidRequest)
	}

	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		s.log.Errorf(ctx, "orders.GetByID failed id=%d err=%v", orderID, err)
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("%w with ID: %d", domain.ErrOrderNotFound, orderID)
	}

	normalizeOrder(o)
	return o, nil
}

// GetCustomerOrder — заказ в контексте покупателя.
// Порядок проверок: покупатель существует → заказ существует И принадлежит
// покупателю (иначе Not-Found с отличным сообщением) → общий поиск.
func (s *OrderService) GetCustomerOrder(ctx context.Context, customerID, orderID int64) (*domain.Order, error) {
	if err := s.ensureCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	owned, err := s.orders.ExistsForCustomer(ctx, orderID, customerID)
	if err != nil {
		s.log.Errorf(ctx, "orders.ExistsForCustomer failed order=%d customer=%d err=%v", orderID, customerID, err)
		return nil, err
	}
	if !owned {
		return nil, fmt.Errorf("%w with ID: %d for customer: %d", domain.ErrOrderNotFound, orderID, customerID)
	}

	return s.GetOrder(ctx, orderID)
}

// CountCustomerOrders — число заказов покупателя (может быть 0).
func (s *OrderService) CountCustomerOrders(ctx context.Context, customerID int64) (int64, error) {
	if err := s.ensureCustomer(ctx, customerID); err != nil {
		return 0, err
	}
	return s.orders.CountByCustomer(ctx, customerID)
}
