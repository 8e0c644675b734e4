package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Gunvolt24/customer-api/internal/domain"
	"github.com/Gunvolt24/customer-api/internal/ports"
)

// Границы размера страницы (общие для всех листингов).
const (
	MinPageSize = 1
	MaxPageSize = 100
)

// CustomerService — прикладная логика чтения покупателей (без знаний о транспорте).
type CustomerService struct {
	customers ports.CustomerRepository // прямой доступ к хранилищу
	log       ports.Logger             // прямой доступ к логгеру
}

// NewCustomerService — DI-конструктор.
func NewCustomerService(customers ports.CustomerRepository, log ports.Logger) *CustomerService {
	return &CustomerService{customers: customers, log: log}
}

// validatePageRequest — проверка границ пагинации до похода в БД.
// Верхняя граница page держит offset = page*size в пределах int64:
// без неё гигантский page переполняет произведение в отрицательное смещение.
func validatePageRequest(page, size int) error {
	if page < 0 {
		return fmt.Errorf("%w: page number cannot be negative", domain.ErrInvalidRequest)
	}
	if page > math.MaxInt32 {
		return fmt.Errorf("%w: page number is too large", domain.ErrInvalidRequest)
	}
	if size < MinPageSize || size > MaxPageSize {
		return fmt.Errorf("%w: page size must be between 1 and 100", domain.ErrInvalidRequest)
	}
	return nil
}

// resolveCustomerFilter — нормализация и приоритет фильтров:
// непустой (после TrimSpace) search важнее country; country тогда игнорируется.
func resolveCustomerFilter(search, country string) domain.CustomerFilter {
	if s := strings.TrimSpace(search); s != "" {
		return domain.CustomerFilter{Search: s}
	}
	if c := strings.TrimSpace(country); c != "" {
		return domain.CustomerFilter{Country: c}
	}
	return domain.CustomerFilter{}
}

// normalizeCustomer — нормализация производных полей строки:
// CHAR(1)-пол приходит с паддингом, created_at приводим к UTC.
func normalizeCustomer(c *domain.Customer) {
	c.Gender = strings.TrimSpace(c.Gender)
	c.CreatedAt = c.CreatedAt.UTC()
}

// ListCustomers — страница покупателей с order_count по каждому.
// Итоги (total_elements/total_pages) считаются по отфильтрованной выборке;
// страница за пределами выборки — пустой content с корректными итогами.
func (s *CustomerService) ListCustomers(ctx context.Context, page, size int, search, country string) (domain.Page[*domain.Customer], error) {
	if err := validatePageRequest(page, size); err != nil {
		return domain.Page[*domain.Customer]{}, err
	}

	filter := resolveCustomerFilter(search, country)

	total, err := s.customers.CountFiltered(ctx, filter)
	if err != nil {
		s.log.Errorf(ctx, "customers.CountFiltered failed err=%v", err)
		return domain.Page[*domain.Customer]{}, err
	}

	start := time.Now()
	customers, err := s.customers.List(ctx, filter, size, page*size)
	if err != nil {
		s.log.Errorf(ctx, "customers.List failed page=%d size=%d err=%v", page, size, err)
		return domain.Page[*domain.Customer]{}, err
	}
	for _, c := range customers {
		normalizeCustomer(c)
	}
	s.log.Infof(ctx, "customers listed page=%d size=%d total=%d took=%s", page, size, total, time.Since(start))

	return domain.NewPage(customers, page, size, total), nil
}

// GetCustomer — покупатель по id с отдельным подсчётом заказов.
func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: customer ID must be a positive integer", domain.ErrInvalidRequest)
	}

	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "customers.GetByID failed id=%d err=%v", id, err)
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w with ID: %d", domain.ErrCustomerNotFound, id)
	}

	// order_count считается отдельным скалярным запросом.
	count, err := s.customers.CountOrders(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "customers.CountOrders failed id=%d err=%v", id, err)
		return nil, err
	}
	c.OrderCount = count

	normalizeCustomer(c)
	return c, nil
}

// CustomerExists — есть ли покупатель с таким id.
func (s *CustomerService) CustomerExists(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("%w: customer ID must be a positive integer", domain.ErrInvalidRequest)
	}
	return s.customers.Exists(ctx, id)
}

// CustomerCount — общее число покупателей без фильтров.
func (s *CustomerService) CustomerCount(ctx context.Context) (int64, error) {
	return s.customers.Count(ctx)
}
