package usecase_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/customer-api/internal/domain"
	"github.com/Gunvolt24/customer-api/internal/ports/mocks"
	"github.com/Gunvolt24/customer-api/internal/usecase"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func TestListCustomers_NegativePage(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	log := noopLogger{}

	// Валидация отрабатывает до похода в БД.
	repo.EXPECT().CountFiltered(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCustomerService(repo, log)

	_, err := svc.ListCustomers(context.Background(), -1, 20, "", "")
	if err == nil || !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("want ErrInvalidRequest, got %v", err)
	}
	if !strings.Contains(err.Error(), "page number cannot be negative") {
		t.Fatalf("wrong message: %v", err)
	}
}

func TestListCustomers_PageBeyondInt32(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	log := noopLogger{}

	// page*size на таких значениях переполнил бы offset в отрицательное число
	// и хранилище вернуло бы строки первой страницы вместо пустого content.
	repo.EXPECT().CountFiltered(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCustomerService(repo, log)

	for _, page := range []int{math.MaxInt32 + 1, 93_000_000_000_000_000} {
		_, err := svc.ListCustomers(context.Background(), page, 100, "", "")
		if err == nil || !errors.Is(err, domain.ErrInvalidRequest) {
			t.Fatalf("page=%d: want ErrInvalidRequest, got %v", page, err)
		}
		if !strings.Contains(err.Error(), "page number is too large") {
			t.Fatalf("page=%d: wrong message: %v", page, err)
		}
	}
}

func TestListCustomers_SizeOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	log := noopLogger{}

	svc := usecase.NewCustomerService(repo, log)

	for _, size := range []int{0, 101, -5} {
		_, err := svc.ListCustomers(context.Background(), 0, size, "", "")
		if err == nil || !errors.Is(err, domain.ErrInvalidRequest) {
			t.Fatalf("size=%d: want ErrInvalidRequest, got %v", size, err)
		}
		if !strings.Contains(err.Error(), "page size must be between 1 and 100") {
			t.Fatalf("size=%d: wrong message: %v", size, err)
		}
	}
}

func TestListCustomers_SearchWinsOverCountry(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	log := noopLogger{}

	// Непустой search: country игнорируется, пробелы обрезаются.
	want := domain.CustomerFilter{Search: "smith"}
	gomock.InOrder(
		repo.EXPECT().CountFiltered(gomock.Any(), want).Return(int64(1), nil),
		repo.EXPECT().List(gomock.Any(), want, 20, 0).
			Return([]*domain.Customer{{ID: 1, Gender: "M ", CreatedAt: time.Now()}}, nil),
	)

	svc := usecase.NewCustomerService(repo, log)

	page, err := svc.ListCustomers(context.Background(), 0, 20, "  smith  ", "Brazil")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Content) != 1 || page.TotalElements != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Content[0].Gender != "M" {
		t.Fatalf("gender not trimmed: %q", page.Content[0].Gender)
	}
}

func TestListCustomers_CountryOnly(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	log := noopLogger{}

	want := domain.CustomerFilter{Country: "Japan"}
	gomock.InOrder(
		repo.EXPECT().CountFiltered(gomock.Any(), want).Return(int64(0), nil),
		repo.EXPECT().List(gomock.Any(), want, 10, 0).Return(nil, nil),
	)

	svc := usecase.NewCustomerService(repo, log)

	page, err := svc.ListCustomers(context.Background(), 0, 10, "   ", "Japan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Content == nil || len(page.Content) != 0 {
		t.Fatalf("want empty non-nil content, got %#v", page.Content)
	}
	if !page.IsFirst || !page.IsLast {
		t.Fatalf("empty page must be first and last: %+v", page)
	}
}

func TestListCustomers_OffsetFromPage(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	log := noopLogger{}

	gomock.InOrder(
		repo.EXPECT().CountFiltered(gomock.Any(), domain.CustomerFilter{}).Return(int64(50), nil),
		// page=2, size=15 -> offset=30
		repo.EXPECT().List(gomock.Any(), domain.CustomerFilter{}, 15, 30).
			Return([]*domain.Customer{{ID: 31}}, nil),
	)

	svc := usecase.NewCustomerService(repo, log)

	page, err := svc.ListCustomers(context.Background(), 2, 15, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalPages != 4 || page.IsFirst {
		t.Fatalf("unexpected page meta: %+v", page)
	}
}

func TestListCustomers_CountErr(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	log := noopLogger{}

	repoErr := errors.New("DB down")
	repo.EXPECT().CountFiltered(gomock.Any(), gomock.Any()).Return(int64(0), repoErr)
	repo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCustomerService(repo, log)

	_, err := svc.ListCustomers(context.Background(), 0, 20, "", "")
	if err == nil || !errors.Is(err, repoErr) {
		t.Fatalf("want repo error, got %v", err)
	}
}

func TestGetCustomer_Found(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	log := noopLogger{}

	c := &domain.Customer{ID: 7, FirstName: "Ann", LastName: "Lee", Gender: "F "}
	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(c, nil),
		repo.EXPECT().CountOrders(gomock.Any(), int64(7)).Return(int64(3), nil),
	)

	svc := usecase.NewCustomerService(repo, log)

	got, err := svc.GetCustomer(context.Background(), 7)
	if err != nil || got == nil {
		t.Fatalf("unexpected: customer=%v err=%v", got, err)
	}
	if got.OrderCount != 3 {
		t.Fatalf("want order_count=3, got %d", got.OrderCount)
	}
	if got.Gender != "F" {
		t.Fatalf("gender not trimmed: %q", got.Gender)
	}
}

func TestGetCustomer_ZeroOrders(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	log := noopLogger{}

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.Customer{ID: 5}, nil),
		repo.EXPECT().CountOrders(gomock.Any(), int64(5)).Return(int64(0), nil),
	)

	svc := usecase.NewCustomerService(repo, log)

	got, err := svc.GetCustomer(context.Background(), 5)
	if err != nil || got.OrderCount != 0 {
		t.Fatalf("want order_count=0, got customer=%+v err=%v", got, err)
	}
}

func TestGetCustomer_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	log := noopLogger{}

	repo.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, nil)
	repo.EXPECT().CountOrders(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCustomerService(repo, log)

	_, err := svc.GetCustomer(context.Background(), 404)
	if err == nil || !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("want ErrCustomerNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "with ID: 404") {
		t.Fatalf("wrong message: %v", err)
	}
}

func TestGetCustomer_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	log := noopLogger{}

	repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCustomerService(repo, log)

	for _, id := range []int64{0, -1} {
		_, err := svc.GetCustomer(context.Background(), id)
		if err == nil || !errors.Is(err, domain.ErrInvalidRequest) {
			t.Fatalf("id=%d: want ErrInvalidRequest, got %v", id, err)
		}
	}
}

func TestCustomerExists_Proxy(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	log := noopLogger{}

	repo.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)

	svc := usecase.NewCustomerService(repo, log)

	ok, err := svc.CustomerExists(context.Background(), 1)
	if err != nil || !ok {
		t.Fatalf("want true, got ok=%v err=%v", ok, err)
	}
}

func TestCustomerExists_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	log := noopLogger{}

	repo.EXPECT().Exists(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCustomerService(repo, log)

	_, err := svc.CustomerExists(context.Background(), 0)
	if err == nil || !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("want ErrInvalidRequest, got %v", err)
	}
}

func TestCustomerCount_Proxy(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	log := noopLogger{}

	repo.EXPECT().Count(gomock.Any()).Return(int64(1000), nil)

	svc := usecase.NewCustomerService(repo, log)

	n, err := svc.CustomerCount(context.Background())
	if err != nil || n != 1000 {
		t.Fatalf("want 1000, got n=%d err=%v", n, err)
	}
}
