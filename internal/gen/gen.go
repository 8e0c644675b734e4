package gen

import (
	"time"

	"github.com/Gunvolt24/customer-api/internal/domain"
	"github.com/brianvoe/gofakeit/v7"
)

// Генерация правдоподобного датасета для cmd/seed.
// Сервис данные не создаёт, поэтому весь "внешний мир" живёт здесь.

var (
	statuses       = []string{"processing", "shipped", "delivered", "returned", "cancelled"}
	trafficSources = []string{"Search", "Organic", "Email", "Display", "Facebook"}
	genders        = []string{"M", "F"}
)

// Seed — инициализация генератора; 0 — недетерминированно (от времени).
func Seed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gofakeit.Seed(seed)
}

// OrderCount — сколько заказов сгенерировать покупателю: от 0 до max,
// часть покупателей сознательно остаётся без заказов.
func OrderCount(max int) int {
	if max <= 0 {
		return 0
	}
	return gofakeit.Number(0, max)
}

// FakeCustomer — покупатель с заданным id.
func FakeCustomer(id int64) *domain.Customer {
	addr := gofakeit.Address()
	return &domain.Customer{
		ID:            id,
		FirstName:     gofakeit.FirstName(),
		LastName:      gofakeit.LastName(),
		Email:         gofakeit.Email(),
		Age:           gofakeit.Number(18, 70),
		Gender:        gofakeit.RandomString(genders),
		State:         addr.State,
		StreetAddress: addr.Street,
		PostalCode:    addr.Zip,
		City:          addr.City,
		Country:       gofakeit.Country(),
		Latitude:      addr.Latitude,
		Longitude:     addr.Longitude,
		TrafficSource: gofakeit.RandomString(trafficSources),
		CreatedAt:     gofakeit.DateRange(time.Now().AddDate(-3, 0, 0), time.Now()).UTC(),
	}
}

// FakeOrder — заказ покупателя userID с временными метками,
// согласованными со статусом (created всегда, дальше — по жизненному циклу).
func FakeOrder(orderID, userID int64, gender string) *domain.Order {
	created := gofakeit.DateRange(time.Now().AddDate(-2, 0, 0), time.Now().AddDate(0, 0, -14)).UTC()
	status := gofakeit.RandomString(statuses)

	o := &domain.Order{
		OrderID:   orderID,
		UserID:    userID,
		Status:    status,
		Gender:    gender,
		CreatedAt: created,
		NumOfItem: gofakeit.Number(1, 4),
	}

	after := func(t time.Time) *time.Time {
		ts := t.Add(time.Duration(gofakeit.Number(12, 96)) * time.Hour)
		return &ts
	}

	switch status {
	case "shipped":
		o.ShippedAt = after(created)
	case "delivered":
		o.ShippedAt = after(created)
		o.DeliveredAt = after(*o.ShippedAt)
	case "returned":
		o.ShippedAt = after(created)
		o.DeliveredAt = after(*o.ShippedAt)
		o.ReturnedAt = after(*o.DeliveredAt)
	}
	return o
}
