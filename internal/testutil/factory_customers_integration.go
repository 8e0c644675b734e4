//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/customer-api/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного покупателя
func MakeCustomer(id int64, opts ...func(*domain.Customer)) domain.Customer {
	now := time.Now().UTC().Truncate(time.Second)

	c := domain.Customer{
		ID:            id,
		FirstName:     "John",
		LastName:      "Smith",
		Email:         "john-" + UniqSuffix() + "@example.com",
		Age:           30,
		Gender:        "M",
		State:         "NA",
		StreetAddress: "Main st 1",
		PostalCode:    "000000",
		City:          "Metropolis",
		Country:       "United States",
		Latitude:      40.7,
		Longitude:     -74.0,
		TrafficSource: "Search",
		CreatedAt:     now,
	}

	for _, fn := range opts {
		fn(&c)
	}
	return c
}

func WithName(first, last string) func(*domain.Customer) {
	return func(c *domain.Customer) {
		c.FirstName = first
		c.LastName = last
	}
}

func WithEmail(email string) func(*domain.Customer) {
	return func(c *domain.Customer) { c.Email = email }
}

func WithCountry(country string) func(*domain.Customer) {
	return func(c *domain.Customer) { c.Country = country }
}

// Мини-генератор валидного заказа покупателя
func MakeOrder(orderID, userID int64, opts ...func(*domain.Order)) domain.Order {
	now := time.Now().UTC().Truncate(time.Second)

	o := domain.Order{
		OrderID:   orderID,
		UserID:    userID,
		Status:    "processing",
		Gender:    "M",
		CreatedAt: now,
		NumOfItem: 1,
	}

	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithStatus(status string) func(*domain.Order) {
	return func(o *domain.Order) { o.Status = status }
}

func WithCreatedAt(ts time.Time) func(*domain.Order) {
	return func(o *domain.Order) { o.CreatedAt = ts }
}

// InsertCustomer — прямой INSERT в users (сервис read-only, пишем мимо него).
func InsertCustomer(ctx context.Context, pool *pgxpool.Pool, c domain.Customer) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO users (
			id, first_name, last_name, email, age, gender,
			state, street_address, postal_code, city, country,
			latitude, longitude, traffic_source, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		c.ID, c.FirstName, c.LastName, c.Email, c.Age, c.Gender,
		c.State, c.StreetAddress, c.PostalCode, c.City, c.Country,
		c.Latitude, c.Longitude, c.TrafficSource, c.CreatedAt,
	)
	return err
}

// InsertOrder — прямой INSERT в orders.
func InsertOrder(ctx context.Context, pool *pgxpool.Pool, o domain.Order) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO orders (
			order_id, user_id, status, gender, created_at,
			returned_at, shipped_at, delivered_at, num_of_item
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		o.OrderID, o.UserID, o.Status, o.Gender, o.CreatedAt,
		o.ReturnedAt, o.ShippedAt, o.DeliveredAt, o.NumOfItem,
	)
	return err
}
