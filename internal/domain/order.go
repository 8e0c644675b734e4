package domain

import "time"

// Order — заказ покупателя.
// Временные метки жизненного цикла (returned/shipped/delivered) опциональны
// и независимы друг от друга; порядок между ними БД не гарантирует.
// CustomerName/CustomerEmail заполняются только в обогащённых выборках
// (JOIN с users), в самой таблице orders их нет.
type Order struct {
	OrderID       int64      `json:"order_id"`
	UserID        int64      `json:"user_id"`
	Status        string     `json:"status"`
	Gender        string     `json:"gender"`
	CreatedAt     time.Time  `json:"created_at"`
	ReturnedAt    *time.Time `json:"returned_at"`
	ShippedAt     *time.Time `json:"shipped_at"`
	DeliveredAt   *time.Time `json:"delivered_at"`
	NumOfItem     int        `json:"num_of_item"`
	CustomerName  string     `json:"customer_name,omitempty"`
	CustomerEmail string     `json:"customer_email,omitempty"`
}
