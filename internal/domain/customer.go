package domain

import "time"

// Customer — запись покупателя из таблицы users.
// OrderCount — производное поле: не хранится в БД, вычисляется запросом
// (LEFT JOIN orders ... COUNT), для покупателя без заказов равно 0.
type Customer struct {
	ID            int64     `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Age           int       `json:"age"`
	Gender        string    `json:"gender"`
	State         string    `json:"state"`
	StreetAddress string    `json:"street_address"`
	PostalCode    string    `json:"postal_code"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	TrafficSource string    `json:"traffic_source"`
	CreatedAt     time.Time `json:"created_at"`
	OrderCount    int64     `json:"order_count"`
}

// DisplayName — имя для отображения: "first last" через пробел.
func (c *Customer) DisplayName() string { return c.FirstName + " " + c.LastName }

// CustomerFilter — фильтр списка покупателей.
// Приоритет: непустой (после TrimSpace) Search важнее Country;
// при заданном Search поле Country игнорируется.
type CustomerFilter struct {
	Search  string // подстрока (без учёта регистра) по first_name / last_name / email
	Country string // точное совпадение страны
}

// IsEmpty — фильтр не задан, выборка по всем покупателям.
func (f CustomerFilter) IsEmpty() bool { return f.Search == "" && f.Country == "" }
