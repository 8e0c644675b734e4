package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/Gunvolt24/customer-api/config"
	"github.com/Gunvolt24/customer-api/internal/domain"
	"github.com/Gunvolt24/customer-api/internal/gen"
	"github.com/Gunvolt24/customer-api/internal/repo/postgres"
	"github.com/Gunvolt24/customer-api/pkg/validate"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// seed — применяет миграции и наполняет БД сгенерированным датасетом.
// Сервис read-only, поэтому это единственный путь данных в таблицы.
func main() {
	users := flag.Int("users", 500, "количество покупателей")
	ordersPerUser := flag.Int("orders-per-user", 5, "максимум заказов на покупателя")
	seed := flag.Int64("seed", 0, "seed генератора (0 — случайный)")
	migrationsDir := flag.String("migrations", "./migrations", "каталог goose-миграций")
	flag.Parse()

	// .env.local — локальная разработка; в остальных окружениях файла нет.
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("seed: конфигурация: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := applyMigrations(cfg.Postgres.DSN, *migrationsDir); err != nil {
		log.Fatalf("seed: миграции: %v", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		log.Fatalf("seed: подключение к postgres: %v", err)
	}
	defer pool.Close()

	gen.Seed(*seed)
	v := validate.NewRecordValidator()

	customers, orders := buildDataset(ctx, v, *users, *ordersPerUser)

	inserted, err := copyCustomers(ctx, pool, customers)
	if err != nil {
		log.Fatalf("seed: загрузка покупателей: %v", err)
	}
	log.Printf("seed: загружено покупателей: %d", inserted)

	inserted, err = copyOrders(ctx, pool, orders)
	if err != nil {
		log.Fatalf("seed: загрузка заказов: %v", err)
	}
	log.Printf("seed: загружено заказов: %d", inserted)
}

// applyMigrations — goose поверх database/sql (pgx stdlib-драйвер).
func applyMigrations(dsn, dir string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, dir)
}

// buildDataset — генерирует покупателей и их заказы; невалидные записи
// пропускаются с логом (генератор их не производит, но проверка дешёвая).
func buildDataset(ctx context.Context, v *validate.RecordValidator, users, ordersPerUser int) ([]*domain.Customer, []*domain.Order) {
	customers := make([]*domain.Customer, 0, users)
	orders := make([]*domain.Order, 0, users*ordersPerUser/2)

	var orderID int64
	for id := int64(1); id <= int64(users); id++ {
		c := gen.FakeCustomer(id)
		if err := v.ValidateCustomer(ctx, c); err != nil {
			log.Printf("seed: покупатель %d пропущен: %v", id, err)
			continue
		}
		customers = append(customers, c)

		n := gen.OrderCount(ordersPerUser)
		for range n {
			orderID++
			o := gen.FakeOrder(orderID, c.ID, c.Gender)
			if err := v.ValidateOrder(ctx, o); err != nil {
				log.Printf("seed: заказ %d пропущен: %v", orderID, err)
				continue
			}
			orders = append(orders, o)
		}
	}
	return customers, orders
}

func copyCustomers(ctx context.Context, pool *pgxpool.Pool, customers []*domain.Customer) (int64, error) {
	cols := []string{
		"id", "first_name", "last_name", "email", "age", "gender",
		"state", "street_address", "postal_code", "city", "country",
		"latitude", "longitude", "traffic_source", "created_at",
	}
	rows := make([][]any, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []any{
			c.ID, c.FirstName, c.LastName, c.Email, c.Age, c.Gender,
			c.State, c.StreetAddress, c.PostalCode, c.City, c.Country,
			c.Latitude, c.Longitude, c.TrafficSource, c.CreatedAt,
		})
	}
	return pool.CopyFrom(ctx, pgx.Identifier{"users"}, cols, pgx.CopyFromRows(rows))
}

func copyOrders(ctx context.Context, pool *pgxpool.Pool, orders []*domain.Order) (int64, error) {
	cols := []string{
		"order_id", "user_id", "status", "gender", "created_at",
		"returned_at", "shipped_at", "delivered_at", "num_of_item",
	}
	rows := make([][]any, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []any{
			o.OrderID, o.UserID, o.Status, o.Gender, o.CreatedAt,
			o.ReturnedAt, o.ShippedAt, o.DeliveredAt, o.NumOfItem,
		})
	}
	return pool.CopyFrom(ctx, pgx.Identifier{"orders"}, cols, pgx.CopyFromRows(rows))
}
