//go:build integration

package rest_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/customer-api/internal/domain"
	pgrepo "github.com/Gunvolt24/customer-api/internal/repo/postgres"
	"github.com/Gunvolt24/customer-api/internal/testutil"
	rest "github.com/Gunvolt24/customer-api/internal/transport/http"
	"github.com/Gunvolt24/customer-api/internal/usecase"
	"github.com/Gunvolt24/customer-api/pkg/logger"
)

// startAPI — контейнер + миграции + датасет + живой HTTP-сервер поверх
// настоящих репозиториев и сервисов.
func startAPI(t *testing.T) *httptest.Server {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)

	c1 := testutil.MakeCustomer(1,
		testutil.WithName("Alice", "Smith"),
		testutil.WithEmail("alice.smith@example.com"),
		testutil.WithCountry("Brazil"))
	c2 := testutil.MakeCustomer(2,
		testutil.WithName("Bob", "Jones"),
		testutil.WithEmail("bob.jones@example.com"),
		testutil.WithCountry("Japan"))
	require.NoError(t, testutil.InsertCustomer(ctx, pg.Pool, c1))
	require.NoError(t, testutil.InsertCustomer(ctx, pg.Pool, c2))

	for i := int64(0); i < 3; i++ {
		o := testutil.MakeOrder(100+i, 1, testutil.WithCreatedAt(base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, testutil.InsertOrder(ctx, pg.Pool, o))
	}

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	customerRepo := pgrepo.NewCustomerRepository(pg.Pool)
	orderRepo := pgrepo.NewOrderRepository(pg.Pool)
	customerSvc := usecase.NewCustomerService(customerRepo, logg)
	orderSvc := usecase.NewOrderService(orderRepo, customerRepo, logg)

	h := rest.NewHandler(customerSvc, orderSvc, logg, 2*time.Second)
	r := rest.NewRouter(h, "", "")
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return ts
}

// 1) GET /api/customers — страница с метаданными и order_count
func TestHTTP_ListCustomers_TC(t *testing.T) {
	ts := startAPI(t)

	resp, err := http.Get(ts.URL + "/api/customers")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.Page[*domain.Customer]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	require.Len(t, got.Content, 2)
	require.Equal(t, int64(2), got.TotalElements)
	require.Equal(t, 1, got.TotalPages)
	require.True(t, got.IsFirst)
	require.True(t, got.IsLast)

	// Покупатель 1 — три заказа, покупатель 2 — ни одного.
	require.Equal(t, int64(3), got.Content[0].OrderCount)
	require.Equal(t, int64(0), got.Content[1].OrderCount)
}

// 2) GET /api/customers?search= / ?country= — фильтрация
func TestHTTP_ListCustomers_Filters_TC(t *testing.T) {
	ts := startAPI(t)

	resp, err := http.Get(ts.URL + "/api/customers?search=smith")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var bySearch domain.Page[*domain.Customer]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&bySearch))
	require.Len(t, bySearch.Content, 1)
	require.Equal(t, "Alice", bySearch.Content[0].FirstName)

	respC, err := http.Get(ts.URL + "/api/customers?country=Japan")
	require.NoError(t, err)
	defer respC.Body.Close()
	require.Equal(t, http.StatusOK, respC.StatusCode)

	var byCountry domain.Page[*domain.Customer]
	require.NoError(t, json.NewDecoder(respC.Body).Decode(&byCountry))
	require.Len(t, byCountry.Content, 1)
	require.Equal(t, "Bob", byCountry.Content[0].FirstName)

	// search имеет приоритет над country.
	respB, err := http.Get(ts.URL + "/api/customers?search=smith&country=Japan")
	require.NoError(t, err)
	defer respB.Body.Close()

	var both domain.Page[*domain.Customer]
	require.NoError(t, json.NewDecoder(respB.Body).Decode(&both))
	require.Len(t, both.Content, 1)
	require.Equal(t, "Alice", both.Content[0].FirstName)
}

// 3) GET /api/customers/:id — 200 и 404 с конвертом ошибки
func TestHTTP_GetCustomer_TC(t *testing.T) {
	ts := startAPI(t)

	resp, err := http.Get(ts.URL + "/api/customers/1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.Customer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "Alice", got.FirstName)
	require.Equal(t, int64(3), got.OrderCount)

	resp404, err := http.Get(ts.URL + "/api/customers/9999")
	require.NoError(t, err)
	defer resp404.Body.Close()
	require.Equal(t, http.StatusNotFound, resp404.StatusCode)

	var e map[string]any
	require.NoError(t, json.NewDecoder(resp404.Body).Decode(&e))
	require.Equal(t, "Customer Not Found", e["error"])
	require.Equal(t, "/api/customers/9999", e["path"])
}

// 4) count и exists — «голые» JSON-значения
func TestHTTP_CountAndExists_TC(t *testing.T) {
	ts := startAPI(t)

	resp, err := http.Get(ts.URL + "/api/customers/count")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "2", string(readAll(t, resp.Body)))

	respE, err := http.Get(ts.URL + "/api/customers/1/exists")
	require.NoError(t, err)
	defer respE.Body.Close()
	require.Equal(t, "true", string(readAll(t, respE.Body)))

	respM, err := http.Get(ts.URL + "/api/customers/9999/exists")
	require.NoError(t, err)
	defer respM.Body.Close()
	require.Equal(t, "false", string(readAll(t, respM.Body)))
}

// 5) GET /api/customers/:id/orders — пагинация и сортировка DESC
func TestHTTP_ListCustomerOrders_Pagination_TC(t *testing.T) {
	ts := startAPI(t)

	resp, err := http.Get(ts.URL + fmt.Sprintf("/api/customers/%d/orders?page=0&size=2", 1))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page domain.Page[*domain.Order]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))

	require.Len(t, page.Content, 2)
	require.Equal(t, int64(3), page.TotalElements)
	require.Equal(t, 2, page.TotalPages)
	require.False(t, page.IsLast)

	// Свежие первыми и обогащение владельцем.
	require.Equal(t, int64(102), page.Content[0].OrderID)
	require.Equal(t, "Alice Smith", page.Content[0].CustomerName)

	// Вторая страница — последний заказ.
	resp2, err := http.Get(ts.URL + "/api/customers/1/orders?page=1&size=2")
	require.NoError(t, err)
	defer resp2.Body.Close()

	var page2 domain.Page[*domain.Order]
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&page2))
	require.Len(t, page2.Content, 1)
	require.Equal(t, int64(100), page2.Content[0].OrderID)
	require.True(t, page2.IsLast)
}

// 6) Принадлежность заказа: свой — 200, чужой — 404 Order Not Found
func TestHTTP_GetCustomerOrder_Ownership_TC(t *testing.T) {
	ts := startAPI(t)

	resp, err := http.Get(ts.URL + "/api/customers/1/orders/101")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respF, err := http.Get(ts.URL + "/api/customers/2/orders/101")
	require.NoError(t, err)
	defer respF.Body.Close()
	require.Equal(t, http.StatusNotFound, respF.StatusCode)

	var e map[string]any
	require.NoError(t, json.NewDecoder(respF.Body).Decode(&e))
	require.Equal(t, "Order Not Found", e["error"])
}

// 7) Невалидный параметр — 400 Invalid Parameter
func TestHTTP_InvalidParam_400_TC(t *testing.T) {
	ts := startAPI(t)

	resp, err := http.Get(ts.URL + "/api/customers/abc")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	require.Equal(t, "Invalid Parameter", e["error"])
	require.Equal(t, "Invalid value 'abc' for parameter 'id'. Expected type: int", e["message"])
}

// 8) /ping и /metrics живы
func TestHTTP_Health_Metrics_TC(t *testing.T) {
	ts := startAPI(t)

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "pong", string(readAll(t, resp.Body)))

	respM, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer respM.Body.Close()
	require.Equal(t, http.StatusOK, respM.StatusCode)
	require.NotEmpty(t, readAll(t, respM.Body)) // достаточно, что не пусто
}

// readAll — просто прочитать тело.
func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return b
}
