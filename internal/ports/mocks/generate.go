//go:generate mockgen -source=../customer_repository.go   -destination=./mock_customer_repository.go   -package=mocks
//go:generate mockgen -source=../order_repository.go      -destination=./mock_order_repository.go      -package=mocks
//go:generate mockgen -source=../customer_read_service.go -destination=./mock_customer_read_service.go -package=mocks
//go:generate mockgen -source=../order_read_service.go    -destination=./mock_order_read_service.go    -package=mocks
//go:generate mockgen -source=../logger.go                -destination=./mock_logger.go                -package=mocks

package mocks
