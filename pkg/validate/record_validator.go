package validate

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/Gunvolt24/customer-api/internal/domain"
)

// ErrInvalidRecord — базовая (sentinel error) ошибка валидации записи датасета.
var ErrInvalidRecord = errors.New("record validation failed")

// RecordValidator — проверка записей перед массовой загрузкой в БД.
// Сервис сам данные не валидирует (read-only), поэтому единственная
// точка входа данных — загрузчик — отвечает за их минимальное качество.
type RecordValidator struct{}

// NewRecordValidator — конструктор RecordValidator.
// Методы возвращают ErrInvalidRecord (с обёрнутой причиной) при любой проблеме.
func NewRecordValidator() *RecordValidator { return &RecordValidator{} }

// ValidateCustomer — проверяет корректность полей покупателя.
func (v *RecordValidator) ValidateCustomer(_ context.Context, c *domain.Customer) error {
	if c == nil {
		return fmt.Errorf("%w: покупатель не может быть nil", ErrInvalidRecord)
	}
	if c.ID <= 0 {
		return fmt.Errorf("%w: id должен быть положительным", ErrInvalidRecord)
	}
	if c.FirstName == "" || c.LastName == "" {
		return fmt.Errorf("%w: first_name и last_name обязательны", ErrInvalidRecord)
	}
	if c.Email == "" {
		return fmt.Errorf("%w: email обязателен", ErrInvalidRecord)
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("%w: email некорректен", ErrInvalidRecord)
	}
	if c.Age < 0 || c.Age > 150 {
		return fmt.Errorf("%w: age вне диапазона [0, 150]", ErrInvalidRecord)
	}
	if c.Gender != "M" && c.Gender != "F" {
		return fmt.Errorf("%w: gender должен быть M или F", ErrInvalidRecord)
	}
	if c.CreatedAt.IsZero() {
		return fmt.Errorf("%w: created_at обязателен", ErrInvalidRecord)
	}
	return nil
}

// ValidateOrder — проверяет корректность полей заказа.
// Порядок временных меток жизненного цикла сознательно не проверяется:
// витрина отдаёт данные как есть.
func (v *RecordValidator) ValidateOrder(_ context.Context, o *domain.Order) error {
	if o == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidRecord)
	}
	if o.OrderID <= 0 {
		return fmt.Errorf("%w: order_id должен быть положительным", ErrInvalidRecord)
	}
	if o.UserID <= 0 {
		return fmt.Errorf("%w: user_id должен быть положительным", ErrInvalidRecord)
	}
	if o.Status == "" {
		return fmt.Errorf("%w: status обязателен", ErrInvalidRecord)
	}
	if o.CreatedAt.IsZero() {
		return fmt.Errorf("%w: created_at обязателен", ErrInvalidRecord)
	}
	if o.NumOfItem <= 0 {
		return fmt.Errorf("%w: num_of_item должен быть положительным", ErrInvalidRecord)
	}
	return nil
}
