package domain

import "errors"

// Ошибки доменного уровня (sentinel errors).
// Слои выше оборачивают их через fmt.Errorf("%w ...") с деталями,
// HTTP-граница проверяет errors.Is и отображает на статус/метку ответа.
var (
	// ErrInvalidRequest — некорректные параметры запроса (диапазон/знак).
	ErrInvalidRequest = errors.New("invalid request")

	// ErrCustomerNotFound — покупатель с таким id отсутствует.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrOrderNotFound — заказ отсутствует либо не принадлежит
	// указанному покупателю (детали — в обёрнутом сообщении).
	ErrOrderNotFound = errors.New("order not found")
)
