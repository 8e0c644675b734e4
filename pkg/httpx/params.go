package httpx

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamTypeError — значение path/query-параметра не приводится к нужному типу.
// Текст совпадает с форматом ответа "Invalid Parameter".
type ParamTypeError struct {
	Name  string
	Value string
}

func (e *ParamTypeError) Error() string {
	return fmt.Sprintf("Invalid value '%s' for parameter '%s'. Expected type: int", e.Value, e.Name)
}

// ParseIntQuery — целочисленный query-параметр с дефолтом при отсутствии.
// Нечисловое или не влезающее в int32 значение — *ParamTypeError
// (граница проверяет только тип, диапазон валидирует сервисный слой).
// Ширина в 32 бита ещё и страхует арифметику пагинации от переполнения.
func ParseIntQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, &ParamTypeError{Name: name, Value: raw}
	}
	return int(v), nil
}

// ParseIDParam — целочисленный path-параметр (id в маршруте).
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ParamTypeError{Name: name, Value: raw}
	}
	return v, nil
}
