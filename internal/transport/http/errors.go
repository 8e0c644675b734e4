package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/Gunvolt24/customer-api/internal/domain"
	"github.com/Gunvolt24/customer-api/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Метки ошибок в конверте ответа.
const (
	labelInvalidRequest   = "Invalid Request"
	labelInvalidParameter = "Invalid Parameter"
	labelCustomerNotFound = "Customer Not Found"
	labelOrderNotFound    = "Order Not Found"
	labelInternal         = "Internal Server Error"
)

const internalMessage = "An unexpected error occurred. Please try again later."

// ErrorResponse — единый конверт ошибки.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Status    int       `json:"status"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

func writeErrorResponse(c *gin.Context, status int, label, message string) {
	c.JSON(status, ErrorResponse{
		Error:     label,
		Message:   message,
		Status:    status,
		Path:      c.Request.URL.Path,
		Timestamp: time.Now().UTC(),
	})
}

// writeError — центральное отображение доменных ошибок на HTTP.
// Любая неузнанная ошибка — 500 с нейтральным сообщением (без деталей наружу).
func (h *Handler) writeError(c *gin.Context, err error) {
	var paramErr *httpx.ParamTypeError

	switch {
	case errors.As(err, &paramErr):
		writeErrorResponse(c, http.StatusBadRequest, labelInvalidParameter, paramErr.Error())
	case errors.Is(err, domain.ErrInvalidRequest):
		writeErrorResponse(c, http.StatusBadRequest, labelInvalidRequest, err.Error())
	case errors.Is(err, domain.ErrCustomerNotFound):
		writeErrorResponse(c, http.StatusNotFound, labelCustomerNotFound, err.Error())
	case errors.Is(err, domain.ErrOrderNotFound):
		writeErrorResponse(c, http.StatusNotFound, labelOrderNotFound, err.Error())
	default:
		h.log.Errorf(c.Request.Context(), "internal error method=%s path=%s err=%v",
			c.Request.Method, c.Request.URL.Path, err)
		writeErrorResponse(c, http.StatusInternalServerError, labelInternal, internalMessage)
	}
}
