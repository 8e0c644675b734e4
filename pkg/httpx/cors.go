package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware — сервис read-only и без аутентификации, поэтому
// разрешаем кросс-доменные GET для фронтенда с любого origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
