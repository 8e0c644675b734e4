package rest

import (
	"net/http"

	"github.com/Gunvolt24/customer-api/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// GET /api/customers?page=&size=&search=&country=
func (h *Handler) listCustomers(c *gin.Context) {
	page, err := httpx.ParseIntQuery(c, "page", 0)
	if err != nil {
		h.writeError(c, err)
		return
	}
	size, err := httpx.ParseIntQuery(c, "size", defaultCustomersPageSize)
	if err != nil {
		h.writeError(c, err)
		return
	}

	ctx, cancel := h.requestCtx(c)
	defer cancel()

	result, err := h.customers.ListCustomers(ctx, page, size, c.Query("search"), c.Query("country"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/customers/:id
func (h *Handler) getCustomerByID(c *gin.Context) {
	id, err := httpx.ParseIDParam(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	ctx, cancel := h.requestCtx(c)
	defer cancel()

	customer, err := h.customers.GetCustomer(ctx, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// GET /api/customers/count
func (h *Handler) customerCount(c *gin.Context) {
	ctx, cancel := h.requestCtx(c)
	defer cancel()

	count, err := h.customers.CustomerCount(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

// GET /api/customers/:id/exists
func (h *Handler) customerExists(c *gin.Context) {
	id, err := httpx.ParseIDParam(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	ctx, cancel := h.requestCtx(c)
	defer cancel()

	exists, err := h.customers.CustomerExists(ctx, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, exists)
}
