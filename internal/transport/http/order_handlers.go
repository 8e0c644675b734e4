package rest

import (
	"net/http"

	"github.com/Gunvolt24/customer-api/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// GET /api/customers/:id/orders?page=&size=
func (h *Handler) listCustomerOrders(c *gin.Context) {
	customerID, err := httpx.ParseIDParam(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}
	page, err := httpx.ParseIntQuery(c, "page", 0)
	if err != nil {
		h.writeError(c, err)
		return
	}
	size, err := httpx.ParseIntQuery(c, "size", defaultOrdersPageSize)
	if err != nil {
		h.writeError(c, err)
		return
	}

	ctx, cancel := h.requestCtx(c)
	defer cancel()

	result, err := h.orders.ListCustomerOrders(ctx, customerID, page, size)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/customers/:id/orders/:orderId
func (h *Handler) getCustomerOrder(c *gin.Context) {
	customerID, err := httpx.ParseIDParam(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}
	orderID, err := httpx.ParseIDParam(c, "orderId")
	if err != nil {
		h.writeError(c, err)
		return
	}

	ctx, cancel := h.requestCtx(c)
	defer cancel()

	order, err := h.orders.GetCustomerOrder(ctx, customerID, orderID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GET /api/orders/:orderId
func (h *Handler) getOrderByID(c *gin.Context) {
	orderID, err := httpx.ParseIDParam(c, "orderId")
	if err != nil {
		h.writeError(c, err)
		return
	}

	ctx, cancel := h.requestCtx(c)
	defer cancel()

	order, err := h.orders.GetOrder(ctx, orderID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GET /api/customers/:id/orders/count
func (h *Handler) countCustomerOrders(c *gin.Context) {
	customerID, err := httpx.ParseIDParam(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	ctx, cancel := h.requestCtx(c)
	defer cancel()

	count, err := h.orders.CountCustomerOrders(ctx, customerID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, count)
}
