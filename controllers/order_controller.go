package controllers

import (
	"math"
	"strconv"
	"strings"
	"time"

	"resto-admin/models"
	"resto-admin/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
	ticker *services.BoardTicker
}

func NewOrderController(orders *services.OrderService, ticker *services.BoardTicker) *OrderController {
	return &OrderController{orders: orders, ticker: ticker}
}

// @Summary Get all orders
// @Description Get paginated list of orders, optionally filtered by search
// text and status. Filters are applied fresh on every request.
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param search query string false "Search by order number, customer name, or table number"
// @Param status query string false "Filter by status" Enums(all, received, preparing, ready, served)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	status := strings.TrimSpace(c.Query("status"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	orders, err := ctrl.orders.ListOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	filtered := services.FilterOrders(orders, search, status)

	total := len(filtered)
	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	c.JSON(200, gin.H{
		"success": true, "message": "Orders retrieved", "data": filtered[offset:end],
		"meta": gin.H{
			"page": page, "limit": limit, "total_items": total,
			"total_pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// @Summary Get order by ID
// @Description Get order details including elapsed time since the last update
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := ctrl.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true, "message": "Order retrieved",
		"data": gin.H{"order": order, "elapsed": services.ComputeElapsed(*order, time.Now())},
	})
}

// @Summary Create order
// @Description Create a new order. Order numbers are generated from the
// current unix millisecond timestamp.
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request data", "error": err.Error()})
		return
	}

	order, err := ctrl.orders.CreateOrder(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Order created successfully", "data": order})
}

// @Summary Update order items
// @Description Replace an order's line items and recompute its total
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderItemsRequest true "Replacement items"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/items [put]
func (ctrl *OrderController) UpdateOrderItems(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateOrderItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request data", "error": err.Error()})
		return
	}

	order, err := ctrl.orders.UpdateItems(c.Request.Context(), id, req.Items)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order items updated", "data": order})
}

// @Summary Update order status
// @Description Set an order's status to any of the four lifecycle stages
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.OrderStatusRequest true "Target status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request data", "error": err.Error()})
		return
	}

	order, err := ctrl.orders.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order status updated", "data": order})
}

// @Summary Move order on the board
// @Description Handle a board drag: dropping a card on its current column is
// a no-op, any other column updates the order's status.
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.MoveOrderRequest true "Target column"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/move [patch]
func (ctrl *OrderController) MoveOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.MoveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request data", "error": err.Error()})
		return
	}

	order, err := ctrl.orders.MoveOrder(c.Request.Context(), id, req.Column)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order moved", "data": order})
}

// @Summary Delete order
// @Description Delete an order and its line items
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	if err := ctrl.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order deleted successfully"})
}

// @Summary Get order board
// @Description Get orders grouped into one column per status, with elapsed
// timers from the board ticker.
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders/board [get]
func (ctrl *OrderController) GetBoard(c *gin.Context) {
	columns, err := ctrl.orders.Board(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true, "message": "Board retrieved",
		"data": gin.H{"columns": columns, "timers": ctrl.ticker.Snapshot()},
	})
}

// @Summary Get order statistics
// @Description Get order counts and revenue, recomputed from the full order
// list on every request.
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders/stats [get]
func (ctrl *OrderController) GetStats(c *gin.Context) {
	stats, err := ctrl.orders.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order stats retrieved", "data": stats})
}

// @Summary Get all customers
// @Description Get list of known customers
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /customers [get]
func (ctrl *OrderController) GetAllCustomers(c *gin.Context) {
	customers, err := ctrl.orders.ListCustomers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Customers retrieved", "data": customers})
}

// @Summary Get customer by ID
// @Description Get customer details
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /customers/{id} [get]
func (ctrl *OrderController) GetCustomerByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	customer, err := ctrl.orders.GetCustomer(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Customer retrieved", "data": customer})
}
