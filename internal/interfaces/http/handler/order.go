package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/petalia/backend/internal/application/catalog"
	orderingapp "github.com/petalia/backend/internal/application/ordering"
	"github.com/petalia/backend/internal/domain/ordering"
)

// OrderHandler handles order lifecycle endpoints
type OrderHandler struct {
	BaseHandler
	orderService   *orderingapp.OrderService
	productService *catalogapp.ProductService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderingapp.OrderService, productService *catalogapp.ProductService) *OrderHandler {
	return &OrderHandler{orderService: orderService, productService: productService}
}

// CreateOrderRequest represents a request to register an order
type CreateOrderRequest struct {
	OrderNumber     string    `json:"order_number" binding:"required,min=1,max=50"`
	CustomerID      uuid.UUID `json:"customer_id" binding:"required"`
	ProductID       uuid.UUID `json:"product_id" binding:"required"`
	DeliveryUntil   time.Time `json:"delivery_until" binding:"required"`
	DeliveryPeriod  string    `json:"delivery_period" binding:"required,oneof=MORNING AFTERNOON EVENING"`
	DeliveryAddress string    `json:"delivery_address" binding:"max=500"`
	Remark          string    `json:"remark" binding:"max=2000"`
}

// Create godoc
// @ID           createOrder
// @Summary      Register an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body CreateOrderRequest true "Order data"
// @Success      201 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), req.ProductID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	resp, err := h.orderService.Create(c.Request.Context(), orderingapp.CreateOrderRequest{
		OrderNumber:     req.OrderNumber,
		CustomerID:      req.CustomerID,
		ProductID:       product.ID,
		ProductName:     product.Name,
		DeliveryUntil:   req.DeliveryUntil,
		DeliveryPeriod:  ordering.DeliveryPeriod(req.DeliveryPeriod),
		DeliveryAddress: req.DeliveryAddress,
		Remark:          req.Remark,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List godoc
// @ID           listOrders
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        search query string false "Search term (order number, customer name)"
// @Param        status query string false "Order status"
// @Param        customer_id query string false "Customer ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	req, err := bindListRequest(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := toFilter(req)
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		id, err := uuid.Parse(customerID)
		if err != nil {
			h.BadRequest(c, "Identificador de cliente inválido")
			return
		}
		filter.Filters["customer_id"] = id
	}

	orders, total, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, orders, total, filter.Page, filter.PageSize)
}

// GetByID godoc
// @ID           getOrderById
// @Summary      Get order by ID
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de pedido inválido")
		return
	}

	resp, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Kanban godoc
// @ID           orderKanban
// @Summary      Operational board grouped by stage
// @Description  Three columns (pending, producing, delivering); each card carries panel and payment summaries.
// @Tags         orders
// @Produce      json
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /orders/kanban [get]
func (h *OrderHandler) Kanban(c *gin.Context) {
	resp, err := h.orderService.Kanban(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// StartRoute godoc
// @ID           startOrderRoute
// @Summary      Move an order from production to delivery
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /orders/{id}/start-route [post]
func (h *OrderHandler) StartRoute(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de pedido inválido")
		return
	}

	resp, err := h.orderService.StartRoute(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Finalize godoc
// @ID           finalizeOrder
// @Summary      Close a delivered, fully paid order
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /orders/{id}/finalize [post]
func (h *OrderHandler) Finalize(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de pedido inválido")
		return
	}

	resp, err := h.orderService.Finalize(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}
