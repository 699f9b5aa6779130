package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	orderingapp "github.com/petalia/backend/internal/application/ordering"
	"github.com/petalia/backend/internal/domain/ordering"
	"github.com/petalia/backend/internal/domain/shared"
)

// PaymentHandler handles payment endpoints, including the unauthenticated
// notification endpoint the payment gateway posts to.
type PaymentHandler struct {
	BaseHandler
	paymentService *orderingapp.PaymentService
	logger         *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *orderingapp.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, logger: logger}
}

// CreatePaymentHTTPRequest opens a charge for an order
type CreatePaymentHTTPRequest struct {
	OrderID    uuid.UUID       `json:"order_id" binding:"required"`
	Type       string          `json:"type" binding:"required,oneof=CARD_CREDIT PIX PIX_CNPJ BOLETO"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	PayerEmail string          `json:"payer_email" binding:"omitempty,email"`
}

// gatewayNotification is the shape Mercado Pago posts on payment updates.
// Older IPN deliveries carry topic/id as query parameters instead.
type gatewayNotification struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Create godoc
// @ID           createPayment
// @Summary      Open a charge for an order
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body CreatePaymentHTTPRequest true "Payment data"
// @Success      201 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentHTTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.paymentService.Create(c.Request.Context(), orderingapp.CreatePaymentRequest{
		OrderID:    req.OrderID,
		Type:       ordering.PaymentType(req.Type),
		Amount:     req.Amount,
		PayerEmail: req.PayerEmail,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListByOrder godoc
// @ID           listOrderPayments
// @Summary      List an order's payments
// @Tags         payments
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /orders/{id}/payments [get]
func (h *PaymentHandler) ListByOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de pedido inválido")
		return
	}

	resp, err := h.paymentService.ListByOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Confirm godoc
// @ID           confirmPayment
// @Summary      Manually settle a payment
// @Description  Used for payments collected outside the gateway, like a PIX transfer sent straight to the account.
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /payments/{id}/confirm [post]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de pagamento inválido")
		return
	}

	resp, err := h.paymentService.Confirm(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Cancel godoc
// @ID           cancelPayment
// @Summary      Cancel a payment
// @Description  Paid payments are refunded through the gateway before being marked cancelled.
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /payments/{id}/cancel [post]
func (h *PaymentHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de pagamento inválido")
		return
	}

	resp, err := h.paymentService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// HandleGatewayNotification godoc
// @ID           handleGatewayNotification
// @Summary      Receive a payment notification from the gateway
// @Description  Accepts both the webhook JSON body and the legacy IPN query-parameter format.
// @Tags         payment-callbacks
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.Response
// @Router       /webhooks/payments [post]
func (h *PaymentHandler) HandleGatewayNotification(c *gin.Context) {
	gatewayPaymentID := h.extractGatewayPaymentID(c)
	if gatewayPaymentID == "" {
		// Merchant-order and test pings carry no payment ID; acknowledge so
		// the gateway stops retrying.
		h.Success(c, gin.H{"ignored": true})
		return
	}

	_, err := h.paymentService.ConfirmFromGateway(c.Request.Context(), gatewayPaymentID)
	if err != nil {
		if errors.Is(err, shared.ErrAlreadyProcessed) || errors.Is(err, shared.ErrNotFound) {
			h.logger.Info("gateway notification absorbed",
				zap.String("gateway_payment_id", gatewayPaymentID),
				zap.Error(err))
			h.Success(c, gin.H{"absorbed": true})
			return
		}
		h.logger.Error("gateway notification failed",
			zap.String("gateway_payment_id", gatewayPaymentID),
			zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"processed": true})
}

func (h *PaymentHandler) extractGatewayPaymentID(c *gin.Context) string {
	var notification gatewayNotification
	if err := c.ShouldBindJSON(&notification); err == nil {
		if notification.Type == "payment" && notification.Data.ID != "" {
			return notification.Data.ID
		}
		if notification.Type != "" && notification.Type != "payment" {
			return ""
		}
	}

	if c.Query("topic") == "payment" || c.Query("type") == "payment" {
		return c.Query("id")
	}
	return ""
}
