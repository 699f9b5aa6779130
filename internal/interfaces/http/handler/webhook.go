package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	conversionapp "github.com/petalia/backend/internal/application/conversion"
	orderingapp "github.com/petalia/backend/internal/application/ordering"
	"github.com/petalia/backend/internal/domain/shared"
)

// WebhookHandler receives the scheduled callbacks the application registers
// for itself, plus inbound message replies. Signature checks live in the
// middleware; these handlers only apply the transition.
//
// All of them answer 200 when the state already moved on. The scheduler
// retries non-2xx responses and there is nothing left to retry for.
type WebhookHandler struct {
	BaseHandler
	panelService      *orderingapp.PanelService
	orderService      *orderingapp.OrderService
	conversionService *conversionapp.Service
	logger            *zap.Logger
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(
	panelService *orderingapp.PanelService,
	orderService *orderingapp.OrderService,
	conversionService *conversionapp.Service,
	logger *zap.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		panelService:      panelService,
		orderService:      orderService,
		conversionService: conversionService,
		logger:            logger,
	}
}

// PanelCallbackRequest carries the panel a scheduled callback refers to
type PanelCallbackRequest struct {
	PanelID uuid.UUID `json:"panel_id" binding:"required"`
}

// OrderCallbackRequest carries the order a scheduled callback refers to
type OrderCallbackRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
}

// FormCallbackRequest carries the lead form a scheduled callback refers to
type FormCallbackRequest struct {
	FormID uuid.UUID `json:"form_id" binding:"required"`
}

// MessageReplyRequest is the inbound-reply event from the messaging provider
type MessageReplyRequest struct {
	ExternalID string    `json:"external_id" binding:"required"`
	Text       string    `json:"text"`
	At         time.Time `json:"at"`
}

// ExpirePanel godoc
// @ID           expirePanelCallback
// @Summary      Expire a panel whose acceptance window closed
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Callback-Signature header string true "HMAC signature"
// @Success      200 {object} dto.Response
// @Router       /webhooks/panels/expire [post]
func (h *WebhookHandler) ExpirePanel(c *gin.Context) {
	var req PanelCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if _, err := h.panelService.Expire(c.Request.Context(), req.PanelID); err != nil {
		h.absorbOrFail(c, err, "panel expiry", req.PanelID.String())
		return
	}

	h.Success(c, gin.H{"processed": true})
}

// WarnLateOrder godoc
// @ID           warnLateOrderCallback
// @Summary      Nudge the supplier about an order past its delivery window
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Callback-Signature header string true "HMAC signature"
// @Success      200 {object} dto.Response
// @Router       /webhooks/orders/warn-late [post]
func (h *WebhookHandler) WarnLateOrder(c *gin.Context) {
	var req OrderCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.orderService.WarnLate(c.Request.Context(), req.OrderID); err != nil {
		h.absorbOrFail(c, err, "late-order warning", req.OrderID.String())
		return
	}

	h.Success(c, gin.H{"processed": true})
}

// WarnLatePhoto godoc
// @ID           warnLatePhotoCallback
// @Summary      Nudge the supplier about a missing delivery photo
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Callback-Signature header string true "HMAC signature"
// @Success      200 {object} dto.Response
// @Router       /webhooks/panels/warn-late-photo [post]
func (h *WebhookHandler) WarnLatePhoto(c *gin.Context) {
	var req PanelCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.panelService.WarnLatePhoto(c.Request.Context(), req.PanelID); err != nil {
		h.absorbOrFail(c, err, "late-photo warning", req.PanelID.String())
		return
	}

	h.Success(c, gin.H{"processed": true})
}

// SecondAttempt godoc
// @ID           secondAttemptCallback
// @Summary      Send the second contact attempt to a lead
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Callback-Signature header string true "HMAC signature"
// @Success      200 {object} dto.Response
// @Router       /webhooks/conversions/second-attempt [post]
func (h *WebhookHandler) SecondAttempt(c *gin.Context) {
	var req FormCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.conversionService.HandleSecondAttempt(c.Request.Context(), req.FormID); err != nil {
		h.absorbOrFail(c, err, "second attempt", req.FormID.String())
		return
	}

	h.Success(c, gin.H{"processed": true})
}

// Feedback godoc
// @ID           feedbackCallback
// @Summary      Send the feedback request to a lead
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Callback-Signature header string true "HMAC signature"
// @Success      200 {object} dto.Response
// @Router       /webhooks/conversions/feedback [post]
func (h *WebhookHandler) Feedback(c *gin.Context) {
	var req FormCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.conversionService.HandleFeedback(c.Request.Context(), req.FormID); err != nil {
		h.absorbOrFail(c, err, "feedback request", req.FormID.String())
		return
	}

	h.Success(c, gin.H{"processed": true})
}

// MessageReply godoc
// @ID           messageReplyCallback
// @Summary      Record an inbound reply from the messaging provider
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Callback-Signature header string true "HMAC signature"
// @Success      200 {object} dto.Response
// @Router       /webhooks/messages/reply [post]
func (h *WebhookHandler) MessageReply(c *gin.Context) {
	var req MessageReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	at := req.At
	if at.IsZero() {
		at = time.Now()
	}

	if err := h.conversionService.RecordFeedbackReply(c.Request.Context(), req.ExternalID, req.Text, at); err != nil {
		h.absorbOrFail(c, err, "message reply", req.ExternalID)
		return
	}

	h.Success(c, gin.H{"processed": true})
}

// absorbOrFail acknowledges callbacks whose target already moved on and
// surfaces everything else for the scheduler to retry.
func (h *WebhookHandler) absorbOrFail(c *gin.Context, err error, event, id string) {
	if errors.Is(err, shared.ErrAlreadyProcessed) || errors.Is(err, shared.ErrNotFound) ||
		errors.Is(err, shared.ErrInvalidState) {
		h.logger.Info("callback absorbed",
			zap.String("event", event),
			zap.String("id", id),
			zap.Error(err))
		h.Success(c, gin.H{"absorbed": true})
		return
	}

	h.logger.Error("callback failed",
		zap.String("event", event),
		zap.String("id", id),
		zap.Error(err))
	h.HandleDomainError(c, err)
}
