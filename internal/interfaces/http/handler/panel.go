package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	identityapp "github.com/petalia/backend/internal/application/identity"
	orderingapp "github.com/petalia/backend/internal/application/ordering"
)

// PanelHandler handles supplier panel endpoints: the back-office side that
// offers orders to suppliers, and the link-scoped side suppliers act on.
type PanelHandler struct {
	BaseHandler
	panelService *orderingapp.PanelService
	authService  *identityapp.AuthService
}

// NewPanelHandler creates a new PanelHandler
func NewPanelHandler(panelService *orderingapp.PanelService, authService *identityapp.AuthService) *PanelHandler {
	return &PanelHandler{panelService: panelService, authService: authService}
}

// CreatePanelRequest offers an order to a supplier
type CreatePanelRequest struct {
	OrderID    uuid.UUID       `json:"order_id" binding:"required"`
	SupplierID uuid.UUID       `json:"supplier_id" binding:"required"`
	Freight    decimal.Decimal `json:"freight"`
}

// AdminCancelRequest cancels a panel on the back-office side
type AdminCancelRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// ConfirmDeliveryRequest records who received the flowers
type ConfirmDeliveryRequest struct {
	ReceiverName string `json:"receiver_name" binding:"required"`
}

// SetCostRequest defines the supplier's cost for the panel
type SetCostRequest struct {
	Cost decimal.Decimal `json:"cost" binding:"required"`
}

// SetPhotoRequest records the delivery photo's object key
type SetPhotoRequest struct {
	PhotoKey string `json:"photo_key" binding:"required"`
}

// Create godoc
// @ID           createPanel
// @Summary      Offer an order to a supplier
// @Tags         panels
// @Accept       json
// @Produce      json
// @Param        request body CreatePanelRequest true "Panel data"
// @Success      201 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /panels [post]
func (h *PanelHandler) Create(c *gin.Context) {
	var req CreatePanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.panelService.Create(c.Request.Context(), orderingapp.CreatePanelRequest{
		OrderID:    req.OrderID,
		SupplierID: req.SupplierID,
		Freight:    req.Freight,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID godoc
// @ID           getPanelById
// @Summary      Get panel by ID
// @Tags         panels
// @Produce      json
// @Param        id path string true "Panel ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /panels/{id} [get]
func (h *PanelHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de painel inválido")
		return
	}

	resp, err := h.panelService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// IssueLink godoc
// @ID           issuePanelLink
// @Summary      Mint the panel-scoped link shared with the supplier
// @Tags         panels
// @Produce      json
// @Param        id path string true "Panel ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /panels/{id}/link [post]
func (h *PanelHandler) IssueLink(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de painel inválido")
		return
	}

	panel, err := h.panelService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	resp, err := h.authService.IssuePanelLink(c.Request.Context(), panel.ID, panel.SupplierID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Approve godoc
// @ID           approvePanel
// @Summary      Supplier accepts the order
// @Description  Guarded transition; a panel that expired or was cancelled in the meantime answers 409.
// @Tags         panel-actions
// @Produce      json
// @Param        id path string true "Panel ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /panel/{id}/approve [post]
func (h *PanelHandler) Approve(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de painel inválido")
		return
	}

	resp, err := h.panelService.Approve(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// CancelBySupplier godoc
// @ID           cancelPanelBySupplier
// @Summary      Supplier declines the order
// @Tags         panel-actions
// @Produce      json
// @Param        id path string true "Panel ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /panel/{id}/cancel [post]
func (h *PanelHandler) CancelBySupplier(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de painel inválido")
		return
	}

	resp, err := h.panelService.CancelBySupplier(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// CancelByAdmin godoc
// @ID           cancelPanelByAdmin
// @Summary      Back office cancels a confirmed panel
// @Tags         panels
// @Accept       json
// @Produce      json
// @Param        id path string true "Panel ID" format(uuid)
// @Param        request body AdminCancelRequest true "Cancellation reason"
// @Success      200 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /panels/{id}/cancel [post]
func (h *PanelHandler) CancelByAdmin(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de painel inválido")
		return
	}

	var req AdminCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Motivo do cancelamento é obrigatório")
		return
	}

	resp, err := h.panelService.CancelByAdmin(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// ConfirmDelivery godoc
// @ID           confirmPanelDelivery
// @Summary      Supplier records the handover
// @Tags         panel-actions
// @Accept       json
// @Produce      json
// @Param        id path string true "Panel ID" format(uuid)
// @Param        request body ConfirmDeliveryRequest true "Receiver name"
// @Success      200 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /panel/{id}/confirm-delivery [post]
func (h *PanelHandler) ConfirmDelivery(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de painel inválido")
		return
	}

	var req ConfirmDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Nome de quem recebeu é obrigatório")
		return
	}

	resp, err := h.panelService.ConfirmDelivery(c.Request.Context(), id, req.ReceiverName)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// SetCost godoc
// @ID           setPanelCost
// @Summary      Define the supplier's cost for the panel
// @Tags         panels
// @Accept       json
// @Produce      json
// @Param        id path string true "Panel ID" format(uuid)
// @Param        request body SetCostRequest true "Cost"
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /panels/{id}/cost [put]
func (h *PanelHandler) SetCost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de painel inválido")
		return
	}

	var req SetCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.panelService.SetCost(c.Request.Context(), id, req.Cost)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// SetPhoto godoc
// @ID           setPanelPhoto
// @Summary      Record the delivery photo's object key
// @Tags         panel-actions
// @Accept       json
// @Produce      json
// @Param        id path string true "Panel ID" format(uuid)
// @Param        request body SetPhotoRequest true "Photo object key"
// @Success      204
// @Security     BearerAuth
// @Router       /panel/{id}/photo [put]
func (h *PanelHandler) SetPhoto(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de painel inválido")
		return
	}

	var req SetPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.panelService.SetPhoto(c.Request.Context(), id, req.PhotoKey); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete godoc
// @ID           deletePanel
// @Summary      Remove a panel
// @Tags         panels
// @Param        id path string true "Panel ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /panels/{id} [delete]
func (h *PanelHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de painel inválido")
		return
	}

	if err := h.panelService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
