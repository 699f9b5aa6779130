package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	partnerapp "github.com/petalia/backend/internal/application/partner"
)

// SupplierHandler handles supplier management endpoints
type SupplierHandler struct {
	BaseHandler
	supplierService *partnerapp.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService *partnerapp.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// SupplierRequest represents a request to create or update a supplier
type SupplierRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	JID   string `json:"jid" binding:"required"`
	Phone string `json:"phone" binding:"max=30"`
	City  string `json:"city" binding:"max=100"`
	Notes string `json:"notes" binding:"max=2000"`
}

// SetRatifiedRequest toggles the ratified flag
type SetRatifiedRequest struct {
	Ratified *bool `json:"ratified" binding:"required"`
}

// DisableSupplierRequest pauses a supplier until a given time
type DisableSupplierRequest struct {
	Until time.Time `json:"until" binding:"required"`
}

// Create godoc
// @ID           createSupplier
// @Summary      Register a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        request body SupplierRequest true "Supplier data"
// @Success      201 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /suppliers [post]
func (h *SupplierHandler) Create(c *gin.Context) {
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.supplierService.Create(c.Request.Context(), partnerapp.SupplierRequest{
		Name:  req.Name,
		JID:   req.JID,
		Phone: req.Phone,
		City:  req.City,
		Notes: req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List godoc
// @ID           listSuppliers
// @Summary      List suppliers
// @Tags         suppliers
// @Produce      json
// @Param        search query string false "Search term (name, city)"
// @Param        is_ratified query bool false "Filter by ratification"
// @Param        city query string false "Filter by city"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /suppliers [get]
func (h *SupplierHandler) List(c *gin.Context) {
	req, err := bindListRequest(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := toFilter(req)
	if ratified := c.Query("is_ratified"); ratified != "" {
		filter.Filters["is_ratified"] = ratified == "true"
	}
	if city := c.Query("city"); city != "" {
		filter.Filters["city"] = city
	}

	suppliers, total, err := h.supplierService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, suppliers, total, filter.Page, filter.PageSize)
}

// GetByID godoc
// @ID           getSupplierById
// @Summary      Get supplier by ID
// @Tags         suppliers
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de fornecedor inválido")
		return
	}

	resp, err := h.supplierService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update godoc
// @ID           updateSupplier
// @Summary      Update a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Param        request body SupplierRequest true "Supplier data"
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /suppliers/{id} [put]
func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de fornecedor inválido")
		return
	}

	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.supplierService.Update(c.Request.Context(), id, partnerapp.SupplierRequest{
		Name:  req.Name,
		JID:   req.JID,
		Phone: req.Phone,
		City:  req.City,
		Notes: req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// SetRatified godoc
// @ID           setSupplierRatified
// @Summary      Toggle a supplier's ratification
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Param        request body SetRatifiedRequest true "Ratified flag"
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /suppliers/{id}/ratified [put]
func (h *SupplierHandler) SetRatified(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de fornecedor inválido")
		return
	}

	var req SetRatifiedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.supplierService.SetRatified(c.Request.Context(), id, *req.Ratified)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Disable godoc
// @ID           disableSupplier
// @Summary      Pause a supplier until a given time
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Param        request body DisableSupplierRequest true "Pause deadline"
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /suppliers/{id}/disable [post]
func (h *SupplierHandler) Disable(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de fornecedor inválido")
		return
	}

	var req DisableSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.supplierService.Disable(c.Request.Context(), id, req.Until)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @ID           deleteSupplier
// @Summary      Remove a supplier
// @Tags         suppliers
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de fornecedor inválido")
		return
	}

	if err := h.supplierService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
