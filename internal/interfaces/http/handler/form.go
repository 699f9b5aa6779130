package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	conversionapp "github.com/petalia/backend/internal/application/conversion"
	"github.com/petalia/backend/internal/domain/conversion"
)

// FormHandler handles lead form endpoints. Creation is public, the website
// posts straight into it; everything else sits behind the back-office login.
type FormHandler struct {
	BaseHandler
	conversionService *conversionapp.Service
	logger            *zap.Logger
}

// NewFormHandler creates a new FormHandler
func NewFormHandler(conversionService *conversionapp.Service, logger *zap.Logger) *FormHandler {
	return &FormHandler{conversionService: conversionService, logger: logger}
}

// CreateFormHTTPRequest registers a lead from the public contact form
type CreateFormHTTPRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Phone string `json:"phone" binding:"required,max=30"`
	Email string `json:"email" binding:"omitempty,email"`
}

// UpdateFormStatusRequest moves a lead through the funnel
type UpdateFormStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=IN_CONTACT CONVERTED CANCELLED"`
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// Create godoc
// @ID           createForm
// @Summary      Register a lead from the contact form
// @Description  Saves the lead and kicks off the welcome message flow. A failure to start the flow does not fail the submission.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        request body CreateFormHTTPRequest true "Lead data"
// @Success      201 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /forms [post]
func (h *FormHandler) Create(c *gin.Context) {
	var req CreateFormHTTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Nome e telefone são obrigatórios")
		return
	}

	resp, err := h.conversionService.CreateForm(c.Request.Context(), conversionapp.CreateFormRequest{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List godoc
// @ID           listForms
// @Summary      List leads
// @Tags         forms
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        search query string false "Search by name"
// @Param        status query string false "Filter by status" Enums(NOT_CONVERTED, IN_CONTACT, CONVERTED, CANCELLED)
// @Param        phone query string false "Filter by phone"
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /forms [get]
func (h *FormHandler) List(c *gin.Context) {
	req, err := bindListRequest(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := toFilter(req)
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if phone := c.Query("phone"); phone != "" {
		filter.Filters["phone"] = phone
	}

	forms, total, err := h.conversionService.ListForms(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, forms, total, filter.Page, filter.PageSize)
}

// GetByID godoc
// @ID           getFormById
// @Summary      Get a lead with its engagement history
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /forms/{id} [get]
func (h *FormHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de formulário inválido")
		return
	}

	resp, err := h.conversionService.GetForm(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// UpdateStatus godoc
// @ID           updateFormStatus
// @Summary      Move a lead through the funnel
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID" format(uuid)
// @Param        request body UpdateFormStatusRequest true "New status"
// @Success      200 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /forms/{id}/status [put]
func (h *FormHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador de formulário inválido")
		return
	}

	var req UpdateFormStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.conversionService.UpdateFormStatus(
		c.Request.Context(), id, conversion.FormStatus(req.Status), req.Reason)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}
