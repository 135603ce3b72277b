package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appcompliance "github.com/worksuite/backend/internal/application/compliance"
	"github.com/worksuite/backend/internal/interfaces/http/dto"
)

// FieldDefinitionHandler handles custom field definition API endpoints
type FieldDefinitionHandler struct {
	BaseHandler
	fieldService *appcompliance.FieldDefinitionService
}

// NewFieldDefinitionHandler creates a new FieldDefinitionHandler
func NewFieldDefinitionHandler(fieldService *appcompliance.FieldDefinitionService) *FieldDefinitionHandler {
	return &FieldDefinitionHandler{
		fieldService: fieldService,
	}
}

// Register handles POST /field-definitions
func (h *FieldDefinitionHandler) Register(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req appcompliance.RegisterFieldDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.fieldService.Register(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get handles GET /field-definitions/:id
func (h *FieldDefinitionHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid field definition ID")
		return
	}
	defID := uuid.MustParse(uri.ID)

	resp, err := h.fieldService.GetByID(c.Request.Context(), tenantID, defID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /field-definitions
func (h *FieldDefinitionHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	resp, err := h.fieldService.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListApplicable handles GET /field-definitions/applicable?context=...
// It returns the fields that apply to the given context, in display order.
func (h *FieldDefinitionHandler) ListApplicable(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	rawContext := c.Query("context")
	if rawContext == "" {
		h.BadRequest(c, "context query parameter is required")
		return
	}

	resp, err := h.fieldService.ListApplicable(c.Request.Context(), tenantID, rawContext)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update handles PUT /field-definitions/:id
func (h *FieldDefinitionHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid field definition ID")
		return
	}
	defID := uuid.MustParse(uri.ID)

	var req appcompliance.UpdateFieldDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.fieldService.Update(c.Request.Context(), tenantID, defID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Deactivate handles DELETE /field-definitions/:id. Definitions are
// deactivated rather than removed so historical values stay readable.
func (h *FieldDefinitionHandler) Deactivate(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid field definition ID")
		return
	}
	defID := uuid.MustParse(uri.ID)

	if err := h.fieldService.Deactivate(c.Request.Context(), tenantID, defID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateGroup handles POST /field-groups
func (h *FieldDefinitionHandler) CreateGroup(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req appcompliance.CreateFieldGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.fieldService.CreateGroup(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListGroups handles GET /field-groups
func (h *FieldDefinitionHandler) ListGroups(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	resp, err := h.fieldService.ListGroups(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}
