package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appclient "github.com/worksuite/backend/internal/application/client"
	"github.com/worksuite/backend/internal/interfaces/http/dto"
)

// DeletionHandler handles customer deletion request API endpoints
type DeletionHandler struct {
	BaseHandler
	deletionService *appclient.DeletionService
}

// NewDeletionHandler creates a new DeletionHandler
func NewDeletionHandler(deletionService *appclient.DeletionService) *DeletionHandler {
	return &DeletionHandler{
		deletionService: deletionService,
	}
}

// Request handles POST /deletion-requests. Opening a deletion request is
// restricted to owners and admins; a pending request for the same
// customer is returned instead of duplicated.
func (h *DeletionHandler) Request(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	var req appclient.RequestDeletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.deletionService.Request(c.Request.Context(), tenantID, userID, getRole(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get handles GET /deletion-requests/:id
func (h *DeletionHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid deletion request ID")
		return
	}
	requestID := uuid.MustParse(uri.ID)

	resp, err := h.deletionService.GetByID(c.Request.Context(), tenantID, requestID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Execute handles POST /deletion-requests/:id/execute. The confirmation
// in the body must match the customer's name byte for byte. Executing an
// already-executed request returns the stored summary unchanged.
func (h *DeletionHandler) Execute(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User identity required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid deletion request ID")
		return
	}
	requestID := uuid.MustParse(uri.ID)

	var req appclient.ExecuteDeletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.deletionService.Execute(c.Request.Context(), tenantID, userID, getRole(c), requestID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}
