package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appclient "github.com/worksuite/backend/internal/application/client"
	"github.com/worksuite/backend/internal/interfaces/http/dto"
)

// LifecycleHandler handles customer lifecycle API endpoints
type LifecycleHandler struct {
	BaseHandler
	lifecycleService *appclient.LifecycleService
}

// NewLifecycleHandler creates a new LifecycleHandler
func NewLifecycleHandler(lifecycleService *appclient.LifecycleService) *LifecycleHandler {
	return &LifecycleHandler{
		lifecycleService: lifecycleService,
	}
}

// Transition handles POST /customers/:id/transition.
// A transition blocked by the activation gate returns 422 with the
// prerequisite check attached, so callers can render the violations.
func (h *LifecycleHandler) Transition(c *gin.Context) {
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
		h.BadRequest(c, "Invalid customer ID")
		return
	}
	customerID := uuid.MustParse(uri.ID)

	var req appclient.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.lifecycleService.Transition(c.Request.Context(), tenantID, customerID, userID, getRole(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if result.Blocked {
		requestID := getRequestID(c)
		resp := dto.NewErrorResponseWithRequestID(
			dto.ErrCodePrerequisiteFailed,
			"Prerequisites not met for activation",
			requestID,
		)
		resp.Data = result
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}

	h.Success(c, result)
}

// History handles GET /customers/:id/transitions
func (h *LifecycleHandler) History(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}
	customerID := uuid.MustParse(uri.ID)

	history, err := h.lifecycleService.History(c.Request.Context(), tenantID, customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, history)
}
