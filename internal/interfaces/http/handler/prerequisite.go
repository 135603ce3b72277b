package handler

import (
	"github.com/gin-gonic/gin"
	appcompliance "github.com/worksuite/backend/internal/application/compliance"
)

// PrerequisiteHandler handles prerequisite check API endpoints
type PrerequisiteHandler struct {
	BaseHandler
	prereqService *appcompliance.PrerequisiteService
}

// NewPrerequisiteHandler creates a new PrerequisiteHandler
func NewPrerequisiteHandler(prereqService *appcompliance.PrerequisiteService) *PrerequisiteHandler {
	return &PrerequisiteHandler{
		prereqService: prereqService,
	}
}

// Check handles POST /prerequisites/check. The response always carries
// the full violation list; a failed check is still a 200 because the
// check itself succeeded. Storage failures surface as 503 only for
// fail-closed contexts.
func (h *PrerequisiteHandler) Check(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req appcompliance.PrerequisiteCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.prereqService.Check(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}
