package handler

import (
	"github.com/gin-gonic/gin"
	appclient "github.com/worksuite/backend/internal/application/client"
)

// DormancyHandler handles dormancy scan API endpoints
type DormancyHandler struct {
	BaseHandler
	dormancyService *appclient.DormancyService
}

// NewDormancyHandler creates a new DormancyHandler
func NewDormancyHandler(dormancyService *appclient.DormancyService) *DormancyHandler {
	return &DormancyHandler{
		dormancyService: dormancyService,
	}
}

// Scan handles POST /customers/dormancy-scan. It reports every ACTIVE
// customer whose last activity is older than the threshold. Nothing is
// transitioned here; callers follow up with explicit transitions.
func (h *DormancyHandler) Scan(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req appclient.DormancyScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.dormancyService.Scan(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}
