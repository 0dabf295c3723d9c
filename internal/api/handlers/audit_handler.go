package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/worklane/worklane-go/internal/application"
	"github.com/worklane/worklane-go/pkg/response"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs returns recent audit entries, optionally scoped to one
// resource via ?resource_type= and ?resource_id=.
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	resourceType := c.Query("resource_type")
	resourceID := c.Query("resource_id")

	if resourceType != "" && resourceID != "" {
		logs, err := h.svc.ListLogsByResource(resourceType, resourceID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, logs)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	logs, err := h.svc.ListLogs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
