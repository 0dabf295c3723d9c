package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/worklane/worklane-go/internal/application"
	"github.com/worklane/worklane-go/internal/config"
	"github.com/worklane/worklane-go/pkg/response"
	"github.com/worklane/worklane-go/pkg/utils"
)

type DashboardHandler struct {
	svc *application.DashboardService
}

func NewDashboardHandler(svc *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// reportingCurrency honors an explicit ?currency= override, falling
// back to the configured default.
func reportingCurrency(c *gin.Context) string {
	if cur := c.Query("currency"); cur != "" {
		return cur
	}
	return config.ReportingCurrency
}

// ClientDashboard returns the client's contracts with per-contract
// financial breakdowns and a spend rollup.
func (h *DashboardHandler) ClientDashboard(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.svc.ClientDashboard(claims.UserID, reportingCurrency(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// FreelancerDashboard returns the freelancer's contracts with an
// earned/escrowed/pending rollup.
func (h *DashboardHandler) FreelancerDashboard(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.svc.FreelancerDashboard(claims.UserID, reportingCurrency(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PaymentHistory lists every payment across the caller's contracts.
func (h *DashboardHandler) PaymentHistory(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	payments, err := h.svc.PaymentHistory(claims.UserID, claims.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}
