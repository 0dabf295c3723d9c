package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/worklane/worklane-go/internal/application"
	"github.com/worklane/worklane-go/internal/domain/contract"
	"github.com/worklane/worklane-go/pkg/response"
	"github.com/worklane/worklane-go/pkg/utils"
)

type ContractHandler struct {
	svc *application.ContractService
}

func NewContractHandler(svc *application.ContractService) *ContractHandler {
	return &ContractHandler{svc: svc}
}

// CreateContract opens a contract between the calling client and a
// freelancer. The contract starts in pending_acceptance.
func (h *ContractHandler) CreateContract(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input contract.CreateContractDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	ct, err := h.svc.CreateContract(c, claims.UserID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ct)
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	ct, err := h.svc.GetContract(c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrContractNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Contract not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ct)
}

// ListContracts returns the caller's contracts. Admins see everything.
func (h *ContractHandler) ListContracts(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	contracts, err := h.svc.ListContractsForUser(claims.UserID, claims.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, contracts)
}

// Transition moves a contract to a new lifecycle status.
func (h *ContractHandler) Transition(c *gin.Context) {
	to := contract.Status(c.Param("status"))
	if !to.Valid() {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Unknown contract status"})
		return
	}

	var input contract.TransitionDTO
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	ct, err := h.svc.Transition(c, c.Param("id"), to, input.Reason)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrContractNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Contract not found"})
		case errors.Is(err, contract.ErrInvalidTransition),
			errors.Is(err, contract.ErrMilestonesIncomplete):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ct)
}

// UpdateProgress sets reported progress on hourly contracts.
func (h *ContractHandler) UpdateProgress(c *gin.Context) {
	var input contract.UpdateProgressDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	ct, err := h.svc.UpdateProgress(c, c.Param("id"), input.Progress)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrContractNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Contract not found"})
		case errors.Is(err, application.ErrProgressDerived),
			errors.Is(err, application.ErrContractNotActive):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ct)
}

// TransitionMilestone moves one milestone through its workflow. When a
// milestone completes, the escrowed payment for it is released and the
// contract progress is recomputed.
func (h *ContractHandler) TransitionMilestone(c *gin.Context) {
	ct, err := h.svc.TransitionMilestone(c, c.Param("id"), c.Param("milestone_id"), c.Param("status"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrContractNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Contract not found"})
		case errors.Is(err, contract.ErrMilestoneNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Milestone not found"})
		case errors.Is(err, contract.ErrInvalidMilestoneTransition),
			errors.Is(err, application.ErrContractNotActive):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ct)
}
