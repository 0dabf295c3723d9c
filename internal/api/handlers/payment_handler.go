package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/worklane/worklane-go/internal/application"
	"github.com/worklane/worklane-go/internal/domain/payment"
	"github.com/worklane/worklane-go/pkg/response"
)

type PaymentHandler struct {
	svc *application.PaymentService
}

func NewPaymentHandler(svc *application.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// FundMilestone creates a payment and moves the money into escrow.
func (h *PaymentHandler) FundMilestone(c *gin.Context) {
	var input payment.FundMilestoneDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	p, err := h.svc.FundMilestone(c, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrContractNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Contract not found"})
		case errors.Is(err, application.ErrMilestoneNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Milestone not found"})
		case errors.Is(err, application.ErrContractNotActive):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.svc.GetPayment(c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Payment not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *PaymentHandler) ListByContract(c *gin.Context) {
	payments, err := h.svc.ListByContract(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// Release moves an escrowed payment to completed.
func (h *PaymentHandler) Release(c *gin.Context) {
	h.transition(c, h.svc.Release)
}

// Fail marks a payment as failed.
func (h *PaymentHandler) Fail(c *gin.Context) {
	h.transition(c, h.svc.Fail)
}

// Refund returns escrowed or completed funds to the client.
func (h *PaymentHandler) Refund(c *gin.Context) {
	h.transition(c, h.svc.Refund)
}

func (h *PaymentHandler) transition(c *gin.Context, fn func(*gin.Context, string) (*payment.Payment, error)) {
	p, err := fn(c, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Payment not found"})
		case errors.Is(err, payment.ErrInvalidTransition):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, p)
}
