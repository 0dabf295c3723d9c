package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/worklane/worklane-go/internal/application"
	"github.com/worklane/worklane-go/internal/repository"
)

type Handlers struct {
	User      *UserHandler
	Contract  *ContractHandler
	Payment   *PaymentHandler
	Dashboard *DashboardHandler
	Audit     *AuditHandler
	Feed      *FeedHandler
	Router    *gin.Engine
}

func New(svc *application.Services, repos *repository.Repos, router *gin.Engine) *Handlers {
	h := &Handlers{
		User:      NewUserHandler(svc.User),
		Contract:  NewContractHandler(svc.Contract),
		Payment:   NewPaymentHandler(svc.Payment),
		Dashboard: NewDashboardHandler(svc.Dashboard),
		Audit:     NewAuditHandler(svc.Audit),
		Feed:      NewFeedHandler(repos),
		Router:    router,
	}
	return h
}
