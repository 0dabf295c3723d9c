package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/worklane/worklane-go/internal/api/handlers"
	"github.com/worklane/worklane-go/internal/api/middleware"
	"github.com/worklane/worklane-go/internal/application"
	"github.com/worklane/worklane-go/internal/cron"
	"github.com/worklane/worklane-go/internal/repository"
	"github.com/worklane/worklane-go/pkg/finance"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rates finance.RateTable) {
	// init
	repos_instance := repository.NewRepositories(db)
	services_instance := application.New(repos_instance, rates)
	handlers_instance := handlers.New(services_instance, repos_instance, r)
	authMiddleware := middleware.NewAuth(repos_instance)

	// Start background tasks
	cron.StartCleanupTask(services_instance.Audit)

	// Token status check endpoint (JWT middleware, no role check)
	r.GET("/auth/status", middleware.JWTAuthMiddleware(), handlers.AuthStatusHandler)

	// setup
	r.POST("/register", handlers_instance.User.Register)
	r.POST("/login", handlers_instance.User.Login)
	r.POST("/logout", handlers_instance.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/contracts", handlers_instance.Feed.StreamContracts)

		users := auth.Group("/users")
		{
			users.GET("/me", handlers_instance.User.Me)
			users.PUT("/me", handlers_instance.User.UpdateMe)
		}

		contracts := auth.Group("/contracts")
		{
			contracts.GET("", handlers_instance.Contract.ListContracts)
			contracts.POST("", authMiddleware.Role("client"), handlers_instance.Contract.CreateContract)
			contracts.GET("/:id", authMiddleware.ContractParty(), handlers_instance.Contract.GetContract)
			contracts.PUT("/:id/status/:status", authMiddleware.ContractParty(), handlers_instance.Contract.Transition)
			contracts.PUT("/:id/progress", authMiddleware.ContractParty(), handlers_instance.Contract.UpdateProgress)
			contracts.PUT("/:id/milestones/:milestone_id/status/:status", authMiddleware.ContractParty(), handlers_instance.Contract.TransitionMilestone)
			contracts.GET("/:id/payments", authMiddleware.ContractParty(), handlers_instance.Payment.ListByContract)
		}

		payments := auth.Group("/payments")
		{
			payments.POST("/fund", authMiddleware.Role("client"), handlers_instance.Payment.FundMilestone)
			payments.GET("/:id", authMiddleware.PaymentParty(), handlers_instance.Payment.GetPayment)
			payments.PUT("/:id/release", authMiddleware.Role("client"), handlers_instance.Payment.Release)
			payments.PUT("/:id/fail", authMiddleware.Admin(), handlers_instance.Payment.Fail)
			payments.PUT("/:id/refund", authMiddleware.Role("client"), handlers_instance.Payment.Refund)
		}

		dashboard := auth.Group("/dashboard")
		{
			dashboard.GET("/client", authMiddleware.Role("client"), handlers_instance.Dashboard.ClientDashboard)
			dashboard.GET("/freelancer", authMiddleware.Role("freelancer"), handlers_instance.Dashboard.FreelancerDashboard)
			dashboard.GET("/payments", handlers_instance.Dashboard.PaymentHistory)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", authMiddleware.Admin(), handlers_instance.Audit.GetAuditLogs)
		}
	}
}
