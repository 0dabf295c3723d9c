package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/worklane/worklane-go/internal/api/middleware"
	"github.com/worklane/worklane-go/internal/api/routes"
	"github.com/worklane/worklane-go/pkg/finance"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r, db, finance.DefaultRates())
	return r
}
