package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/worklane/worklane-go/internal/repository"
	"github.com/worklane/worklane-go/pkg/response"
	"github.com/worklane/worklane-go/pkg/types"
	"github.com/worklane/worklane-go/pkg/utils"
)

// Auth handles authorization middleware
type Auth struct {
	repos *repository.Repos
}

// NewAuth creates a new Auth middleware instance
func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// Admin allows only users with the admin role.
func (a *Auth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		if claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}

// Role allows only users whose role matches one of the given roles.
// Admins always pass.
func (a *Auth) Role(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		if claims.Role == "admin" {
			c.Next()
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}

// ContractParty allows only the client or freelancer on the contract
// named by the :id URL parameter. Admins always pass.
func (a *Auth) ContractParty() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			c.Abort()
			return
		}
		if claims.Role == "admin" {
			c.Next()
			return
		}

		contractID := c.Param("id")
		if contractID == "" {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Missing contract id"})
			c.Abort()
			return
		}

		ct, err := a.repos.Contract.GetContractByID(contractID)
		if err != nil {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "contract not found"})
			c.Abort()
			return
		}
		if ct.ClientID != claims.UserID && ct.FreelancerID != claims.UserID {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Permission denied for this contract"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// PaymentParty allows only the client or freelancer on the contract
// behind the payment named by the :id URL parameter. Admins always
// pass.
func (a *Auth) PaymentParty() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			c.Abort()
			return
		}
		if claims.Role == "admin" {
			c.Next()
			return
		}

		paymentID := c.Param("id")
		if paymentID == "" {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Missing payment id"})
			c.Abort()
			return
		}

		p, err := a.repos.Payment.GetPaymentByID(paymentID)
		if err != nil {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "payment not found"})
			c.Abort()
			return
		}
		ct, err := a.repos.Contract.GetContractByID(p.ContractID)
		if err != nil {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "contract not found"})
			c.Abort()
			return
		}
		if ct.ClientID != claims.UserID && ct.FreelancerID != claims.UserID {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Permission denied for this payment"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CORSMiddleware allows local and LAN frontend origins. WebSocket
// upgrade requests skip the CORS handler so the upgrader can do its
// own origin check.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost:") {
				return true
			}
			if strings.HasPrefix(origin, "http://127.0.0.1:") {
				return true
			}
			if strings.HasPrefix(origin, "http://192.168.") {
				return true
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	corsHandler := cors.New(config)
	return func(c *gin.Context) {
		upgrade := c.GetHeader("Upgrade")
		if strings.EqualFold(upgrade, "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
