package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/worklane/worklane-go/internal/application"
	"github.com/worklane/worklane-go/internal/config"
	"github.com/worklane/worklane-go/internal/domain/user"
	"github.com/worklane/worklane-go/pkg/response"
	"github.com/worklane/worklane-go/pkg/utils"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register creates a client or freelancer account.
func (h *UserHandler) Register(c *gin.Context) {
	var input user.RegisterDTO

	if err := c.ShouldBind(&input); err != nil {
		// Try to produce friendly validation messages for the frontend
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			msgs := make([]string, 0, len(verr))

			labels := map[string]string{
				"Username": "username",
				"Password": "password",
				"Email":    "email",
				"FullName": "full name",
				"Role":     "role",
			}

			for _, fe := range verr {
				field := fe.StructField()
				lbl, ok := labels[field]
				if !ok {
					lbl = strings.ToLower(field)
				}

				var msg string
				switch fe.Tag() {
				case "required":
					msg = fmt.Sprintf("%s is required", lbl)
				case "min":
					msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
				case "max":
					msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
				case "email":
					msg = fmt.Sprintf("%s must be a valid email address", lbl)
				case "oneof":
					msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
				default:
					msg = fmt.Sprintf("%s is invalid", lbl)
				}
				msgs = append(msgs, msg)
			}

			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: strings.Join(msgs, "; ")})
			return
		}

		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	err := h.svc.Register(input)
	if err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, response.MessageResponse{Message: "User registered successfully"})
}

// Login checks credentials and issues a JWT in both the body and a cookie.
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginDTO

	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	usr, token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid username or password"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		token,
		3600,
		"/",
		"",
		config.IsProduction, // Secure only in production
		true,
	)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      usr.UID,
		Username: usr.Username,
		Role:     usr.Role,
	})
}

func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(
		"token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
	})
}

// Me returns the authenticated user's profile.
func (h *UserHandler) Me(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	usr, err := h.svc.FindUserByID(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		return
	}

	c.JSON(http.StatusOK, usr)
}

// UpdateMe updates the authenticated user's profile or password.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input user.UpdateUserDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	usr, err := h.svc.UpdateUser(uid, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		case errors.Is(err, application.ErrMissingOldPassword),
			errors.Is(err, application.ErrIncorrectPassword):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, usr)
}

// AuthStatusHandler reports whether the current token is valid.
func AuthStatusHandler(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"uid":      claims.UserID,
		"username": claims.Username,
		"role":     claims.Role,
	})
}
