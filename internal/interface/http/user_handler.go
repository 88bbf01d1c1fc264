package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/product-market-api/internal/application"
	"github.com/oksasatya/product-market-api/internal/interface/middleware"
	"github.com/oksasatya/product-market-api/pkg/response"
	"github.com/oksasatya/product-market-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Register POST /user
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
		return
	}

	_, token, err := h.Svc.Register(application.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error(c, http.StatusBadRequest, "Email is already in use.", nil)
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Error(c, http.StatusInternalServerError, "Error occurred while adding user", err.Error())
		return
	}

	response.SuccessWithToken(c, http.StatusOK, "User added successfully", token)
}

// Login POST /login
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
		return
	}

	_, token, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found", nil)
		case errors.Is(err, application.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
		default:
			h.Logger.WithError(err).Error("login failed")
			response.Error(c, http.StatusInternalServerError, "An error occurred while logging in.", err.Error())
		}
		return
	}

	response.SuccessWithToken(c, http.StatusOK, "Login successful", token)
}

// GetMe GET /user — the caller's own record, resolved from the token subject.
func (h *UserHandler) GetMe(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	u, err := h.Svc.GetByEmail(identity.Email)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found", nil)
			return
		}
		h.Logger.WithError(err).Error("fetch user failed")
		response.Error(c, http.StatusInternalServerError, "An error occurred while fetching the user.", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "User found.", u)
}

// UpdateMe PUT /user
func (h *UserHandler) UpdateMe(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.UpdateProfile(identity.Email, application.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found", nil)
			return
		}
		h.Logger.WithError(err).Error("update user failed")
		response.Error(c, http.StatusInternalServerError, "An error occurred while updating the user.", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "User updated successfully.", u)
}

// DeleteMe DELETE /user
func (h *UserHandler) DeleteMe(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	if err := h.Svc.Delete(identity.Email); err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete user failed")
		response.Error(c, http.StatusInternalServerError, "An error occurred while deleting the user.", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "User deleted successfully.", nil)
}

// ListUsers GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers()
	if err != nil {
		h.Logger.WithError(err).Error("list users failed")
		response.Error(c, http.StatusInternalServerError, "An error occurred while fetching users.", err.Error())
		return
	}

	if len(users) == 0 {
		response.Error(c, http.StatusNotFound, "No users Found", []any{})
		return
	}

	response.Success(c, http.StatusOK, "All users are available here.", users)
}
