package handlers

import (
	"errors"
	"net/http"

	"github.com/formforge/formforge/internal/application"
	"github.com/formforge/formforge/internal/domain/user"
	"github.com/formforge/formforge/pkg/response"
	"github.com/formforge/formforge/pkg/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *application.UserService
}

func NewUserHandler(service *application.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param user body user.CreateUserInput true "Credentials"
// @Success 201 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.RegisterUser(input); err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to register user"})
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "register success"})
}

// Login godoc
// @Summary Log in and receive a token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	usr, token, err := h.service.LoginUser(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      usr.ID,
		Username: usr.Username,
	})
}

// ChangePassword godoc
// @Summary Rotate the caller's password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body user.ChangePasswordInput true "Old and new password"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input user.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.ChangePassword(userID, input); err != nil {
		if errors.Is(err, application.ErrIncorrectPassword) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to change password"})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "password updated"})
}
