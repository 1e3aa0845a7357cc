package handlers

import (
	"net/http"

	"github.com/formforge/formforge/pkg/response"
	"github.com/formforge/formforge/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AuthStatusHandler reports whether the presented token is still valid.
func AuthStatusHandler(c *gin.Context) {
	username, err := utils.GetUserNameFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "username": username})
}
