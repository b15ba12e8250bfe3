package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/padelhub/padel-booking-backend/internal/pkg/request"
	"github.com/padelhub/padel-booking-backend/internal/pkg/response"
	"github.com/padelhub/padel-booking-backend/internal/user"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

//
// GET /v1/users (admin only)
//

func (h *UserHandler) List(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	users, total, err := h.userService.List(c.Request.Context(), user.Filter{
		Page:     params.Page,
		PageSize: params.PageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	items := make([]UserResponse, len(users))
	for i, u := range users {
		items[i] = NewUserResponse(u)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, params.Page, params.PageSize, total))
}
