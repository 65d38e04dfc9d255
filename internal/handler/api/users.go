package api

import (
	"net/http"
	"strconv"

	reqdto "tripdesk/internal/handler/dto/request"
	"tripdesk/internal/handler/httperr"
	"tripdesk/internal/pkg/errs"
	"tripdesk/internal/usecase/commands"
	"tripdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userQueries  queries.UserQueries
	userCommands commands.UserCommands
}

func NewUserHandler(userQueries queries.UserQueries, userCommands commands.UserCommands) *UserHandler {
	return &UserHandler{
		userQueries:  userQueries,
		userCommands: userCommands,
	}
}

// @Summary List users
// @Description Index-paginated user table with pagination control
// @Tags users
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} queries.UserListPage
// @Failure 502 {object} httperr.Response
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := h.userQueries.ListPage(c.Request.Context(), page)
	if err != nil {
		abortGatewayError(c, err, "Failed to load users")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Toggle user status
// @Description Block or unblock a user, then return the refreshed page
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body reqdto.SetUserStatusRequest true "Desired status"
// @Success 200 {object} queries.UserListPage
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id}/status [post]
func (h *UserHandler) SetStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}

	var req reqdto.SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.userCommands.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		switch {
		case errs.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errs.Is(err, commands.ErrStatusUnchanged):
			httperr.AbortWithError(c, http.StatusConflict, err, "User already in the requested state", nil)
		default:
			abortGatewayError(c, err, "Failed to update user")
		}
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	// Mutation acknowledged; re-read so the table renders server state.
	result, err := h.userQueries.ListPage(c.Request.Context(), page)
	if err != nil {
		abortGatewayError(c, err, "Failed to reload users")
		return
	}
	c.JSON(http.StatusOK, result)
}
