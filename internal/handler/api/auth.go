package api

import (
	"net/http"

	reqdto "tripdesk/internal/handler/dto/request"
	resdto "tripdesk/internal/handler/dto/response"
	"tripdesk/internal/handler/httperr"
	"tripdesk/internal/handler/middleware"
	"tripdesk/internal/pkg/config"
	"tripdesk/internal/pkg/cookie"
	"tripdesk/internal/pkg/errs"
	"tripdesk/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	sessionCfg   config.SessionConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		sessionCfg:   cfg.Session,
	}
}

// @Summary Login screen
// @Description Browser navigation target for the login form
// @Tags auth
// @Success 204 "Login screen available"
// @Success 303 "Already signed in; redirect to console home"
// @Router /loginPage [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// @Summary Operator login
// @Description Exchange credentials for a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 303 "Redirect to console home"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /loginPage [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Login is unavailable right now", nil)
		}
		return
	}

	cookie.SetSessionCookie(c, h.sessionCfg, result.SessionToken, h.sessionCfg.Duration)
	c.Redirect(http.StatusSeeOther, middleware.HomePath)
}

// @Summary Operator logout
// @Description Clear the session cookie
// @Tags auth
// @Success 303 "Redirect to login"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.sessionCfg)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// @Summary Current session
// @Description Session introspection for the console shell
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	email, ok := middleware.GetSessionEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no session in context"), "Not authenticated", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.SessionResponse{Email: email})
}
