package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velandev/website/internal/app/models/dto"
	"github.com/velandev/website/internal/middleware"
	"github.com/velandev/website/internal/pkg/auth"
)

// AdminController handles admin login, logout, and session probing
type AdminController struct {
	gate         *auth.SessionGate
	secureCookie bool
}

// NewAdminController creates a new AdminController. secureCookie should
// be true in release mode so the cookie is only sent over HTTPS.
func NewAdminController(gate *auth.SessionGate, secureCookie bool) *AdminController {
	return &AdminController{
		gate:         gate,
		secureCookie: secureCookie,
	}
}

// Login checks the admin password and issues the session cookie
// @Summary Admin login
// @Description Verifies the admin password and sets the admin_session cookie (HttpOnly, SameSite=Lax, 8h lifetime)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Admin password"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Session issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid password"
// @Failure 500 {object} dto.ErrorResponse "Admin login is not configured"
// @Router /admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	token, err := c.gate.CheckCredential(req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, token, int(c.gate.MaxAge().Seconds()))
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SessionResponse{Authenticated: true}))
}

// Logout clears the session cookie
// @Summary Admin logout
// @Description Clears the admin_session cookie
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Session cleared"
// @Router /admin/logout [post]
func (c *AdminController) Logout(ctx *gin.Context) {
	c.setSessionCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SessionResponse{Authenticated: false}))
}

// Session reports whether the presented cookie is a valid admin session
// @Summary Probe admin session
// @Description Reports whether the presented admin_session cookie is currently valid
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Session state"
// @Router /admin/session [get]
func (c *AdminController) Session(ctx *gin.Context) {
	token, err := ctx.Cookie(auth.SessionCookieName)
	authenticated := err == nil && c.gate.Authorize(token)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SessionResponse{Authenticated: authenticated}))
}

func (c *AdminController) setSessionCookie(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(auth.SessionCookieName, value, maxAge, "/", "", c.secureCookie, true)
}
