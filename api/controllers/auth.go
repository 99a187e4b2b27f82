package controllers

import (
	"errors"
	"net/http"

	"github.com/Utiqano/football/api/models"
	"github.com/Utiqano/football/api/transport"
	"github.com/Utiqano/football/auth"
	"github.com/Utiqano/football/logging"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	provider auth.Provider
}

func NewAuthController(provider auth.Provider) *AuthController {
	return &AuthController{provider: provider}
}

func (c *AuthController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/auth")

	group.POST("/login", c.login)
	group.POST("/logout", transport.SessionAuthMiddleware(c.provider), c.logout)
	group.GET("/session", transport.SessionAuthMiddleware(c.provider), c.session)
}

// login godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/auth/login [post]
func (c *AuthController) login(g *gin.Context) {
	var req models.LoginRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request, missing email or password"})
		return
	}

	session, err := c.provider.SignInWithCredentials(g.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			g.JSON(http.StatusUnauthorized, &models.ErrorResponse{Error: err.Error()})
			return
		}
		logging.Log.Errorf("AUTH: sign-in failed: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not sign in"})
		return
	}

	g.JSON(http.StatusOK, &models.LoginResponse{
		Token:  session.Token,
		UserID: session.UserID,
		Email:  session.Email,
	})
}

// logout godoc
// @Summary Sign out and destroy the session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/auth/logout [post]
func (c *AuthController) logout(g *gin.Context) {
	session := transport.SessionFromContext(g)
	if session == nil {
		g.JSON(http.StatusUnauthorized, &models.ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := c.provider.SignOut(g.Request.Context(), session.Token); err != nil {
		logging.Log.Errorf("AUTH: sign-out failed: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not sign out"})
		return
	}
	g.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// session godoc
// @Summary Return the authenticated principal
// @Tags auth
// @Produce json
// @Success 200 {object} models.SessionResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/session [get]
func (c *AuthController) session(g *gin.Context) {
	session := transport.SessionFromContext(g)
	if session == nil {
		g.JSON(http.StatusUnauthorized, &models.ErrorResponse{Error: "unauthorized"})
		return
	}
	g.JSON(http.StatusOK, &models.SessionResponse{UserID: session.UserID, Email: session.Email})
}
