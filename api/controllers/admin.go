package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Utiqano/football/api/models"
	"github.com/Utiqano/football/api/transport"
	"github.com/Utiqano/football/auth"
	"github.com/Utiqano/football/logging"
	"github.com/Utiqano/football/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminController creates accounts. There is no self-service sign-up: the
// organiser provisions users, matching the "ask the organiser" flow of
// the club.
type AdminController struct {
	usersStorage storage.UserStorage
}

func NewAdminController(s storage.UserStorage) *AdminController {
	return &AdminController{usersStorage: s}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/admin", transport.AdminAuthMiddleware())

	group.POST("/users", c.createUser)
}

// @Security AdminToken
// createUser godoc
// @Summary Create a user account
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.CreateUserRequest true "Create User Request"
// @Success 200 {object} models.CreateUserResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Email already registered"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/users [post]
func (c *AdminController) createUser(g *gin.Context) {
	var req models.CreateUserRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request, missing email or password"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to hash password: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create user"})
		return
	}

	user := &storage.User{
		Email:        req.Email,
		UserID:       uuid.NewString(),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := c.usersStorage.Create(g.Request.Context(), user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			g.JSON(http.StatusConflict, &models.ErrorResponse{Error: "email already registered"})
			return
		}
		logging.Log.Errorf("ADMIN: failed to store user: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create user"})
		return
	}

	logging.Log.Infof("ADMIN: created user %s", user.Email)
	g.JSON(http.StatusOK, &models.CreateUserResponse{
		UserID:    user.UserID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}
