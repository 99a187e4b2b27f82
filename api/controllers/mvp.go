package controllers

import (
	"errors"
	"net/http"

	"github.com/Utiqano/football/api/models"
	"github.com/Utiqano/football/api/transport"
	"github.com/Utiqano/football/auth"
	"github.com/Utiqano/football/engine"
	"github.com/Utiqano/football/logging"
	"github.com/gin-gonic/gin"
)

type MvpController struct {
	engine   *engine.Engine
	provider auth.Provider
}

func NewMvpController(e *engine.Engine, provider auth.Provider) *MvpController {
	return &MvpController{engine: e, provider: provider}
}

func (c *MvpController) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/mvp/results", c.getResults)

	group := router.Group("/api/mvp/vote", transport.SessionAuthMiddleware(c.provider))
	group.GET("", c.getMyVote)
	group.PUT("", c.castVote)
}

// getMyVote godoc
// @Summary The caller's MVP vote for this week
// @Tags mvp
// @Produce json
// @Success 200 {object} models.MyVoteResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/mvp/vote [get]
func (c *MvpController) getMyVote(g *gin.Context) {
	session := transport.SessionFromContext(g)

	vote, err := c.engine.MyVote(g.Request.Context(), session)
	if err != nil {
		logging.Log.Errorf("MVP: failed to read vote: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not read vote"})
		return
	}

	g.JSON(http.StatusOK, &models.MyVoteResponse{
		WeekDate: c.engine.WeekKey(),
		MvpEmail: vote,
	})
}

// castVote godoc
// @Summary Cast or change the MVP vote for this week
// @Tags mvp
// @Accept json
// @Produce json
// @Param vote body models.CastVoteRequest true "Vote"
// @Success 200 {object} models.MyVoteResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 401 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Caller is not participating this week"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/mvp/vote [put]
func (c *MvpController) castVote(g *gin.Context) {
	session := transport.SessionFromContext(g)

	var req models.CastVoteRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.MvpEmail == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request, missing mvp_email"})
		return
	}

	if err := c.engine.CastVote(g.Request.Context(), session, req.MvpEmail); err != nil {
		if errors.Is(err, engine.ErrNotParticipating) {
			g.JSON(http.StatusConflict, &models.ErrorResponse{Error: err.Error()})
			return
		}
		logging.Log.Errorf("MVP: failed to cast vote: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save vote"})
		return
	}

	g.JSON(http.StatusOK, &models.MyVoteResponse{
		WeekDate: c.engine.WeekKey(),
		MvpEmail: req.MvpEmail,
	})
}

// getResults godoc
// @Summary Ranked MVP tally for this week
// @Tags mvp
// @Produce json
// @Success 200 {object} models.TallyResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/mvp/results [get]
func (c *MvpController) getResults(g *gin.Context) {
	tally, err := c.engine.Tally(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("MVP: failed to compute tally: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not compute results"})
		return
	}

	g.JSON(http.StatusOK, &models.TallyResponse{
		WeekDate: c.engine.WeekKey(),
		Results:  tally,
	})
}
