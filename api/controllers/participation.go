package controllers

import (
	"net/http"

	"github.com/Utiqano/football/api/models"
	"github.com/Utiqano/football/api/transport"
	"github.com/Utiqano/football/auth"
	"github.com/Utiqano/football/engine"
	"github.com/Utiqano/football/logging"
	"github.com/Utiqano/football/week"
	"github.com/gin-gonic/gin"
)

type ParticipationController struct {
	engine   *engine.Engine
	provider auth.Provider
}

func NewParticipationController(e *engine.Engine, provider auth.Provider) *ParticipationController {
	return &ParticipationController{engine: e, provider: provider}
}

func (c *ParticipationController) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/week", c.getWeek)
	router.GET("/api/participants", c.getParticipants)

	group := router.Group("/api/participation", transport.SessionAuthMiddleware(c.provider))
	group.GET("", c.getMyAnswer)
	group.PUT("", c.submitAnswer)
}

// getWeek godoc
// @Summary Current match week and display label
// @Tags week
// @Produce json
// @Success 200 {object} models.WeekResponse
// @Router /api/week [get]
func (c *ParticipationController) getWeek(g *gin.Context) {
	thursday := c.engine.Week()
	g.JSON(http.StatusOK, &models.WeekResponse{
		WeekDate: week.Key(thursday),
		Label:    week.Label(thursday),
	})
}

// getMyAnswer godoc
// @Summary The caller's attendance answer for this week
// @Tags participation
// @Produce json
// @Success 200 {object} models.AnswerResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/participation [get]
func (c *ParticipationController) getMyAnswer(g *gin.Context) {
	session := transport.SessionFromContext(g)

	answer, err := c.engine.MyAnswer(g.Request.Context(), session)
	if err != nil {
		logging.Log.Errorf("ATTEND: failed to read answer: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not read answer"})
		return
	}

	g.JSON(http.StatusOK, &models.AnswerResponse{
		WeekDate: c.engine.WeekKey(),
		Answer:   answer.String(),
	})
}

// submitAnswer godoc
// @Summary Submit or change the attendance answer for this week
// @Tags participation
// @Accept json
// @Produce json
// @Param answer body models.SubmitAnswerRequest true "Answer"
// @Success 200 {object} models.SubmitAnswerResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse "Store unavailable"
// @Router /api/participation [put]
func (c *ParticipationController) submitAnswer(g *gin.Context) {
	session := transport.SessionFromContext(g)

	var req models.SubmitAnswerRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Participating == nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request, missing participating"})
		return
	}

	celebrating, err := c.engine.SubmitAnswer(g.Request.Context(), session, *req.Participating)
	if err != nil {
		logging.Log.Errorf("ATTEND: failed to submit answer: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save answer"})
		return
	}

	answer := engine.No
	if *req.Participating {
		answer = engine.Yes
	}
	g.JSON(http.StatusOK, &models.SubmitAnswerResponse{
		WeekDate:    c.engine.WeekKey(),
		Answer:      answer.String(),
		Celebrating: celebrating,
	})
}

// getParticipants godoc
// @Summary Confirmed participants for this week
// @Tags participation
// @Produce json
// @Success 200 {object} models.ParticipantsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/participants [get]
func (c *ParticipationController) getParticipants(g *gin.Context) {
	participants, err := c.engine.Participants(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ATTEND: failed to load participants: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load participants"})
		return
	}

	g.JSON(http.StatusOK, &models.ParticipantsResponse{
		WeekDate:     c.engine.WeekKey(),
		Count:        len(participants),
		Participants: participants,
	})
}
