package controllers

import (
	"io"
	"net/http"

	"github.com/Utiqano/football/api/transport"
	"github.com/Utiqano/football/auth"
	"github.com/Utiqano/football/engine"
	"github.com/Utiqano/football/logging"
	"github.com/Utiqano/football/notify"
	"github.com/gin-gonic/gin"
)

// DashboardController serves the combined four-view snapshot and its live
// SSE stream. Both go through the session's Refresher so a response never
// mixes views from different refresh cycles.
type DashboardController struct {
	sessions *engine.SessionContext
	hub      *notify.Hub
	provider auth.Provider
}

func NewDashboardController(sessions *engine.SessionContext, hub *notify.Hub, provider auth.Provider) *DashboardController {
	return &DashboardController{sessions: sessions, hub: hub, provider: provider}
}

func (c *DashboardController) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api", transport.SessionAuthMiddleware(c.provider))

	group.GET("/dashboard", c.getDashboard)
	group.GET("/events", c.streamEvents)
}

// getDashboard godoc
// @Summary Atomic snapshot of answer, participants, own vote and tally
// @Tags dashboard
// @Produce json
// @Success 200 {object} engine.Snapshot
// @Failure 401 {object} models.ErrorResponse
// @Router /api/dashboard [get]
func (c *DashboardController) getDashboard(g *gin.Context) {
	session := transport.SessionFromContext(g)

	// The caller may have just written; refresh synchronously so their
	// own acknowledged write is reflected.
	snapshot := c.sessions.Refresher(session).Refresh(g.Request.Context())
	g.JSON(http.StatusOK, snapshot)
}

// streamEvents godoc
// @Summary Live snapshot stream, one SSE event per change notification
// @Tags dashboard
// @Produce text/event-stream
// @Success 200 {object} engine.Snapshot
// @Failure 401 {object} models.ErrorResponse
// @Router /api/events [get]
func (c *DashboardController) streamEvents(g *gin.Context) {
	session := transport.SessionFromContext(g)
	refresher := c.sessions.Refresher(session)

	// Own subscription: the refresher's one belongs to its run loop.
	sub := c.hub.Subscribe()
	defer sub.Unsubscribe()
	logging.Log.Infof("EVENTS: stream opened for %s", session.Email)

	g.Writer.Header().Set("Cache-Control", "no-cache")
	g.SSEvent("snapshot", refresher.Refresh(g.Request.Context()))
	g.Writer.Flush()

	clientGone := g.Request.Context().Done()
	g.Stream(func(w io.Writer) bool {
		select {
		case _, ok := <-sub.C:
			if !ok {
				return false
			}
			g.SSEvent("snapshot", refresher.Refresh(g.Request.Context()))
			return true
		case <-clientGone:
			return false
		}
	})
	logging.Log.Infof("EVENTS: stream closed for %s", session.Email)
}
