package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	testutils "github.com/Utiqano/football/api/controllers/testing"
	"github.com/Utiqano/football/api/models"
	"github.com/Utiqano/football/auth"
	"github.com/Utiqano/football/engine"
	"github.com/Utiqano/football/logging"
	"github.com/Utiqano/football/notify"
	"github.com/Utiqano/football/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router        *gin.Engine
	provider      *auth.StoreProvider
	engine        *engine.Engine
	sessions      *engine.SessionContext
	hub           *notify.Hub
	participation *storage.MemoryParticipationStorage
	votes         *storage.MemoryMvpVoteStorage
}

// setupTestServer wires the full controller stack against the in-memory
// store, with the clock pinned to Wednesday 2024-06-12 so the current
// week key is always 2024-06-13.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	logging.Log = logrus.New()
	gin.SetMode(gin.TestMode)
	t.Setenv("ADMIN_TOKEN", "secret")

	s := &testServer{
		participation: storage.NewMemoryParticipationStorage(),
		votes:         storage.NewMemoryMvpVoteStorage(),
		hub:           notify.NewHub(),
	}

	users := storage.NewMemoryUserStorage()
	s.provider = auth.NewStoreProvider(users, storage.NewMemorySessionStorage(), time.Hour)
	s.engine = engine.New(s.participation, s.votes, s.hub).WithClock(func() time.Time {
		return time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)
	})
	s.sessions = engine.NewSessionContext(s.engine, s.hub, s.provider)
	t.Cleanup(s.sessions.Close)

	s.router = gin.New()
	NewAuthController(s.provider).RegisterRoutes(s.router)
	NewParticipationController(s.engine, s.provider).RegisterRoutes(s.router)
	NewMvpController(s.engine, s.provider).RegisterRoutes(s.router)
	NewDashboardController(s.sessions, s.hub, s.provider).RegisterRoutes(s.router)
	NewAdminController(users).RegisterRoutes(s.router)

	return s
}

func adminHeaders() map[string]string {
	return map[string]string{"x-admin-token": "secret"}
}

func authHeaders(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// createAndLogin provisions an account through the admin endpoint and
// signs it in, returning the bearer token.
func (s *testServer) createAndLogin(t *testing.T, email string) string {
	t.Helper()

	res := testutils.PerformRequest(s.router, http.MethodPost, "/api/admin/users",
		models.CreateUserRequest{Email: email, Password: "pw-" + email}, adminHeaders())
	require.Equal(t, http.StatusOK, res.Code, "Expected user creation to succeed")

	res = testutils.PerformRequest(s.router, http.MethodPost, "/api/auth/login",
		models.LoginRequest{Email: email, Password: "pw-" + email}, nil)
	require.Equal(t, http.StatusOK, res.Code, "Expected login to succeed")

	var login models.LoginResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	return login.Token
}

func (s *testServer) submitAnswer(t *testing.T, token string, participating bool) {
	t.Helper()
	res := testutils.PerformRequest(s.router, http.MethodPut, "/api/participation",
		models.SubmitAnswerRequest{Participating: &participating}, authHeaders(token))
	require.Equal(t, http.StatusOK, res.Code, "Expected answer submission to succeed")
}
