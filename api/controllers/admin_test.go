package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	testutils "github.com/Utiqano/football/api/controllers/testing"
	"github.com/Utiqano/football/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	server := setupTestServer(t)

	t.Run("Happy path - user is created", func(t *testing.T) {
		res := testutils.PerformRequest(server.router, http.MethodPost, "/api/admin/users",
			models.CreateUserRequest{Email: "carol@x.com", Password: "s3cret"}, adminHeaders())

		assert.Equal(t, http.StatusOK, res.Code)

		var created models.CreateUserResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))
		assert.Equal(t, "carol@x.com", created.Email)
		assert.NotEmpty(t, created.UserID)
	})

	t.Run("Unhappy path - duplicate email", func(t *testing.T) {
		res := testutils.PerformRequest(server.router, http.MethodPost, "/api/admin/users",
			models.CreateUserRequest{Email: "carol@x.com", Password: "other"}, adminHeaders())

		assert.Equal(t, http.StatusConflict, res.Code)
	})

	t.Run("Unhappy path - wrong admin token", func(t *testing.T) {
		res := testutils.PerformRequest(server.router, http.MethodPost, "/api/admin/users",
			models.CreateUserRequest{Email: "dave@x.com", Password: "s3cret"},
			map[string]string{"x-admin-token": "nope"})

		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("Unhappy path - missing password", func(t *testing.T) {
		res := testutils.PerformRequest(server.router, http.MethodPost, "/api/admin/users",
			models.CreateUserRequest{Email: "dave@x.com"}, adminHeaders())

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}
