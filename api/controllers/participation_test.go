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

func TestGetWeek(t *testing.T) {
	server := setupTestServer(t)

	res := testutils.PerformRequest(server.router, http.MethodGet, "/api/week", nil, nil)
	assert.Equal(t, http.StatusOK, res.Code)

	var weekRes models.WeekResponse
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &weekRes))
	assert.Equal(t, "2024-06-13", weekRes.WeekDate)
	assert.Equal(t, "Jeudi 13 juin", weekRes.Label)
}

func TestParticipationFlow(t *testing.T) {
	server := setupTestServer(t)
	token := server.createAndLogin(t, "alice@x.com")

	t.Run("Happy path - starts unanswered", func(t *testing.T) {
		res := testutils.PerformRequest(server.router, http.MethodGet, "/api/participation", nil, authHeaders(token))
		assert.Equal(t, http.StatusOK, res.Code)

		var answer models.AnswerResponse
		assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &answer))
		assert.Equal(t, "unanswered", answer.Answer)
	})

	t.Run("Happy path - yes answer celebrates and joins the list", func(t *testing.T) {
		participating := true
		res := testutils.PerformRequest(server.router, http.MethodPut, "/api/participation",
			models.SubmitAnswerRequest{Participating: &participating}, authHeaders(token))
		assert.Equal(t, http.StatusOK, res.Code)

		var submit models.SubmitAnswerResponse
		assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &submit))
		assert.Equal(t, "yes", submit.Answer)
		assert.True(t, submit.Celebrating, "A yes answer arms the celebration")

		listRes := testutils.PerformRequest(server.router, http.MethodGet, "/api/participants", nil, nil)
		assert.Equal(t, http.StatusOK, listRes.Code)

		var list models.ParticipantsResponse
		require.NoError(t, json.Unmarshal(listRes.Body.Bytes(), &list))
		assert.Equal(t, "2024-06-13", list.WeekDate)
		assert.Equal(t, 1, list.Count)
		require.Len(t, list.Participants, 1)
		assert.Equal(t, "alice", list.Participants[0].Name)
		assert.Equal(t, "alice@x.com", list.Participants[0].Email)
	})

	t.Run("Happy path - changing to no leaves the list", func(t *testing.T) {
		participating := false
		res := testutils.PerformRequest(server.router, http.MethodPut, "/api/participation",
			models.SubmitAnswerRequest{Participating: &participating}, authHeaders(token))
		assert.Equal(t, http.StatusOK, res.Code)

		var submit models.SubmitAnswerResponse
		assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &submit))
		assert.Equal(t, "no", submit.Answer)
		assert.False(t, submit.Celebrating)

		listRes := testutils.PerformRequest(server.router, http.MethodGet, "/api/participants", nil, nil)
		var list models.ParticipantsResponse
		require.NoError(t, json.Unmarshal(listRes.Body.Bytes(), &list))
		assert.Equal(t, 0, list.Count)
	})

	t.Run("Unhappy path - missing participating field", func(t *testing.T) {
		res := testutils.PerformRequest(server.router, http.MethodPut, "/api/participation",
			models.SubmitAnswerRequest{}, authHeaders(token))
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - no session", func(t *testing.T) {
		participating := true
		res := testutils.PerformRequest(server.router, http.MethodPut, "/api/participation",
			models.SubmitAnswerRequest{Participating: &participating}, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})
}

func TestSubmitAnswerStoreFailure(t *testing.T) {
	server := setupTestServer(t)
	token := server.createAndLogin(t, "alice@x.com")
	server.submitAnswer(t, token, true)

	server.participation.SetFail(true)
	participating := false
	res := testutils.PerformRequest(server.router, http.MethodPut, "/api/participation",
		models.SubmitAnswerRequest{Participating: &participating}, authHeaders(token))
	assert.Equal(t, http.StatusInternalServerError, res.Code)

	server.participation.SetFail(false)
	getRes := testutils.PerformRequest(server.router, http.MethodGet, "/api/participation", nil, authHeaders(token))
	var answer models.AnswerResponse
	require.NoError(t, json.Unmarshal(getRes.Body.Bytes(), &answer))
	assert.Equal(t, "yes", answer.Answer, "The prior answer stays authoritative after a failed write")
}
