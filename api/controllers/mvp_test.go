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

func TestCastVoteEndpoint(t *testing.T) {
	server := setupTestServer(t)
	alice := server.createAndLogin(t, "alice@x.com")
	bob := server.createAndLogin(t, "bob@x.com")

	t.Run("Unhappy path - voting before answering yes", func(t *testing.T) {
		res := testutils.PerformRequest(server.router, http.MethodPut, "/api/mvp/vote",
			models.CastVoteRequest{MvpEmail: "bob@x.com"}, authHeaders(alice))
		assert.Equal(t, http.StatusConflict, res.Code)
	})

	server.submitAnswer(t, alice, true)
	server.submitAnswer(t, bob, true)

	t.Run("Happy path - cast and read back", func(t *testing.T) {
		res := testutils.PerformRequest(server.router, http.MethodPut, "/api/mvp/vote",
			models.CastVoteRequest{MvpEmail: "bob@x.com"}, authHeaders(alice))
		assert.Equal(t, http.StatusOK, res.Code)

		getRes := testutils.PerformRequest(server.router, http.MethodGet, "/api/mvp/vote", nil, authHeaders(alice))
		var vote models.MyVoteResponse
		require.NoError(t, json.Unmarshal(getRes.Body.Bytes(), &vote))
		assert.Equal(t, "bob@x.com", vote.MvpEmail)
	})

	t.Run("Happy path - recasting changes the vote", func(t *testing.T) {
		res := testutils.PerformRequest(server.router, http.MethodPut, "/api/mvp/vote",
			models.CastVoteRequest{MvpEmail: "alice@x.com"}, authHeaders(alice))
		assert.Equal(t, http.StatusOK, res.Code)

		resultsRes := testutils.PerformRequest(server.router, http.MethodGet, "/api/mvp/results", nil, nil)
		var results models.TallyResponse
		require.NoError(t, json.Unmarshal(resultsRes.Body.Bytes(), &results))
		require.Len(t, results.Results, 1, "The old candidate must not keep a vote")
		assert.Equal(t, "alice", results.Results[0].Name)
		assert.Equal(t, 1, results.Results[0].Votes)
	})

	t.Run("Unhappy path - missing candidate", func(t *testing.T) {
		res := testutils.PerformRequest(server.router, http.MethodPut, "/api/mvp/vote",
			models.CastVoteRequest{}, authHeaders(alice))
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}

func TestMvpResultsOrdering(t *testing.T) {
	server := setupTestServer(t)

	// bea 2 votes, ada 1 vote.
	voters := map[string]string{
		"v1@x.com": "bea@x.com",
		"v2@x.com": "bea@x.com",
		"v3@x.com": "ada@x.com",
	}
	for voter, candidate := range voters {
		token := server.createAndLogin(t, voter)
		server.submitAnswer(t, token, true)
		res := testutils.PerformRequest(server.router, http.MethodPut, "/api/mvp/vote",
			models.CastVoteRequest{MvpEmail: candidate}, authHeaders(token))
		require.Equal(t, http.StatusOK, res.Code)
	}

	res := testutils.PerformRequest(server.router, http.MethodGet, "/api/mvp/results", nil, nil)
	assert.Equal(t, http.StatusOK, res.Code)

	var results models.TallyResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &results))
	require.Len(t, results.Results, 2)
	assert.Equal(t, "bea", results.Results[0].Name)
	assert.Equal(t, 2, results.Results[0].Votes)
	assert.Equal(t, "ada", results.Results[1].Name)
	assert.Equal(t, 1, results.Results[1].Votes)
}

func TestMvpResultsEmptyWeek(t *testing.T) {
	server := setupTestServer(t)

	res := testutils.PerformRequest(server.router, http.MethodGet, "/api/mvp/results", nil, nil)
	assert.Equal(t, http.StatusOK, res.Code)

	var results models.TallyResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &results))
	assert.Empty(t, results.Results)
}
