package arena

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListGamesPassesCursorAndKey(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/games/non-rating", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"hasMore":true,"next":"2020-07-18","games":[{"gameId":"g1"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	page, err := c.ListGames(context.Background(), "2020-07-19")
	require.NoError(t, err)

	assert.Equal(t, []string{"2020-07-19"}, gotQuery["before"])
	assert.Equal(t, []string{"secret"}, gotQuery["apiKey"])
	assert.True(t, page.HasMore)
	assert.Equal(t, "2020-07-18", page.Next)
	require.Len(t, page.Games, 1)
	assert.Equal(t, "g1", page.Games[0].GameID)
}

func TestListGamesFirstPageOmitsCursor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("before"))
		w.Write([]byte(`{"hasMore":false,"games":[]}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "secret").ListGames(context.Background(), "")
	require.NoError(t, err)
}

func TestGetReportsAuthFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "stale").ListSubmissions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestGetReportsMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"teams": nope`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "k").Scoreboard(context.Background())
	require.Error(t, err)
}

func TestStartNonRatingSendsBothSubmissions(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/games/non-rating/run", r.URL.Path)
		gotQuery = r.URL.Query()
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "k").StartNonRating(context.Background(), 12, 34)
	require.NoError(t, err)
	assert.Equal(t, []string{"12"}, gotQuery["attackerSubmissionId"])
	assert.Equal(t, []string{"34"}, gotQuery["defenderSubmissionId"])
}
