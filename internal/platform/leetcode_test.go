package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ruziba3vich/edugrow_backend/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leetcodeTestClient(t *testing.T, statsBase, altBase, graphqlURL string) *LeetCodeClient {
	t.Helper()
	cfg := &config.Config{Platforms: &config.PlatformConfig{
		LeetCodeStatsAPIBase: statsBase,
		LeetCodeAltAPIBase:   altBase,
		LeetCodeGraphQLURL:   graphqlURL,
	}}
	return NewLeetCodeClient(cfg, testLogger(t))
}

func deadServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLeetCodeFetchFirstSourceWins(t *testing.T) {
	statsMirror := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/someone", r.URL.Path)
		w.Write([]byte(`{"status":"success","totalSolved":120,"easySolved":60,"mediumSolved":45,"hardSolved":15,"acceptanceRate":55.4,"ranking":98765}`))
	}))
	defer statsMirror.Close()

	altCalled := false
	altMirror := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		altCalled = true
	}))
	defer altMirror.Close()

	c := leetcodeTestClient(t, statsMirror.URL, altMirror.URL, deadServer(t).URL)
	stats, err := c.Fetch(context.Background(), "someone")
	require.NoError(t, err)

	assert.Equal(t, "someone", stats.Username)
	assert.Equal(t, 120, stats.TotalSolved)
	assert.Equal(t, 45, stats.MediumSolved)
	assert.Equal(t, 98765, stats.Ranking)
	assert.InDelta(t, 55.4, stats.AcceptanceRate, 0.0001)
	assert.Equal(t, "https://leetcode.com/u/someone", stats.ProfileURL)
	assert.False(t, altCalled, "secondary mirror must not be hit when the first source succeeds")
}

func TestLeetCodeFetchFallsThroughToAltMirror(t *testing.T) {
	statsMirror := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"user does not exist"}`))
	}))
	defer statsMirror.Close()

	altMirror := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/someone/solved", r.URL.Path)
		w.Write([]byte(`{"solvedProblem":77,"easySolved":40,"mediumSolved":30,"hardSolved":7}`))
	}))
	defer altMirror.Close()

	c := leetcodeTestClient(t, statsMirror.URL, altMirror.URL, deadServer(t).URL)
	stats, err := c.Fetch(context.Background(), "someone")
	require.NoError(t, err)

	assert.Equal(t, 77, stats.TotalSolved)
	assert.Equal(t, 7, stats.HardSolved)
	assert.Equal(t, 0, stats.Ranking)
	assert.Equal(t, 0.0, stats.AcceptanceRate)
}

func TestLeetCodeFetchGraphQLFallback(t *testing.T) {
	graphql := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"data":{"matchedUser":{
			"profile":{"ranking":150000,"reputation":12},
			"submitStatsGlobal":{"acSubmissionNum":[
				{"difficulty":"All","count":50},
				{"difficulty":"Easy","count":30},
				{"difficulty":"Medium","count":15},
				{"difficulty":"Hard","count":5}
			]},
			"userCalendar":{"streak":4,"totalActiveDays":40}
		}}}`))
	}))
	defer graphql.Close()

	c := leetcodeTestClient(t, deadServer(t).URL, deadServer(t).URL, graphql.URL)
	stats, err := c.Fetch(context.Background(), "someone")
	require.NoError(t, err)

	assert.Equal(t, 50, stats.TotalSolved)
	assert.Equal(t, 30, stats.EasySolved)
	assert.Equal(t, 15, stats.MediumSolved)
	assert.Equal(t, 5, stats.HardSolved)
	assert.Equal(t, 150000, stats.Ranking)
	assert.Equal(t, 12, stats.Reputation)
	assert.Equal(t, 4, stats.Streak)
	assert.Equal(t, 40, stats.TotalActiveDays)
	// round(50/100*100) = 50
	assert.Equal(t, 50.0, stats.AcceptanceRate)
}

func TestLeetCodeFetchAltMirrorEmptyBodyFallsThrough(t *testing.T) {
	altMirror := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// unknown users get a 200 with an empty object from this mirror
		w.Write([]byte(`{}`))
	}))
	defer altMirror.Close()

	graphql := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"matchedUser":{
			"profile":{"ranking":1},
			"submitStatsGlobal":{"acSubmissionNum":[{"difficulty":"All","count":0}]},
			"userCalendar":{"streak":0,"totalActiveDays":0}
		}}}`))
	}))
	defer graphql.Close()

	c := leetcodeTestClient(t, deadServer(t).URL, altMirror.URL, graphql.URL)
	stats, err := c.Fetch(context.Background(), "someone")
	require.NoError(t, err)

	// GraphQL confirmed the user exists with zero solves
	assert.Equal(t, 0, stats.TotalSolved)
	assert.Equal(t, 1, stats.Ranking)
	assert.Equal(t, 0.0, stats.AcceptanceRate)
}

func TestLeetCodeFetchAllSourcesFail(t *testing.T) {
	dead := deadServer(t)
	c := leetcodeTestClient(t, dead.URL, dead.URL, dead.URL)

	stats, err := c.Fetch(context.Background(), "someone")
	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestLeetCodeFetchGraphQLUnknownUser(t *testing.T) {
	graphql := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"matchedUser":null}}`))
	}))
	defer graphql.Close()

	c := leetcodeTestClient(t, deadServer(t).URL, deadServer(t).URL, graphql.URL)
	stats, err := c.Fetch(context.Background(), "nobody")
	assert.Error(t, err)
	assert.Nil(t, stats)
}
