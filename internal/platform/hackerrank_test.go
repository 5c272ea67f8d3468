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

func hackerrankTestClient(t *testing.T, baseURL string) *HackerRankClient {
	t.Helper()
	cfg := &config.Config{Platforms: &config.PlatformConfig{HackerRankAPIBase: baseURL}}
	return NewHackerRankClient(cfg, testLogger(t))
}

func TestHackerRankFetchFullProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/hackers/someone/badges":
			w.Write([]byte(`{"models":[
				{"badge_name":"Problem Solving","stars":5},
				{"badge_name":"Gold Standard","stars":1},
				{"badge_name":"Python","stars":3},
				{"badge_name":"Sql","stars":1}
			]}`))
		case "/rest/hackers/someone/submission_histories":
			w.Write([]byte(`{"models":{"2026-08-01":3,"2026-08-02":"5","2026-08-03":2}}`))
		case "/rest/hackers/someone/certificates":
			w.Write([]byte(`{"models":[{"certificate_name":"Problem Solving (Basic)","status":"test_passed"}]}`))
		case "/rest/hackers/someone":
			w.Write([]byte(`{"model":{"name":"Someone","skills":["Algorithms","SQL"]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	stats, err := hackerrankTestClient(t, srv.URL).Fetch(context.Background(), "someone")
	require.NoError(t, err)
	require.NotNil(t, stats)

	assert.Equal(t, 4, stats.Badges)
	assert.Equal(t, 2, stats.GoldBadges) // 5 stars + name containing "gold"
	assert.Equal(t, 1, stats.SilverBadges)
	assert.Equal(t, 1, stats.BronzeBadges)
	assert.Equal(t, 10, stats.SolvedChallenges)
	assert.Equal(t, 1, stats.Certificates)
	assert.Equal(t, []string{"Algorithms", "SQL"}, stats.Skills)
	assert.Empty(t, stats.Error)
}

func TestHackerRankFetchTotalOutageDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	stats, err := hackerrankTestClient(t, srv.URL).Fetch(context.Background(), "someone")
	require.NoError(t, err, "total outage must degrade, not fail")
	require.NotNil(t, stats)

	assert.Equal(t, 0, stats.Badges)
	assert.Equal(t, 0, stats.Certificates)
	assert.Equal(t, 0, stats.SolvedChallenges)
	assert.Empty(t, stats.Skills)
	assert.NotEmpty(t, stats.Error)
}

func TestHackerRankFetchPartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/rest/hackers/someone/badges" {
			w.Write([]byte(`{"models":[{"badge_name":"Java","stars":2}]}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	stats, err := hackerrankTestClient(t, srv.URL).Fetch(context.Background(), "someone")
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Badges)
	assert.Equal(t, 1, stats.BronzeBadges)
	assert.Equal(t, 0, stats.Certificates)
	assert.Empty(t, stats.Error, "partial failure is not the degraded case")
}

func TestHackerRankFetchEmptyReference(t *testing.T) {
	stats, err := hackerrankTestClient(t, "http://127.0.0.1:0").Fetch(context.Background(), "")
	assert.Error(t, err)
	assert.Nil(t, stats)
}
