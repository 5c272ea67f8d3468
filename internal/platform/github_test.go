package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ruziba3vich/edugrow_backend/internal/pkg/config"
	logger "github.com/ruziba3vich/prodonik_lgger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.NewLogger(filepath.Join(t.TempDir(), "test.log"))
	require.NoError(t, err)
	return l
}

func githubTestClient(t *testing.T, baseURL string) *GitHubClient {
	t.Helper()
	cfg := &config.Config{Platforms: &config.PlatformConfig{GitHubAPIBase: baseURL}}
	return NewGitHubClient(cfg, testLogger(t))
}

func TestGitHubFetchFullProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/octocat":
			w.Write([]byte(`{"login":"octocat","name":"The Octocat","public_repos":8,"followers":100,"following":9,"html_url":"https://github.com/octocat","created_at":"2011-01-25T18:44:36Z"}`))
		case "/users/octocat/repos":
			w.Write([]byte(`[
				{"stargazers_count":3,"language":"Go"},
				{"stargazers_count":2,"language":"Go"},
				{"stargazers_count":1,"language":"Python"},
				{"stargazers_count":0,"language":""}
			]`))
		case "/users/octocat/events/public":
			w.Write([]byte(`[
				{"type":"PushEvent","payload":{"size":3}},
				{"type":"WatchEvent","payload":{}},
				{"type":"PushEvent","payload":{"size":2}}
			]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	stats, err := githubTestClient(t, srv.URL).Fetch(context.Background(), "https://github.com/octocat")
	require.NoError(t, err)
	require.NotNil(t, stats)

	assert.Equal(t, "octocat", stats.Username)
	assert.Equal(t, 8, stats.PublicRepos)
	assert.Equal(t, 6, stats.TotalStars)
	assert.Equal(t, 5, stats.RecentCommits)
	require.Len(t, stats.TopLanguages, 2)
	assert.Equal(t, LanguageCount{Language: "Go", Count: 2}, stats.TopLanguages[0])
	assert.Equal(t, LanguageCount{Language: "Python", Count: 1}, stats.TopLanguages[1])
}

func TestGitHubFetchMandatoryStepFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/ghost" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		// repos/events would succeed, but must never rescue the fetch
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	stats, err := githubTestClient(t, srv.URL).Fetch(context.Background(), "ghost")
	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestGitHubFetchRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	stats, err := githubTestClient(t, srv.URL).Fetch(context.Background(), "octocat")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
	assert.Nil(t, stats)
}

func TestGitHubFetchEnrichmentFailureIsNotFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/octocat" {
			w.Write([]byte(`{"login":"octocat","public_repos":4}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	stats, err := githubTestClient(t, srv.URL).Fetch(context.Background(), "octocat")
	require.NoError(t, err)
	require.NotNil(t, stats)

	assert.Equal(t, 4, stats.PublicRepos)
	assert.Equal(t, 0, stats.TotalStars)
	assert.Equal(t, 0, stats.RecentCommits)
	assert.Empty(t, stats.TopLanguages)
}

func TestGitHubFetchEmptyReference(t *testing.T) {
	stats, err := githubTestClient(t, "http://127.0.0.1:0").Fetch(context.Background(), "   ")
	assert.Error(t, err)
	assert.Nil(t, stats)
}
