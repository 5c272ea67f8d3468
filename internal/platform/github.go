package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/ruziba3vich/edugrow_backend/internal/pkg/config"
	logger "github.com/ruziba3vich/prodonik_lgger"
)

// apiUserAgent identifies us to the REST endpoints that reject the Go
// default User-Agent.
const apiUserAgent = "edugrow-backend/1.0"

// GitHubClient fetches public profile activity from the GitHub REST API.
type GitHubClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *logger.Logger
}

func NewGitHubClient(cfg *config.Config, log *logger.Logger) *GitHubClient {
	return &GitHubClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    cfg.Platforms.GitHubAPIBase,
		logger:     log,
	}
}

type githubUser struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	HTMLURL     string `json:"html_url"`
	CreatedAt   string `json:"created_at"`
}

type githubRepo struct {
	StargazersCount int    `json:"stargazers_count"`
	Language        string `json:"language"`
}

type githubEvent struct {
	Type    string `json:"type"`
	Payload struct {
		Size int `json:"size"`
	} `json:"payload"`
}

// Fetch retrieves a normalized GitHub activity record. The profile lookup
// is mandatory: any failure there collapses the whole fetch to (nil, err).
// Repos and events are enrichment only, their failures leave the derived
// fields at zero.
func (c *GitHubClient) Fetch(ctx context.Context, raw string) (*GitHubStats, error) {
	username := ExtractUsername(raw, GitHub)
	if username == "" {
		return nil, fmt.Errorf("github: empty profile reference")
	}

	var user githubUser
	status, header, err := c.getJSON(ctx, c.baseURL+"/users/"+username, &user)
	if err != nil {
		return nil, fmt.Errorf("github: user lookup for %q: %w", username, err)
	}
	if status == http.StatusForbidden {
		c.logger.Errorf("github: rate limited for user=%s remaining=%s", username, header.Get("X-RateLimit-Remaining"))
		return nil, fmt.Errorf("github: rate limited (HTTP 403)")
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("github: user lookup for %q: HTTP %d", username, status)
	}

	stats := &GitHubStats{
		Username:     username,
		Name:         user.Name,
		AvatarURL:    user.AvatarURL,
		Bio:          user.Bio,
		PublicRepos:  user.PublicRepos,
		Followers:    user.Followers,
		Following:    user.Following,
		TopLanguages: []LanguageCount{},
		ProfileURL:   user.HTMLURL,
		CreatedAt:    user.CreatedAt,
		FetchedAt:    time.Now().UTC(),
	}
	if stats.ProfileURL == "" {
		stats.ProfileURL = "https://github.com/" + username
	}

	var repos []githubRepo
	status, _, err = c.getJSON(ctx, c.baseURL+"/users/"+username+"/repos?per_page=100&sort=updated", &repos)
	if err != nil || status != http.StatusOK {
		c.logger.Errorf("github: repos fetch for user=%s failed: status=%d err=%v", username, status, err)
	} else {
		stats.TotalStars, stats.TopLanguages = reduceRepos(repos)
	}

	var events []githubEvent
	status, _, err = c.getJSON(ctx, c.baseURL+"/users/"+username+"/events/public?per_page=100", &events)
	if err != nil || status != http.StatusOK {
		c.logger.Errorf("github: events fetch for user=%s failed: status=%d err=%v", username, status, err)
	} else {
		for _, ev := range events {
			if ev.Type == "PushEvent" {
				stats.RecentCommits += ev.Payload.Size
			}
		}
	}

	c.logger.Infof("github: fetched user=%s repos=%d stars=%d commits=%d",
		username, stats.PublicRepos, stats.TotalStars, stats.RecentCommits)
	return stats, nil
}

// reduceRepos sums stars and builds the top-5 primary-language breakdown.
// Ties keep first-seen order.
func reduceRepos(repos []githubRepo) (int, []LanguageCount) {
	totalStars := 0
	counts := make(map[string]int)
	var order []string
	for _, r := range repos {
		totalStars += r.StargazersCount
		if r.Language == "" {
			continue
		}
		if _, seen := counts[r.Language]; !seen {
			order = append(order, r.Language)
		}
		counts[r.Language]++
	}

	langs := make([]LanguageCount, 0, len(order))
	for _, l := range order {
		langs = append(langs, LanguageCount{Language: l, Count: counts[l]})
	}
	sort.SliceStable(langs, func(i, j int) bool { return langs[i].Count > langs[j].Count })
	if len(langs) > 5 {
		langs = langs[:5]
	}
	return totalStars, langs
}

func (c *GitHubClient) getJSON(ctx context.Context, url string, out any) (int, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", apiUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, resp.Header, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		if err := json.Unmarshal(body, out); err != nil {
			return resp.StatusCode, resp.Header, fmt.Errorf("unmarshal: %w", err)
		}
	}
	return resp.StatusCode, resp.Header, nil
}
