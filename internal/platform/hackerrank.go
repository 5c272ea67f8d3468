package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ruziba3vich/edugrow_backend/internal/pkg/config"
	logger "github.com/ruziba3vich/prodonik_lgger"
)

// HackerRankClient fetches badge, certificate and submission data from the
// unofficial hacker REST endpoints. Every sub-call is best effort: a failed
// call leaves its fields at their zero defaults instead of failing the
// fetch, and even total failure yields a usable placeholder record.
type HackerRankClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *logger.Logger
}

func NewHackerRankClient(cfg *config.Config, log *logger.Logger) *HackerRankClient {
	return &HackerRankClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    cfg.Platforms.HackerRankAPIBase,
		logger:     log,
	}
}

type hackerrankBadges struct {
	Models []struct {
		BadgeName string  `json:"badge_name"`
		Stars     float64 `json:"stars"`
	} `json:"models"`
}

type hackerrankCertificates struct {
	Models []struct {
		CertificateName string `json:"certificate_name"`
		Status          string `json:"status"`
	} `json:"models"`
}

type hackerrankProfile struct {
	Model struct {
		Name      string   `json:"name"`
		Country   string   `json:"country"`
		Skills    []string `json:"skills"`
		Languages []string `json:"languages"`
	} `json:"model"`
}

// Fetch retrieves HackerRank stats. The only nil return is an empty
// profile reference; network outages degrade to a zeroed record with Error
// set, since private profiles are indistinguishable from dead ones here.
func (c *HackerRankClient) Fetch(ctx context.Context, raw string) (*HackerRankStats, error) {
	username := ExtractUsername(raw, HackerRank)
	if username == "" {
		return nil, fmt.Errorf("hackerrank: empty profile reference")
	}

	stats := &HackerRankStats{
		Username:           username,
		Skills:             []string{},
		BadgeDetails:       []BadgeDetail{},
		CertificateDetails: []string{},
		ProfileURL:         "https://www.hackerrank.com/profile/" + username,
		FetchedAt:          time.Now().UTC(),
	}
	base := c.baseURL + "/rest/hackers/" + username
	failures := 0

	var badges hackerrankBadges
	if err := c.getJSON(ctx, base+"/badges", &badges); err != nil {
		c.logger.Errorf("hackerrank: badges fetch user=%s failed: %v", username, err)
		failures++
	} else {
		for _, b := range badges.Models {
			stats.Badges++
			switch {
			case b.Stars >= 5 || strings.Contains(strings.ToLower(b.BadgeName), "gold"):
				stats.GoldBadges++
			case b.Stars >= 3:
				stats.SilverBadges++
			default:
				stats.BronzeBadges++
			}
			if len(stats.BadgeDetails) < 10 {
				stats.BadgeDetails = append(stats.BadgeDetails, BadgeDetail{Name: b.BadgeName, Stars: b.Stars})
			}
		}
	}

	var history struct {
		Models map[string]any `json:"models"`
	}
	if err := c.getJSON(ctx, base+"/submission_histories", &history); err != nil {
		c.logger.Errorf("hackerrank: submission history fetch user=%s failed: %v", username, err)
		failures++
	} else {
		stats.SolvedChallenges = sumNumericValues(history.Models)
	}

	var certs hackerrankCertificates
	if err := c.getJSON(ctx, base+"/certificates", &certs); err != nil {
		c.logger.Errorf("hackerrank: certificates fetch user=%s failed: %v", username, err)
		failures++
	} else {
		stats.Certificates = len(certs.Models)
		for _, cert := range certs.Models {
			if len(stats.CertificateDetails) < 5 {
				stats.CertificateDetails = append(stats.CertificateDetails, cert.CertificateName)
			}
		}
	}

	var prof hackerrankProfile
	if err := c.getJSON(ctx, base, &prof); err != nil {
		c.logger.Errorf("hackerrank: profile fetch user=%s failed: %v", username, err)
		failures++
	} else {
		skills := prof.Model.Skills
		if len(skills) == 0 {
			skills = prof.Model.Languages
		}
		if len(skills) > 10 {
			skills = skills[:10]
		}
		stats.Skills = append(stats.Skills, skills...)
	}

	if failures == 4 {
		stats.Error = "unable to reach HackerRank; the profile may be private or unavailable"
		c.logger.Errorf("hackerrank: all sub-calls failed for user=%s", username)
		return stats, nil
	}

	c.logger.Infof("hackerrank: fetched user=%s badges=%d certs=%d solved=%d",
		username, stats.Badges, stats.Certificates, stats.SolvedChallenges)
	return stats, nil
}

// sumNumericValues totals the per-track solve counts, which the endpoint
// returns as a mix of JSON numbers and numeric strings.
func sumNumericValues(m map[string]any) int {
	total := 0
	for _, v := range m {
		switch n := v.(type) {
		case float64:
			total += int(n)
		case string:
			if parsed, err := strconv.Atoi(n); err == nil {
				total += parsed
			}
		}
	}
	return total
}

func (c *HackerRankClient) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", apiUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("non-200: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return nil
}
