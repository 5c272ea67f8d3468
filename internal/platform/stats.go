package platform

import "time"

// LanguageCount is one entry of a GitHub top-languages breakdown.
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// GitHubStats is the normalized shape produced by the GitHub fetcher.
// Numeric fields default to 0 so downstream arithmetic never branches on
// missing data.
type GitHubStats struct {
	Username      string          `json:"username"`
	Name          string          `json:"name"`
	AvatarURL     string          `json:"avatarUrl"`
	Bio           string          `json:"bio"`
	PublicRepos   int             `json:"publicRepos"`
	Followers     int             `json:"followers"`
	Following     int             `json:"following"`
	TotalStars    int             `json:"totalStars"`
	RecentCommits int             `json:"recentCommits"`
	TopLanguages  []LanguageCount `json:"topLanguages"`
	ProfileURL    string          `json:"profileUrl"`
	CreatedAt     string          `json:"createdAt"`
	FetchedAt     time.Time       `json:"fetchedAt"`
}

// LeetCodeStats is the normalized shape produced by the LeetCode fetcher,
// regardless of which of the three upstream sources supplied the data.
type LeetCodeStats struct {
	Username        string    `json:"username"`
	Ranking         int       `json:"ranking"`
	Reputation      int       `json:"reputation"`
	TotalSolved     int       `json:"totalSolved"`
	EasySolved      int       `json:"easySolved"`
	MediumSolved    int       `json:"mediumSolved"`
	HardSolved      int       `json:"hardSolved"`
	Streak          int       `json:"streak"`
	TotalActiveDays int       `json:"totalActiveDays"`
	AcceptanceRate  float64   `json:"acceptanceRate"`
	ProfileURL      string    `json:"profileUrl"`
	FetchedAt       time.Time `json:"fetchedAt"`
}

// BadgeDetail is a short badge summary for UI display.
type BadgeDetail struct {
	Name  string  `json:"name"`
	Stars float64 `json:"stars"`
}

// HackerRankStats is the normalized shape produced by the HackerRank
// fetcher. Unlike the other two platforms it is always non-nil for a
// non-empty username; total upstream failure yields a zeroed record with
// Error set so the UI still has something to render.
type HackerRankStats struct {
	Username           string        `json:"username"`
	Badges             int           `json:"badges"`
	GoldBadges         int           `json:"goldBadges"`
	SilverBadges       int           `json:"silverBadges"`
	BronzeBadges       int           `json:"bronzeBadges"`
	Certificates       int           `json:"certificates"`
	SolvedChallenges   int           `json:"solvedChallenges"`
	Skills             []string      `json:"skills"`
	BadgeDetails       []BadgeDetail `json:"badgeDetails"`
	CertificateDetails []string      `json:"certificateDetails"`
	ProfileURL         string        `json:"profileUrl"`
	FetchedAt          time.Time     `json:"fetchedAt"`
	Error              string        `json:"error,omitempty"`
}

// AcademicRecord is the slice of a student's academic data the growth
// score cares about. CGPA is on a 0-10 scale.
type AcademicRecord struct {
	CGPA       float64 `json:"cgpa"`
	Semester   int     `json:"semester"`
	Attendance float64 `json:"attendance"`
}

// ProfileRefs holds a student's stored platform references, each either a
// bare username or a profile URL. Empty string means the platform is not
// configured.
type ProfileRefs struct {
	GitHub     string `json:"github"`
	LeetCode   string `json:"leetcode"`
	HackerRank string `json:"hackerrank"`
}

// SyncResult is the outcome of one aggregation run. A nil platform pointer
// means that platform was not configured or its fetch failed, which the
// score calculator treats differently from a present-but-zero record.
type SyncResult struct {
	GitHub      *GitHubStats     `json:"github,omitempty"`
	LeetCode    *LeetCodeStats   `json:"leetcode,omitempty"`
	HackerRank  *HackerRankStats `json:"hackerrank,omitempty"`
	GrowthScore float64          `json:"growthScore"`
	Messages    []string         `json:"messages"`
}
