package platform

import "math"

// Per-factor caps for the growth score. They intentionally do not sum to
// an even multiple of 25; the final average is renormalized from a nominal
// 25-point factor scale up to 100, which makes the score drift slightly
// with which factors are present. That drift matches the scores already in
// production, so it stays.
const (
	githubCap     = 25.0
	leetcodeCap   = 30.0
	hackerrankCap = 15.0
	academicsCap  = 30.0
)

// CalculateGrowthScore blends platform activity and academics into a single
// 0-100 score. A factor only counts when its input is present AND its
// headline field is nonzero: a platform that was fetched but has all-zero
// stats is excluded from the average entirely, not averaged in at zero.
func CalculateGrowthScore(gh *GitHubStats, lc *LeetCodeStats, hr *HackerRankStats, ac *AcademicRecord) float64 {
	score := 0.0
	factors := 0

	if gh != nil && gh.PublicRepos > 0 {
		sub := float64(gh.PublicRepos)*2 + float64(gh.TotalStars)*0.5 + float64(gh.RecentCommits)*0.3
		score += math.Min(githubCap, sub)
		factors++
	}

	if lc != nil && lc.TotalSolved > 0 {
		sub := float64(lc.EasySolved)*0.1 + float64(lc.MediumSolved)*0.3 + float64(lc.HardSolved)*0.8
		score += math.Min(leetcodeCap, sub)
		factors++
	}

	if hr != nil && hr.Badges > 0 {
		sub := float64(hr.Badges)*0.5 + float64(hr.Certificates)*2
		score += math.Min(hackerrankCap, sub)
		factors++
	}

	if ac != nil && ac.CGPA > 0 {
		score += (ac.CGPA / 10) * academicsCap
		factors++
	}

	if factors == 0 {
		return 0
	}

	final := math.Round((score / float64(factors)) * (100.0 / 25.0))
	if final > 100 {
		final = 100
	}
	return final
}
