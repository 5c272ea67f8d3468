package platform

import (
	"regexp"
	"strings"
)

// Platform identifies one of the supported coding platforms.
type Platform string

const (
	GitHub     Platform = "github"
	LeetCode   Platform = "leetcode"
	HackerRank Platform = "hackerrank"
)

var (
	githubPattern = regexp.MustCompile(`(?i)github\.com/([^/?#]+)`)

	// leetcode.com/u/<name> is the current profile URL shape, the bare
	// leetcode.com/<name> form still works for old links.
	leetcodeUserPattern = regexp.MustCompile(`(?i)leetcode\.com/u/([^/?#]+)`)
	leetcodeBarePattern = regexp.MustCompile(`(?i)leetcode\.com/([^/?#]+)`)

	hackerrankProfilePattern = regexp.MustCompile(`(?i)hackerrank\.com/profile/([^/?#]+)`)
	hackerrankBarePattern    = regexp.MustCompile(`(?i)hackerrank\.com/([^/?#]+)`)
)

// ExtractUsername pulls a bare platform username out of a stored profile
// reference, which may be either a username or a full profile URL.
// It returns "" only for empty/whitespace input; anything unrecognized is
// handed back trimmed, on the assumption it already is a username.
func ExtractUsername(input string, p Platform) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	input = strings.TrimRight(input, "/")

	lower := strings.ToLower(input)
	if !strings.Contains(lower, "http") && !strings.Contains(lower, "www.") && !strings.Contains(lower, ".com") {
		return input
	}

	switch p {
	case GitHub:
		if m := githubPattern.FindStringSubmatch(input); len(m) > 1 {
			return m[1]
		}
	case LeetCode:
		if m := leetcodeUserPattern.FindStringSubmatch(input); len(m) > 1 {
			return m[1]
		}
		if m := leetcodeBarePattern.FindStringSubmatch(input); len(m) > 1 {
			return m[1]
		}
	case HackerRank:
		if m := hackerrankProfilePattern.FindStringSubmatch(input); len(m) > 1 {
			return m[1]
		}
		if m := hackerrankBarePattern.FindStringSubmatch(input); len(m) > 1 {
			return m[1]
		}
	}

	// URL-shaped but nothing matched: best effort, return as-is.
	return input
}
