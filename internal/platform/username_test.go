package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractUsername(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		platform Platform
		want     string
	}{
		{"empty", "", GitHub, ""},
		{"whitespace only", "   ", LeetCode, ""},
		{"bare username untouched", "octocat", GitHub, "octocat"},
		{"bare username trimmed", "  octocat  ", GitHub, "octocat"},
		{"github url", "https://github.com/octocat", GitHub, "octocat"},
		{"github url trailing slash", "https://github.com/octocat/", GitHub, "octocat"},
		{"github url with query", "https://github.com/octocat?tab=repositories", GitHub, "octocat"},
		{"github url extra path", "https://github.com/octocat/dotfiles", GitHub, "octocat"},
		{"github no scheme", "www.github.com/octocat", GitHub, "octocat"},
		{"github mixed case host", "https://GitHub.com/Octocat", GitHub, "Octocat"},
		{"leetcode u-form preferred", "https://leetcode.com/u/someone", LeetCode, "someone"},
		{"leetcode bare form", "https://leetcode.com/someone", LeetCode, "someone"},
		{"leetcode u-form trailing slash", "https://leetcode.com/u/someone/", LeetCode, "someone"},
		{"hackerrank profile form", "https://www.hackerrank.com/profile/someone", HackerRank, "someone"},
		{"hackerrank bare form", "https://www.hackerrank.com/someone", HackerRank, "someone"},
		{"url for wrong platform returned as-is", "https://gitlab.com/someone", GitHub, "https://gitlab.com/someone"},
		{"username with dash", "some-user_1", HackerRank, "some-user_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractUsername(tt.input, tt.platform))
		})
	}
}
