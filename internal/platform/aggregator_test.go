package platform

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGitHub struct {
	stats *GitHubStats
	err   error
	calls int
}

func (f *fakeGitHub) Fetch(ctx context.Context, raw string) (*GitHubStats, error) {
	f.calls++
	return f.stats, f.err
}

type fakeLeetCode struct {
	stats *LeetCodeStats
	err   error
	calls int
}

func (f *fakeLeetCode) Fetch(ctx context.Context, raw string) (*LeetCodeStats, error) {
	f.calls++
	return f.stats, f.err
}

type fakeHackerRank struct {
	stats *HackerRankStats
	err   error
	calls int
}

func (f *fakeHackerRank) Fetch(ctx context.Context, raw string) (*HackerRankStats, error) {
	f.calls++
	return f.stats, f.err
}

func TestAggregatorFetchAllSucceeds(t *testing.T) {
	gh := &fakeGitHub{stats: &GitHubStats{Username: "a", PublicRepos: 3}}
	lc := &fakeLeetCode{stats: &LeetCodeStats{Username: "b", TotalSolved: 10}}
	hr := &fakeHackerRank{stats: &HackerRankStats{Username: "c", Badges: 2}}

	a := NewAggregator(gh, lc, hr, testLogger(t))
	result := a.FetchAll(context.Background(), ProfileRefs{GitHub: "a", LeetCode: "b", HackerRank: "c"})

	require.NotNil(t, result.GitHub)
	require.NotNil(t, result.LeetCode)
	require.NotNil(t, result.HackerRank)
	assert.Equal(t, []string{"github: synced", "leetcode: synced", "hackerrank: synced"}, result.Messages)
}

func TestAggregatorSkipsUnconfiguredPlatforms(t *testing.T) {
	gh := &fakeGitHub{stats: &GitHubStats{Username: "a"}}
	lc := &fakeLeetCode{}
	hr := &fakeHackerRank{}

	a := NewAggregator(gh, lc, hr, testLogger(t))
	result := a.FetchAll(context.Background(), ProfileRefs{GitHub: "a"})

	assert.Equal(t, 1, gh.calls)
	assert.Equal(t, 0, lc.calls)
	assert.Equal(t, 0, hr.calls)
	assert.NotNil(t, result.GitHub)
	assert.Nil(t, result.LeetCode)
	assert.Nil(t, result.HackerRank)
	assert.Equal(t, []string{"github: synced"}, result.Messages)
}

func TestAggregatorToleratesFailures(t *testing.T) {
	gh := &fakeGitHub{err: errors.New("rate limited")}
	lc := &fakeLeetCode{stats: &LeetCodeStats{TotalSolved: 5}}
	hr := &fakeHackerRank{err: errors.New("boom")}

	a := NewAggregator(gh, lc, hr, testLogger(t))
	result := a.FetchAll(context.Background(), ProfileRefs{GitHub: "a", LeetCode: "b", HackerRank: "c"})

	assert.Nil(t, result.GitHub)
	require.NotNil(t, result.LeetCode)
	assert.Nil(t, result.HackerRank)
	assert.Equal(t, []string{
		"could not sync github: rate limited",
		"leetcode: synced",
		"could not sync hackerrank: boom",
	}, result.Messages)
}

func TestAggregatorNoPlatforms(t *testing.T) {
	a := NewAggregator(&fakeGitHub{}, &fakeLeetCode{}, &fakeHackerRank{}, testLogger(t))
	result := a.FetchAll(context.Background(), ProfileRefs{})

	assert.Nil(t, result.GitHub)
	assert.Nil(t, result.LeetCode)
	assert.Nil(t, result.HackerRank)
	assert.Empty(t, result.Messages)
}
