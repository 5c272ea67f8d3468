package platform

import (
	"context"
	"fmt"

	logger "github.com/ruziba3vich/prodonik_lgger"
	"golang.org/x/sync/errgroup"
)

// GitHubFetcher, LeetCodeFetcher and HackerRankFetcher are what the
// aggregator needs from the platform clients; tests substitute fakes.
type GitHubFetcher interface {
	Fetch(ctx context.Context, raw string) (*GitHubStats, error)
}

type LeetCodeFetcher interface {
	Fetch(ctx context.Context, raw string) (*LeetCodeStats, error)
}

type HackerRankFetcher interface {
	Fetch(ctx context.Context, raw string) (*HackerRankStats, error)
}

// Aggregator fans out to the configured platforms concurrently and merges
// whatever comes back. Fetch failures become messages, never errors: the
// result is total over any combination of upstream outages.
type Aggregator struct {
	github     GitHubFetcher
	leetcode   LeetCodeFetcher
	hackerrank HackerRankFetcher
	logger     *logger.Logger
}

func NewAggregator(gh GitHubFetcher, lc LeetCodeFetcher, hr HackerRankFetcher, log *logger.Logger) *Aggregator {
	return &Aggregator{github: gh, leetcode: lc, hackerrank: hr, logger: log}
}

// FetchAll runs one fetch per configured platform and waits for all of
// them to settle. Each goroutine writes only its own slot, so no locking
// is needed; messages are assembled afterwards in fixed platform order.
func (a *Aggregator) FetchAll(ctx context.Context, refs ProfileRefs) *SyncResult {
	result := &SyncResult{Messages: []string{}}

	var ghErr, lcErr, hrErr error
	g, gctx := errgroup.WithContext(ctx)

	if refs.GitHub != "" {
		g.Go(func() error {
			result.GitHub, ghErr = a.github.Fetch(gctx, refs.GitHub)
			return nil
		})
	}
	if refs.LeetCode != "" {
		g.Go(func() error {
			result.LeetCode, lcErr = a.leetcode.Fetch(gctx, refs.LeetCode)
			return nil
		})
	}
	if refs.HackerRank != "" {
		g.Go(func() error {
			result.HackerRank, hrErr = a.hackerrank.Fetch(gctx, refs.HackerRank)
			return nil
		})
	}
	_ = g.Wait()

	appendOutcome(result, "github", refs.GitHub, result.GitHub != nil, ghErr)
	appendOutcome(result, "leetcode", refs.LeetCode, result.LeetCode != nil, lcErr)
	appendOutcome(result, "hackerrank", refs.HackerRank, result.HackerRank != nil, hrErr)

	a.logger.Infof("aggregate: github=%v leetcode=%v hackerrank=%v",
		result.GitHub != nil, result.LeetCode != nil, result.HackerRank != nil)
	return result
}

func appendOutcome(r *SyncResult, name, ref string, ok bool, err error) {
	switch {
	case ref == "":
	case ok:
		r.Messages = append(r.Messages, fmt.Sprintf("%s: synced", name))
	case err != nil:
		r.Messages = append(r.Messages, fmt.Sprintf("could not sync %s: %v", name, err))
	default:
		r.Messages = append(r.Messages, fmt.Sprintf("could not sync %s", name))
	}
}
