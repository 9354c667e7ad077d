package linkprobe

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cueyang/linkprobe/vo"
)

// countingProbe tracks how many probes run at the same time.
type countingProbe struct {
	mu      sync.Mutex
	running int
	max     int
}

func (c *countingProbe) probe(targetURL string) vo.ProbeOutcome {
	c.mu.Lock()
	c.running++
	if c.running > c.max {
		c.max = c.running
	}
	c.mu.Unlock()

	time.Sleep(time.Millisecond * 10)

	c.mu.Lock()
	c.running--
	c.mu.Unlock()
	return vo.ProbeOutcome{URL: targetURL, Verdict: vo.VerdictHealthyMedia}
}

func testURLs(n int) []string {
	urls := make([]string, n)
	for i := range urls {
		urls[i] = fmt.Sprintf("http://example.com/%d.mp4", i)
	}
	return urls
}

func TestDispatchConcurrencyBound(t *testing.T) {
	counting := &countingProbe{}
	urls := testURLs(50)

	outcomes := Dispatch(urls, counting.probe, 4, nil)
	assert.Len(t, outcomes, len(urls))
	assert.LessOrEqual(t, counting.max, 4)
	assert.Greater(t, counting.max, 1, "work should actually run in parallel")
}

func TestDispatchCompleteness(t *testing.T) {
	urls := testURLs(30)
	outcomes := Dispatch(urls, func(targetURL string) vo.ProbeOutcome {
		return vo.ProbeOutcome{URL: targetURL, Verdict: vo.VerdictUnhealthy}
	}, 8, nil)

	seen := map[string]int{}
	for _, outcome := range outcomes {
		seen[outcome.URL]++
	}
	assert.Len(t, seen, len(urls))
	for _, targetURL := range urls {
		assert.Equal(t, 1, seen[targetURL], targetURL)
	}
}

func TestDispatchRecoversPanickingProbe(t *testing.T) {
	urls := testURLs(10)
	outcomes := Dispatch(urls, func(targetURL string) vo.ProbeOutcome {
		if targetURL == urls[3] {
			panic("internal fault")
		}
		return vo.ProbeOutcome{URL: targetURL, Verdict: vo.VerdictHealthyMedia}
	}, 2, nil)

	assert.Len(t, outcomes, len(urls))
	errored := 0
	for _, outcome := range outcomes {
		if outcome.Verdict == vo.VerdictProbeError {
			errored++
			assert.Equal(t, urls[3], outcome.URL)
			assert.Contains(t, outcome.Reason, "internal fault")
		}
	}
	assert.Equal(t, 1, errored)
}

func TestDispatchProgress(t *testing.T) {
	urls := testURLs(5)
	counts := []int{}
	Dispatch(urls, func(targetURL string) vo.ProbeOutcome {
		return vo.ProbeOutcome{URL: targetURL}
	}, 3, func(done, total int) {
		assert.Equal(t, 5, total)
		counts = append(counts, done)
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, counts)
}

func TestDispatchNoURLs(t *testing.T) {
	calls := 0
	outcomes := Dispatch(nil, func(targetURL string) vo.ProbeOutcome {
		calls++
		return vo.ProbeOutcome{}
	}, 4, nil)
	assert.Empty(t, outcomes)
	assert.Equal(t, 0, calls)
}
