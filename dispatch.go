package linkprobe

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cueyang/linkprobe/vo"
)

// ProbeFunc checks one URL. Implementations must not block forever, the pool
// has no per-task deadline of its own.
type ProbeFunc func(targetURL string) vo.ProbeOutcome

// Dispatch runs probeFunc for every URL with at most concurrency probes in
// flight. It returns only once every URL has produced exactly one outcome,
// collected in completion order. onProgress fires with the completion count
// after each finished probe and is purely observational.
func Dispatch(urls []string, probeFunc ProbeFunc, concurrency int, onProgress func(done, total int)) []vo.ProbeOutcome {
	setupMetrics()
	if concurrency < 1 {
		concurrency = 1
	}
	chanJobs := make(chan string)
	chanResult := make(chan vo.ProbeOutcome)

	for i := 0; i < concurrency; i++ {
		go func() {
			for targetURL := range chanJobs {
				chanResult <- runProbe(probeFunc, targetURL)
			}
		}()
	}
	go func() {
		for _, targetURL := range urls {
			chanJobs <- targetURL
		}
		close(chanJobs)
	}()

	outcomes := make([]vo.ProbeOutcome, 0, len(urls))
	for range urls {
		outcome := <-chanResult
		outcomes = append(outcomes, outcome)
		probeDurationSummary.Observe(outcome.Duration.Seconds())
		probeCounterVec.WithLabelValues(outcome.Verdict.String()).Inc()
		if outcome.Code != 0 {
			statusCounterVec.WithLabelValues(strconv.Itoa(outcome.Code)).Inc()
		}
		if onProgress != nil {
			onProgress(len(outcomes), len(urls))
		}
	}
	return outcomes
}

// runProbe shields the pool from a panicking probe task, a crashed task still
// yields an outcome for its URL and the remaining work is unaffected.
func runProbe(probeFunc ProbeFunc, targetURL string) (outcome vo.ProbeOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = vo.ProbeOutcome{
				URL:     targetURL,
				Verdict: vo.VerdictProbeError,
				Reason:  fmt.Sprintf("probe panic: %v", r),
				Time:    time.Now(),
			}
		}
	}()
	return probeFunc(targetURL)
}
