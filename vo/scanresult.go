package vo

import "time"

// ScanResult is the outcome of one complete scan. Healthy and Failed are
// disjoint and together cover every URL that went into the scan. Order within
// the slices is probe completion order and is not stable across runs.
type ScanResult struct {
	Healthy  []string
	Failed   []string
	Outcomes map[string]ProbeOutcome
	Duration time.Duration
	Time     time.Time
}

func (r ScanResult) Total() int {
	return len(r.Healthy) + len(r.Failed)
}
