package vo

import "time"

// Verdict classifies the result of probing a single URL.
type Verdict int

const (
	VerdictHealthyMedia Verdict = iota
	VerdictUnhealthy
	VerdictProbeError
)

func (v Verdict) String() string {
	switch v {
	case VerdictHealthyMedia:
		return "healthy-media"
	case VerdictUnhealthy:
		return "unhealthy"
	case VerdictProbeError:
		return "probe-error"
	}
	return "unknown"
}

// ProbeOutcome is produced exactly once per URL per scan and never mutated
// afterwards. Code and ContentType are zero for transport-level failures,
// Reason is empty unless Verdict is VerdictProbeError.
type ProbeOutcome struct {
	URL         string
	Verdict     Verdict
	Code        int
	Status      string
	ContentType string
	Reason      string
	Duration    time.Duration
	Time        time.Time
}

func (o ProbeOutcome) Healthy() bool {
	return o.Verdict == VerdictHealthyMedia
}
