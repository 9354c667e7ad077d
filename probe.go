package linkprobe

import (
	"net"
	"net/http"
	"time"

	"github.com/cueyang/linkprobe/vo"
)

// HealthyContentType is matched against the raw Content-Type header by exact
// string comparison. "video/mp4; codecs=..." does not match and the URL is
// classified unhealthy.
const HealthyContentType = "video/mp4"

// NewProbeClient returns the http client shared by all probes of a scan.
func NewProbeClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: 5 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout: 5 * time.Second,
		},
	}
}

// Probe issues a single HEAD request against targetURL, following redirects,
// and classifies the response. It makes one attempt and never returns an
// error, transport failures become a probe-error outcome.
func Probe(client *http.Client, agent string, targetURL string) vo.ProbeOutcome {
	outcome := vo.ProbeOutcome{
		URL:  targetURL,
		Time: time.Now(),
	}
	start := time.Now()
	req, errRequest := http.NewRequest(http.MethodHead, targetURL, nil)
	if errRequest != nil {
		outcome.Verdict = vo.VerdictProbeError
		outcome.Reason = errRequest.Error()
		return outcome
	}
	req.Header.Set("User-Agent", agent)

	resp, errDo := client.Do(req)
	outcome.Duration = time.Since(start)
	if errDo != nil {
		outcome.Verdict = vo.VerdictProbeError
		outcome.Reason = errDo.Error()
		return outcome
	}
	defer resp.Body.Close()

	outcome.Code = resp.StatusCode
	outcome.Status = resp.Status
	outcome.ContentType = resp.Header.Get("Content-Type")
	if resp.StatusCode == http.StatusOK && outcome.ContentType == HealthyContentType {
		outcome.Verdict = vo.VerdictHealthyMedia
	} else {
		outcome.Verdict = vo.VerdictUnhealthy
	}
	return outcome
}
