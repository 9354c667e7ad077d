// Package reports persists scan output. The two link reports are fixed-name
// files living next to the data source and are fully overwritten on every
// scan, a run never appends to or merges with the previous one.
package reports

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cueyang/linkprobe/vo"
)

const (
	// DeadLinksFilename collects every URL that did not check out.
	DeadLinksFilename = "失效链接.txt"
	// HealthyLinksFilename collects the confirmed mp4 URLs.
	HealthyLinksFilename = "健康链接.txt"

	healthyHeader = "MP4链接:"
)

// WriteDeadLinks overwrites the dead link report in dir with one URL per
// line, or an empty file when there are none. It returns the path written.
func WriteDeadLinks(dir string, urls []string) (path string, err error) {
	path = filepath.Join(dir, DeadLinksFilename)
	err = os.WriteFile(path, []byte(joinLines(urls)), 0644)
	return
}

// WriteHealthyLinks overwrites the healthy link report in dir with a header
// line followed by one URL per line, or an empty file when there are none.
func WriteHealthyLinks(dir string, urls []string) (path string, err error) {
	path = filepath.Join(dir, HealthyLinksFilename)
	content := ""
	if len(urls) > 0 {
		content = healthyHeader + "\n" + joinLines(urls)
	}
	err = os.WriteFile(path, []byte(content), 0644)
	return
}

func joinLines(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	return strings.Join(urls, "\n") + "\n"
}

func printers(w io.Writer) (printh func(header ...interface{}), println func(a ...interface{})) {
	println = func(a ...interface{}) { fmt.Fprintln(w, a...) }
	printh = func(header ...interface{}) {
		println()
		println(header...)
		println("-----------------------------------------------------------------------------")
	}
	return
}

// Summary writes a plain text overview of the service status, meant for the
// status endpoint and for operators with curl.
func Summary(status vo.Status, w io.Writer) {
	printh, println := printers(w)
	printh("scan status")
	if status.Scanning {
		println("scanning", status.Done, "/", status.Total)
	} else {
		println("idle")
	}
	if status.LastError != "" {
		println("last error:", status.LastError)
	}
	if status.LastScan == nil {
		println("no completed scan yet")
		return
	}
	result := *status.LastScan

	printh("last scan", result.Time.Format("2006-01-02 15:04:05"))
	println("took", result.Duration)
	println("healthy", len(result.Healthy), "/", result.Total())
	println("failed ", len(result.Failed), "/", result.Total())

	printh("latency buckets")
	for _, bucket := range vo.GetBucketList() {
		bucketI := 0
		for _, outcome := range result.Outcomes {
			// lower bound inclusive, a probe that failed before the request
			// went out has zero duration and still shows up
			if outcome.Duration >= bucket.From && outcome.Duration < bucket.To {
				bucketI++
			}
		}
		println(bucketI, "	(", bucket.From, "=>", bucket.To, ")", bucket.Name)
	}

	printh("failed urls")
	for _, targetURL := range result.Failed {
		outcome := result.Outcomes[targetURL]
		if outcome.Verdict == vo.VerdictProbeError {
			println(targetURL, " (", outcome.Reason, ")")
		} else {
			println(targetURL, " (", outcome.Code, outcome.ContentType, ")")
		}
	}
}
