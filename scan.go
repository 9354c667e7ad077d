package linkprobe

import (
	"path/filepath"
	"time"

	"github.com/cueyang/linkprobe/reports"
	"github.com/cueyang/linkprobe/vo"
)

// RunScan performs one full pass over the data source: extract the URL set,
// probe every URL under the concurrency cap, partition the outcomes and
// overwrite the two report files next to the source. Each call is an
// independent, self contained scan.
//
// A missing source surfaces as source.ErrSourceNotFound before anything is
// written, per URL failures never surface as errors at all.
func (s *Service) RunScan() (result vo.ScanResult, err error) {
	start := time.Now()
	s.setScanning(true)
	defer s.setScanning(false)

	cells, errCells := s.reader.Cells(s.conf.Source, s.conf.Table)
	if errCells != nil {
		err = errCells
		return
	}
	urls := ExtractURLs(cells)
	s.logger.Info().
		Int("cells", len(cells)).
		Int("urls", len(urls)).
		Str("source", s.conf.Source).
		Msg("extracted url set")

	outcomes := Dispatch(urls, s.probeFunc(), s.conf.Concurrency, func(done, total int) {
		s.setProgress(done, total)
		s.logger.Debug().Int("done", done).Int("total", total).Msg("probe finished")
	})

	result.Outcomes = make(map[string]vo.ProbeOutcome, len(outcomes))
	for _, outcome := range outcomes {
		result.Outcomes[outcome.URL] = outcome
		if outcome.Healthy() {
			result.Healthy = append(result.Healthy, outcome.URL)
			continue
		}
		result.Failed = append(result.Failed, outcome.URL)
		if outcome.Verdict == vo.VerdictProbeError {
			s.logger.Debug().Str("url", outcome.URL).Str("reason", outcome.Reason).Msg("probe error")
		} else {
			s.logger.Debug().Str("url", outcome.URL).Int("code", outcome.Code).Str("contentType", outcome.ContentType).Msg("unhealthy")
		}
	}
	result.Duration = time.Since(start)
	result.Time = time.Now()
	scanDurationSummary.Observe(result.Duration.Seconds())

	dir := filepath.Dir(s.conf.Source)
	deadPath, errDead := reports.WriteDeadLinks(dir, result.Failed)
	if errDead != nil {
		err = errDead
		return
	}
	_, errHealthy := reports.WriteHealthyLinks(dir, result.Healthy)
	if errHealthy != nil {
		err = errHealthy
		return
	}
	if s.conf.Reveal {
		errReveal := s.revealer.Reveal(deadPath)
		if errReveal != nil {
			// reveal is best effort, the host may have no way to show a file
			s.logger.Debug().Err(errReveal).Str("path", deadPath).Msg("could not reveal report")
		}
	}

	s.storeResult(result)
	s.logger.Info().
		Int("healthy", len(result.Healthy)).
		Int("failed", len(result.Failed)).
		Dur("took", result.Duration).
		Msg("scan complete")
	return
}
