package linkprobe

import (
	"context"
	"errors"
	"time"

	"github.com/cueyang/linkprobe/source"
)

// RunLoop runs one scan immediately and then one per configured interval
// until ctx is cancelled. Scans run sequentially, a slow scan delays the next
// tick rather than overlapping it. No scan failure ever stops the loop.
func (s *Service) RunLoop(ctx context.Context) {
	s.scanCycle()
	ticker := time.NewTicker(time.Duration(s.conf.IntervalMinutes) * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("scan loop stopped")
			return
		case <-ticker.C:
			s.scanCycle()
		}
	}
}

// scanCycle contains every error a scan can raise, the loop only ever sees a
// completed cycle.
func (s *Service) scanCycle() {
	_, errScan := s.RunScan()
	if errScan == nil {
		return
	}
	s.storeError(errScan)
	if errors.Is(errScan, source.ErrSourceNotFound) {
		s.logger.Error().Err(errScan).Msg("data source missing, skipping this cycle")
		return
	}
	s.logger.Error().Err(errScan).Msg("scan aborted, waiting for next cycle")
}
