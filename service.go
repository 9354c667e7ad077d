package linkprobe

import (
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/cueyang/linkprobe/config"
	"github.com/cueyang/linkprobe/reveal"
	"github.com/cueyang/linkprobe/source"
	"github.com/cueyang/linkprobe/vo"
)

// Service owns everything one scan needs: the source reader, the probe
// client, the revealer and the logger. It is safe for the status endpoint to
// read from it while a scan is running.
type Service struct {
	conf     *config.Config
	logger   zerolog.Logger
	reader   source.Reader
	revealer reveal.Revealer
	client   *http.Client

	mu     sync.Mutex
	status vo.Status
}

func NewService(conf *config.Config, logger zerolog.Logger, revealer reveal.Revealer) (s *Service, err error) {
	reader, errReader := source.Open(conf.Source)
	if errReader != nil {
		err = errReader
		return
	}
	if revealer == nil {
		revealer = reveal.Nop{}
	}
	setupMetrics()
	s = &Service{
		conf:     conf,
		logger:   logger,
		reader:   reader,
		revealer: revealer,
		client:   NewProbeClient(time.Duration(conf.TimeoutSeconds) * time.Second),
	}
	return
}

// probeFunc binds the configured client, agent and optional robots gate into
// the function the dispatcher fans out. The gate is fresh per scan so a
// changed robots.txt is picked up on the next cycle.
func (s *Service) probeFunc() ProbeFunc {
	var gate *robotsGate
	if s.conf.RespectRobots {
		gate = newRobotsGate(s.client, s.conf.Agent)
	}
	return func(targetURL string) vo.ProbeOutcome {
		if gate != nil && !gate.allowed(targetURL) {
			return vo.ProbeOutcome{
				URL:     targetURL,
				Verdict: vo.VerdictProbeError,
				Reason:  "blocked by robots.txt",
				Time:    time.Now(),
			}
		}
		return Probe(s.client, s.conf.Agent, targetURL)
	}
}

// Status returns a copy of the current service status.
func (s *Service) Status() vo.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Service) setScanning(scanning bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.Scanning = scanning
	if scanning {
		s.status.Done = 0
		s.status.Total = 0
	}
}

func (s *Service) setProgress(done, total int) {
	progressGaugeDone.Set(float64(done))
	progressGaugeTotal.Set(float64(total))
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.Done = done
	s.status.Total = total
}

func (s *Service) storeResult(result vo.ScanResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.LastScan = &result
	s.status.LastError = ""
	s.status.LastRun = result.Time
}

func (s *Service) storeError(errScan error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.LastError = errScan.Error()
	s.status.LastRun = time.Now()
}
