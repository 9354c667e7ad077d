package linkprobe

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cueyang/linkprobe/vo"
)

func newRobotsServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("User-agent: *\nDisallow: /private\nDisallow: /x.mp4?v=\n"))
	})
	mux.HandleFunc("/x.mp4", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")
	})
	mux.HandleFunc("/private/x.mp4", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRobotsGate(t *testing.T) {
	server := newRobotsServer(t)
	gate := newRobotsGate(NewProbeClient(time.Second*2), "test-agent")

	assert.True(t, gate.allowed(server.URL+"/x.mp4"))
	assert.False(t, gate.allowed(server.URL+"/private/x.mp4"))
	// broken URLs pass through, the probe reports them itself
	assert.True(t, gate.allowed("http://\x00bad"))
}

func TestRobotsGateMatchesQuery(t *testing.T) {
	server := newRobotsServer(t)
	gate := newRobotsGate(NewProbeClient(time.Second*2), "test-agent")

	assert.True(t, gate.allowed(server.URL+"/x.mp4"))
	assert.False(t, gate.allowed(server.URL+"/x.mp4?v=2"))
}

func TestRobotsGateUnreachableHostIsNotGated(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	deadURL := server.URL
	server.Close()

	gate := newRobotsGate(NewProbeClient(time.Millisecond*200), "test-agent")
	assert.True(t, gate.allowed(deadURL+"/anything"))
}

func TestRunScanRespectsRobots(t *testing.T) {
	server := newRobotsServer(t)
	dir := t.TempDir()
	allowedURL := "http://media.test/x.mp4"
	blockedURL := "http://media.test/private/x.mp4"
	sourcePath := writeSource(t, dir, allowedURL+" "+blockedURL)

	conf := testConfig(sourcePath)
	conf.RespectRobots = true
	s := newTestService(t, conf, server, &recordingRevealer{})

	result, errScan := s.RunScan()
	require.NoError(t, errScan)
	assert.Equal(t, []string{allowedURL}, result.Healthy)
	assert.Equal(t, []string{blockedURL}, result.Failed)
	outcome := result.Outcomes[blockedURL]
	assert.Equal(t, vo.VerdictProbeError, outcome.Verdict)
	assert.Equal(t, "blocked by robots.txt", outcome.Reason)
}
