package linkprobe

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/temoto/robotstxt"
)

// robotsGate answers whether a URL may be probed at all. It caches one
// robots.txt lookup per host for the duration of a scan. A host whose
// robots.txt cannot be fetched or parsed is not gated.
type robotsGate struct {
	agent  string
	client *http.Client
	mu     sync.Mutex
	groups map[string]*robotstxt.Group
}

func newRobotsGate(client *http.Client, agent string) *robotsGate {
	return &robotsGate{
		agent:  agent,
		client: client,
		groups: map[string]*robotstxt.Group{},
	}
}

func (g *robotsGate) allowed(targetURL string) bool {
	u, errParse := url.Parse(targetURL)
	if errParse != nil {
		// let the probe report the broken URL itself
		return true
	}
	// fetches are serialized, the host set of a scan is small
	g.mu.Lock()
	defer g.mu.Unlock()
	group, ok := g.groups[u.Host]
	if !ok {
		group = g.fetchGroup(u.Scheme + "://" + u.Host)
		g.groups[u.Host] = group
	}
	if group == nil {
		return true
	}
	// robots rules can match on the query too
	path := u.Path
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return group.Test(path)
}

func (g *robotsGate) fetchGroup(baseURL string) *robotstxt.Group {
	resp, errGet := g.client.Get(baseURL + "/robots.txt")
	if errGet != nil {
		return nil
	}
	defer resp.Body.Close()
	data, errParse := robotstxt.FromResponse(resp)
	if errParse != nil {
		return nil
	}
	return data.FindGroup(g.agent)
}
