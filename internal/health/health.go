// Package health reports on the site's dependencies for /health and /ready.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/brightofhouse/site/internal/metrics"
	"github.com/redis/go-redis/v9"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// Probe returns nil when the component is usable.
type Probe func(ctx context.Context) error

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type StorageChecker interface {
	HealthCheck(ctx context.Context) error
}

type ComponentHealth struct {
	Name     string `json:"name"`
	Status   Status `json:"status"`
	Critical bool   `json:"critical"`
	Latency  int64  `json:"latency_ms"`
	Error    string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status     Status            `json:"status"`
	Version    string            `json:"version,omitempty"`
	Components []ComponentHealth `json:"components,omitempty"`
	LatencyP95 int64             `json:"latency_p95_ms"`
	Timestamp  time.Time         `json:"timestamp"`
}

type component struct {
	name     string
	critical bool
	probe    Probe
}

// Checker runs every registered probe in parallel. A failing critical probe
// makes the site unhealthy; a failing optional probe only degrades it.
type Checker struct {
	components []component
	timeout    time.Duration
	version    string
}

func NewChecker(version string) *Checker {
	return &Checker{timeout: 5 * time.Second, version: version}
}

func (c *Checker) Add(name string, critical bool, p Probe) *Checker {
	c.components = append(c.components, component{name: name, critical: critical, probe: p})
	return c
}

func (c *Checker) WithDatabase(p Pinger) *Checker {
	if p == nil {
		return c
	}
	return c.Add("database", true, p.Ping)
}

// WithRedis registers redis as optional; login codes fall back to postgres.
func (c *Checker) WithRedis(client *redis.Client) *Checker {
	if client == nil {
		return c
	}
	return c.Add("redis", false, func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
}

func (c *Checker) WithStorage(s StorageChecker) *Checker {
	if s == nil {
		return c
	}
	return c.Add("storage", true, s.HealthCheck)
}

// WithBinary registers an external tool lookup such as ffmpeg or cwebp.
func (c *Checker) WithBinary(name string, available func() error) *Checker {
	return c.Add(name, false, func(context.Context) error { return available() })
}

func (c *Checker) CheckAll(ctx context.Context) HealthResponse {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	results := make([]ComponentHealth, len(c.components))
	var wg sync.WaitGroup
	for i, comp := range c.components {
		wg.Add(1)
		go func(i int, comp component) {
			defer wg.Done()
			results[i] = run(ctx, comp)
		}(i, comp)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	status := StatusHealthy
	for _, r := range results {
		if r.Status != StatusHealthy {
			if r.Critical {
				status = StatusUnhealthy
				break
			}
			status = StatusDegraded
		}
	}

	return HealthResponse{
		Status:     status,
		Version:    c.version,
		Components: results,
		LatencyP95: metrics.GetLatencyP95(),
		Timestamp:  time.Now(),
	}
}

func run(ctx context.Context, comp component) ComponentHealth {
	start := time.Now()
	err := comp.probe(ctx)
	h := ComponentHealth{
		Name:     comp.name,
		Status:   StatusHealthy,
		Critical: comp.critical,
		Latency:  time.Since(start).Milliseconds(),
	}
	if err != nil {
		h.Status = StatusUnhealthy
		h.Error = err.Error()
	}
	return h
}

func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": string(StatusHealthy)})
	}
}

// ReadinessHandler answers 503 only when a critical component is down.
func ReadinessHandler(checker *Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := checker.CheckAll(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if resp.Status == StatusUnhealthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
