package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	totalDurationMs uint64

	mu       sync.Mutex
	upstream map[string]*UpstreamStats
}

type UpstreamStats struct {
	Calls      uint64 `json:"calls"`
	Failures   uint64 `json:"failures"`
	DurationMs uint64 `json:"durationMs"`
}

func New() *Collector {
	return &Collector{upstream: map[string]*UpstreamStats{}}
}

// Record counts one inbound console request.
func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordUpstream counts one call to the backend, keyed by endpoint template.
func (c *Collector) RecordUpstream(endpoint string, failed bool, duration time.Duration) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	stats, ok := c.upstream[endpoint]
	if !ok {
		stats = &UpstreamStats{}
		c.upstream[endpoint] = stats
	}
	stats.Calls++
	if failed {
		stats.Failures++
	}
	stats.DurationMs += uint64(duration.Milliseconds())
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	limited := atomic.LoadUint64(&c.rateLimited)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}

	c.mu.Lock()
	upstream := make(map[string]UpstreamStats, len(c.upstream))
	for endpoint, stats := range c.upstream {
		upstream[endpoint] = *stats
	}
	c.mu.Unlock()

	return map[string]any{
		"requestsTotal":    total,
		"errorsTotal":      errs,
		"rateLimitedTotal": limited,
		"avgDurationMs":    avg,
		"totalDurationMs":  totalMs,
		"upstream":         upstream,
	}
}
