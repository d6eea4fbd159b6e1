// Package metrics records sync engine activity.
//
// The engine and the controller talk to a [Recorder]; [Prometheus] exports the
// values on a private registry served by [Prometheus.Handler], and [Nop]
// discards them.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/cadet-sync/models"
)

const namespace = "cadet_sync"

// Recorder receives engine observations.
type Recorder interface {
	ObserveSyncPass(result models.SyncResult, duration time.Duration)
	ObserveCacheRefresh(success bool, duration time.Duration)
	SetQueueDepth(n int)
	SetOnline(online bool)
}

// Prometheus is a [Recorder] backed by client_golang collectors.
type Prometheus struct {
	registry *prometheus.Registry

	passes         *prometheus.CounterVec
	passDuration   prometheus.Histogram
	items          *prometheus.CounterVec
	flagged        prometheus.Gauge
	cacheRefreshes *prometheus.CounterVec
	cacheDuration  prometheus.Histogram
	queueDepth     prometheus.Gauge
	online         prometheus.Gauge
}

func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_passes_total",
			Help:      "Sync passes by outcome (success, partial, rejected).",
		}, []string{"outcome"}),
		passDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_pass_duration_seconds",
			Help:      "Wall time of sync passes that reached the backend.",
			Buckets:   prometheus.DefBuckets,
		}),
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_items_total",
			Help:      "Queue items processed by result (synced, rejected, retained).",
		}, []string{"result"}),
		flagged: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sync_items_flagged",
			Help:      "Items at or above the attempt threshold after the last pass.",
		}),
		cacheRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_refreshes_total",
			Help:      "Reference cache refreshes by outcome.",
		}, []string{"outcome"}),
		cacheDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cache_refresh_duration_seconds",
			Help:      "Wall time of reference cache refreshes.",
			Buckets:   prometheus.DefBuckets,
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sync_queue_depth",
			Help:      "Items waiting in the mutation queue.",
		}),
		online: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "online",
			Help:      "1 when the backend is reachable.",
		}),
	}

	p.registry.MustRegister(
		p.passes, p.passDuration, p.items, p.flagged,
		p.cacheRefreshes, p.cacheDuration, p.queueDepth, p.online,
		collectors.NewGoCollector(),
	)

	return p
}

// ObserveSyncPass records one finished pass. Passes refused before touching
// the queue (offline, already running) count as "rejected" and carry no
// duration.
func (p *Prometheus) ObserveSyncPass(result models.SyncResult, duration time.Duration) {
	processed := result.Synced + result.Errors + result.Retained

	switch {
	case result.Success:
		p.passes.WithLabelValues("success").Inc()
	case processed == 0 && result.Message != "":
		p.passes.WithLabelValues("rejected").Inc()
		return
	default:
		p.passes.WithLabelValues("partial").Inc()
	}

	p.passDuration.Observe(duration.Seconds())
	p.items.WithLabelValues("synced").Add(float64(result.Synced))
	p.items.WithLabelValues("rejected").Add(float64(result.Errors))
	p.items.WithLabelValues("retained").Add(float64(result.Retained))
	p.flagged.Set(float64(result.Flagged))
}

func (p *Prometheus) ObserveCacheRefresh(success bool, duration time.Duration) {
	outcome := "error"
	if success {
		outcome = "success"
	}
	p.cacheRefreshes.WithLabelValues(outcome).Inc()
	p.cacheDuration.Observe(duration.Seconds())
}

func (p *Prometheus) SetQueueDepth(n int) {
	p.queueDepth.Set(float64(n))
}

func (p *Prometheus) SetOnline(online bool) {
	if online {
		p.online.Set(1)
		return
	}
	p.online.Set(0)
}

// Handler serves the registry in the Prometheus text format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Nop is a [Recorder] that records nothing.
type Nop struct{}

func (Nop) ObserveSyncPass(models.SyncResult, time.Duration) {}
func (Nop) ObserveCacheRefresh(bool, time.Duration)          {}
func (Nop) SetQueueDepth(int)                                {}
func (Nop) SetOnline(bool)                                   {}
