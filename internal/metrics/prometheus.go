package metrics

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/prometheus/client_golang/api"
	promv1 "github.com/prometheus/client_golang/api/prometheus/v1"
	prommodel "github.com/prometheus/common/model"

	"github.com/NextRouter/routingFlow/internal/model"
)

const (
	// estimateQuery yields one series per NIC; the interface label carries
	// the physical NIC name.
	estimateQuery = "tcp_traffic_scan_tcp_bandwidth_avg_bps"
	// perIPQueryFmt yields one series per IP for a direction, unfiltered by
	// interface.
	perIPQueryFmt = "sum by (ip) (network_ip_%s_bps)"
)

// PrometheusSource implements model.MetricSource against a Prometheus
// query API.
type PrometheusSource struct {
	api     promv1.API
	timeout time.Duration
}

// NewPrometheusSource creates a metric source for the given Prometheus base
// URL. Each query is bounded by the given timeout.
func NewPrometheusSource(baseURL string, timeout time.Duration) (*PrometheusSource, error) {
	client, err := api.NewClient(api.Config{Address: baseURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus client: %w", err)
	}
	return &PrometheusSource{
		api:     promv1.NewAPI(client),
		timeout: timeout,
	}, nil
}

// BandwidthEstimates returns the estimated bandwidth per NIC. NICs with no
// series are simply absent from the map; callers treat absence as 0.0.
func (s *PrometheusSource) BandwidthEstimates(ctx context.Context) (map[string]float64, error) {
	vec, err := s.query(ctx, estimateQuery)
	if err != nil {
		return nil, err
	}

	estimates := make(map[string]float64, len(vec))
	for _, sample := range vec {
		nic := string(sample.Metric["interface"])
		if nic == "" {
			continue
		}
		estimates[nic] = float64(sample.Value)
	}
	return estimates, nil
}

// RatesByIP returns the current per-IP rates for one direction.
func (s *PrometheusSource) RatesByIP(ctx context.Context, dir model.Direction) ([]model.IPSample, error) {
	vec, err := s.query(ctx, fmt.Sprintf(perIPQueryFmt, dir))
	if err != nil {
		return nil, err
	}

	samples := make([]model.IPSample, 0, len(vec))
	for _, sample := range vec {
		ip := string(sample.Metric["ip"])
		if ip == "" {
			continue
		}
		samples = append(samples, model.IPSample{IP: ip, Value: float64(sample.Value)})
	}
	return samples, nil
}

func (s *PrometheusSource) query(ctx context.Context, expr string) (prommodel.Vector, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	value, warnings, err := s.api.Query(ctx, expr, time.Now())
	if err != nil {
		return nil, fmt.Errorf("prometheus query %q failed: %w", expr, err)
	}
	if len(warnings) > 0 {
		log.Printf("Prometheus query %q returned warnings: %v", expr, warnings)
	}

	vec, ok := value.(prommodel.Vector)
	if !ok {
		return nil, fmt.Errorf("prometheus query %q returned %s, expected vector", expr, value.Type())
	}
	return vec, nil
}
