package engine

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/NextRouter/routingFlow/internal/model"
	"github.com/NextRouter/routingFlow/internal/routing"
)

// Usage is the joined result of one metrics fan-out: estimates per NIC and
// the raw per-IP samples for both directions. The per-IP samples are kept so
// the ranker can reuse them without a second fetch.
type Usage struct {
	Estimates map[string]float64
	RXSamples []model.IPSample
	TXSamples []model.IPSample
}

// Aggregator queries the metrics backend and folds per-IP samples into
// per-interface totals.
type Aggregator struct {
	source model.MetricSource
}

// NewAggregator creates an Aggregator on top of a metric source.
func NewAggregator(source model.MetricSource) *Aggregator {
	return &Aggregator{source: source}
}

// Collect issues the three independent queries (estimates, per-IP RX,
// per-IP TX) concurrently and joins all results before returning. A failed
// query degrades to a zero/empty result; only all three failing means the
// backend is unreachable, which is fatal for the cycle.
func (a *Aggregator) Collect(ctx context.Context) (*Usage, error) {
	var (
		estimates map[string]float64
		rxSamples []model.IPSample
		txSamples []model.IPSample

		estErr, rxErr, txErr error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		estimates, estErr = a.source.BandwidthEstimates(ctx)
	}()
	go func() {
		defer wg.Done()
		rxSamples, rxErr = a.source.RatesByIP(ctx, model.DirectionRX)
	}()
	go func() {
		defer wg.Done()
		txSamples, txErr = a.source.RatesByIP(ctx, model.DirectionTX)
	}()
	wg.Wait()

	if estErr != nil && rxErr != nil && txErr != nil {
		return nil, fmt.Errorf("metrics backend unreachable: %w", rxErr)
	}

	if estErr != nil {
		log.Printf("Bandwidth estimate query failed, treating estimates as zero: %v", estErr)
		estimates = map[string]float64{}
	}
	if rxErr != nil {
		log.Printf("Per-IP RX query failed, treating RX as zero: %v", rxErr)
		rxSamples = nil
	}
	if txErr != nil {
		log.Printf("Per-IP TX query failed, treating TX as zero: %v", txErr)
		txSamples = nil
	}

	return &Usage{
		Estimates: estimates,
		RXSamples: rxSamples,
		TXSamples: txSamples,
	}, nil
}

// Fold resolves each per-IP sample to its owning WAN role and sums
// same-direction samples per role, producing one draft report per WAN
// interface in wan0-then-wan1 order. A NIC with no estimate series gets
// 0.0: an interface that reports nothing is assumed idle. Summation is
// plain addition, so the totals are independent of sample order.
func (a *Aggregator) Fold(usage *Usage, ifaces model.InterfaceSet, ipMap *routing.Map) []model.InterfaceReport {
	rxTotals := make(map[model.Role]float64, len(model.WANRoles))
	txTotals := make(map[model.Role]float64, len(model.WANRoles))
	for _, sample := range usage.RXSamples {
		rxTotals[ipMap.Resolve(sample.IP)] += sample.Value
	}
	for _, sample := range usage.TXSamples {
		txTotals[ipMap.Resolve(sample.IP)] += sample.Value
	}

	reports := make([]model.InterfaceReport, 0, len(model.WANRoles))
	for _, role := range model.WANRoles {
		nic, _ := ifaces.NICForRole(role)
		reports = append(reports, model.InterfaceReport{
			Role:      role,
			NIC:       nic,
			Estimated: usage.Estimates[nic],
			ActualRX:  rxTotals[role],
			ActualTX:  txTotals[role],
		})
	}
	return reports
}
