package engine

import (
	"context"
	"log"

	"github.com/NextRouter/routingFlow/internal/model"
	"github.com/NextRouter/routingFlow/internal/routing"
)

// Monitor runs one bandwidth comparison cycle: snapshot resolution,
// metrics aggregation, estimate comparison and, for exceeded interfaces,
// top-consumer ranking. A Monitor holds no state across cycles.
type Monitor struct {
	status     model.StatusSource
	aggregator *Aggregator
	ifaces     model.InterfaceSet
}

// NewMonitor wires a Monitor from its two upstream sources and the
// configured interface set.
func NewMonitor(status model.StatusSource, metrics model.MetricSource, ifaces model.InterfaceSet) *Monitor {
	return &Monitor{
		status:     status,
		aggregator: NewAggregator(metrics),
		ifaces:     ifaces,
	}
}

// RunCycle executes the full resolver-to-ranker chain and returns a complete
// CycleResult, or an error with no result at all. A snapshot fetch failure
// degrades to an empty map (everything defaults to wan0); an unreachable
// metrics backend fails the cycle.
func (m *Monitor) RunCycle(ctx context.Context) (*model.CycleResult, error) {
	ipMap := m.resolveSnapshot(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	usage, err := m.aggregator.Collect(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reports := m.aggregator.Fold(usage, m.ifaces, ipMap)
	FinalizeAll(reports)

	var tops []model.TopIPEntry
	for _, report := range reports {
		if !report.Exceeded {
			continue
		}
		if entry, ok := TopConsumer(usage.RXSamples, ipMap, report.Role, model.DirectionRX); ok {
			tops = append(tops, entry)
		}
		if entry, ok := TopConsumer(usage.TXSamples, ipMap, report.Role, model.DirectionTX); ok {
			tops = append(tops, entry)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &model.CycleResult{
		Interfaces:   m.ifaces,
		Mappings:     ipMap.Assignments(),
		Reports:      reports,
		TopConsumers: tops,
	}, nil
}

func (m *Monitor) resolveSnapshot(ctx context.Context) *routing.Map {
	records, err := m.status.FetchSnapshot(ctx)
	if err != nil {
		log.Printf("Routing snapshot unavailable, defaulting all IPs to wan0: %v", err)
		return routing.EmptyMap()
	}
	return routing.NewMap(records)
}
