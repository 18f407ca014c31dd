package engine

import (
	"testing"

	"github.com/NextRouter/routingFlow/internal/model"
	"github.com/NextRouter/routingFlow/internal/routing"
)

func TestTopConsumerSelectsMaximum(t *testing.T) {
	ipMap := routing.NewMap([]model.Assignment{
		{IP: "10.0.0.2", Role: model.RoleWAN1},
		{IP: "10.0.0.3", Role: model.RoleWAN1},
	})
	samples := []model.IPSample{
		{IP: "10.0.0.2", Value: 2.5e8},
		{IP: "10.0.0.3", Value: 1.3e8},
		{IP: "10.0.0.10", Value: 9e8}, // wan0 by default, must not win on wan1
	}

	entry, ok := TopConsumer(samples, ipMap, model.RoleWAN1, model.DirectionRX)
	if !ok {
		t.Fatalf("Expected a top consumer")
	}
	if entry.IP != "10.0.0.2" || entry.Bandwidth != 2.5e8 {
		t.Errorf("Unexpected top consumer: %+v", entry)
	}
	if entry.Role != model.RoleWAN1 || entry.Direction != model.DirectionRX {
		t.Errorf("Entry not tagged with role/direction: %+v", entry)
	}
}

func TestTopConsumerTieKeepsFirstSeen(t *testing.T) {
	samples := []model.IPSample{
		{IP: "10.0.0.5", Value: 1e6},
		{IP: "10.0.0.6", Value: 1e6},
	}

	entry, ok := TopConsumer(samples, routing.EmptyMap(), model.RoleWAN0, model.DirectionTX)
	if !ok {
		t.Fatalf("Expected a top consumer")
	}
	if entry.IP != "10.0.0.5" {
		t.Errorf("Tie must keep first-seen sample, got %s", entry.IP)
	}
}

func TestTopConsumerNoneFound(t *testing.T) {
	// All traffic is unattributed wan0 traffic while the exceeded interface
	// is wan1: an explicit "none found", not an error.
	samples := []model.IPSample{
		{IP: "10.0.0.5", Value: 1e6},
	}

	if _, ok := TopConsumer(samples, routing.EmptyMap(), model.RoleWAN1, model.DirectionRX); ok {
		t.Errorf("Expected no top consumer for wan1")
	}
}

func TestTopConsumerEmptySamples(t *testing.T) {
	if _, ok := TopConsumer(nil, routing.EmptyMap(), model.RoleWAN0, model.DirectionRX); ok {
		t.Errorf("Expected no top consumer for empty samples")
	}
}
