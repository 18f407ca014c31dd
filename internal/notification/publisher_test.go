package notification

import (
	"encoding/json"
	"testing"

	"github.com/NextRouter/routingFlow/internal/model"
)

func TestEncodeResultShape(t *testing.T) {
	result := &model.CycleResult{
		Interfaces: model.InterfaceSet{LAN: "eth2", WAN0: "eth0", WAN1: "eth1"},
		Mappings: []model.Assignment{
			{IP: "10.0.0.2", Role: model.RoleWAN1},
		},
		Reports: []model.InterfaceReport{
			{Role: model.RoleWAN1, NIC: "eth1", Estimated: 5e8, ActualRX: 3.8e8, ActualTX: 2.4e8, ActualTotal: 6.2e8, Exceeded: true},
		},
		TopConsumers: []model.TopIPEntry{
			{Role: model.RoleWAN1, Direction: model.DirectionRX, IP: "10.0.0.2", Bandwidth: 2.5e8},
		},
	}

	data, err := encodeResult(result)
	if err != nil {
		t.Fatalf("encodeResult failed: %v", err)
	}

	var payload struct {
		Interfaces model.InterfaceSet `json:"interfaces"`
		Mappings   []model.Assignment `json:"mappings"`
		Reports    []struct {
			Role     model.Role `json:"role"`
			NIC      string     `json:"nic"`
			Exceeded bool       `json:"exceeded"`
		} `json:"reports"`
		TopConsumers []struct {
			IP string `json:"ip"`
		} `json:"top_consumers"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("Published payload is not valid JSON: %v", err)
	}

	// Subscribers need the NIC names, not just the role tokens.
	if payload.Interfaces.WAN0 != "eth0" || payload.Interfaces.WAN1 != "eth1" {
		t.Errorf("Interface set missing from payload: %+v", payload.Interfaces)
	}
	if len(payload.Mappings) != 1 || payload.Mappings[0].IP != "10.0.0.2" {
		t.Errorf("Snapshot mappings missing from payload: %+v", payload.Mappings)
	}
	if len(payload.Reports) != 1 || payload.Reports[0].NIC != "eth1" || !payload.Reports[0].Exceeded {
		t.Errorf("Unexpected reports in payload: %+v", payload.Reports)
	}
	if len(payload.TopConsumers) != 1 || payload.TopConsumers[0].IP != "10.0.0.2" {
		t.Errorf("Unexpected top consumers in payload: %+v", payload.TopConsumers)
	}
}
