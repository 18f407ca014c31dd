package model

import "context"

// Role identifies one of the monitored interface slots.
type Role string

const (
	RoleLAN  Role = "lan"
	RoleWAN0 Role = "wan0"
	RoleWAN1 Role = "wan1"
)

// WANRoles lists the monitored WAN slots in report order.
var WANRoles = []Role{RoleWAN0, RoleWAN1}

// Direction distinguishes receive from transmit traffic.
type Direction string

const (
	DirectionRX Direction = "rx"
	DirectionTX Direction = "tx"
)

// InterfaceSet maps the role slots to physical NIC names (e.g. "eth0").
// It is loaded once at startup and never changes during a run.
type InterfaceSet struct {
	LAN  string `json:"lan"`
	WAN0 string `json:"wan0"`
	WAN1 string `json:"wan1"`
}

// NICForRole returns the physical NIC name for a WAN role.
func (s InterfaceSet) NICForRole(role Role) (string, bool) {
	switch role {
	case RoleWAN0:
		return s.WAN0, true
	case RoleWAN1:
		return s.WAN1, true
	default:
		return "", false
	}
}

// Assignment is one routing snapshot record: an IP currently routed
// through a WAN role.
type Assignment struct {
	IP   string `json:"ip"`
	Role Role   `json:"role"`
}

// IPSample is a single per-IP traffic measurement in bits per second.
type IPSample struct {
	IP    string
	Value float64
}

// InterfaceReport is the per-WAN comparison of estimated versus actual
// bandwidth for one cycle.
type InterfaceReport struct {
	Role        Role    `json:"role"`
	NIC         string  `json:"nic"`
	Estimated   float64 `json:"estimated_bps"`
	ActualRX    float64 `json:"actual_rx_bps"`
	ActualTX    float64 `json:"actual_tx_bps"`
	ActualTotal float64 `json:"actual_total_bps"`
	Exceeded    bool    `json:"exceeded"`
}

// TopIPEntry names the heaviest consumer in one direction on an exceeded
// interface.
type TopIPEntry struct {
	Role      Role      `json:"role"`
	Direction Direction `json:"direction"`
	IP        string    `json:"ip"`
	Bandwidth float64   `json:"bandwidth_bps"`
}

// CycleResult is the complete output of one monitoring cycle. Mappings is
// what the routing snapshot actually reported (IPs covered only by the wan0
// default do not appear). Reports are ordered wan0 then wan1; TopConsumers
// holds zero to two entries per exceeded interface.
type CycleResult struct {
	Interfaces   InterfaceSet      `json:"interfaces"`
	Mappings     []Assignment      `json:"mappings"`
	Reports      []InterfaceReport `json:"reports"`
	TopConsumers []TopIPEntry      `json:"top_consumers"`
}

// MetricSource is the query capability of the time-series backend.
type MetricSource interface {
	// BandwidthEstimates returns the estimated bandwidth per physical NIC,
	// keyed by the NIC name carried in the series' interface label.
	BandwidthEstimates(ctx context.Context) (map[string]float64, error)
	// RatesByIP returns the current per-IP rates for one direction,
	// IP-keyed and unfiltered by interface.
	RatesByIP(ctx context.Context, dir Direction) ([]IPSample, error)
}

// StatusSource fetches the point-in-time routing snapshot.
type StatusSource interface {
	FetchSnapshot(ctx context.Context) ([]Assignment, error)
}
