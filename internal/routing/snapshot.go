package routing

import (
	"log"
	"sort"

	"github.com/NextRouter/routingFlow/internal/model"
)

// Map records which WAN role the routing snapshot assigned to each IP. It is
// a faithful copy of what the status source reported: the wan0 default for
// unknown IPs is applied lazily by Resolve, never stored. An empty Map is
// therefore equivalent to "assume everything is on wan0".
type Map struct {
	assignments map[string]model.Role
}

// NewMap builds a Map from snapshot records. Records carrying a role outside
// {wan0, wan1} are skipped; the lazy default still covers their IPs.
func NewMap(records []model.Assignment) *Map {
	assignments := make(map[string]model.Role, len(records))
	for _, rec := range records {
		switch rec.Role {
		case model.RoleWAN0, model.RoleWAN1:
			assignments[rec.IP] = rec.Role
		default:
			log.Printf("Skipping snapshot record for %s: unknown role %q", rec.IP, rec.Role)
		}
	}
	return &Map{assignments: assignments}
}

// EmptyMap returns a Map with no assignments, used when the status source is
// unavailable.
func EmptyMap() *Map {
	return &Map{assignments: map[string]model.Role{}}
}

// Resolve returns the WAN role owning the given IP, falling back to wan0 for
// any IP the snapshot did not mention.
func (m *Map) Resolve(ip string) model.Role {
	if role, ok := m.assignments[ip]; ok {
		return role
	}
	return model.RoleWAN0
}

// Len reports how many IPs the snapshot explicitly assigned.
func (m *Map) Len() int {
	return len(m.assignments)
}

// Assignments returns the recorded snapshot mappings sorted by IP, for
// reporting. Defaulted IPs are not included.
func (m *Map) Assignments() []model.Assignment {
	records := make([]model.Assignment, 0, len(m.assignments))
	for ip, role := range m.assignments {
		records = append(records, model.Assignment{IP: ip, Role: role})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].IP < records[j].IP })
	return records
}
