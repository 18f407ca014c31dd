package engine

import (
	"github.com/NextRouter/routingFlow/internal/model"
	"github.com/NextRouter/routingFlow/internal/routing"
)

// TopConsumer selects the heaviest per-IP sample among those resolving to
// the given WAN role. Ties keep the first-seen sample, so the result is
// deterministic for a fixed input order. The second return is false when no
// sample resolves to the role, which callers report as "no top IP found"
// rather than an error.
func TopConsumer(samples []model.IPSample, ipMap *routing.Map, role model.Role, dir model.Direction) (model.TopIPEntry, bool) {
	var (
		best  model.IPSample
		found bool
	)
	for _, sample := range samples {
		if ipMap.Resolve(sample.IP) != role {
			continue
		}
		if !found || sample.Value > best.Value {
			best = sample
			found = true
		}
	}
	if !found {
		return model.TopIPEntry{}, false
	}
	return model.TopIPEntry{
		Role:      role,
		Direction: dir,
		IP:        best.IP,
		Bandwidth: best.Value,
	}, true
}
