package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/NextRouter/routingFlow/internal/model"
)

// WriteText renders one cycle result as a plain-text report.
func WriteText(w io.Writer, result *model.CycleResult) error {
	var b strings.Builder

	b.WriteString("=== Bandwidth Monitoring Report ===\n\n")
	b.WriteString("Network Configuration:\n")
	fmt.Fprintf(&b, "  LAN:  %s\n", result.Interfaces.LAN)
	fmt.Fprintf(&b, "  WAN0: %s\n", result.Interfaces.WAN0)
	fmt.Fprintf(&b, "  WAN1: %s\n", result.Interfaces.WAN1)

	fmt.Fprintf(&b, "\nIP Mappings (%d):\n", len(result.Mappings))
	if len(result.Mappings) == 0 {
		b.WriteString("  (none; all IPs default to wan0)\n")
	}
	for _, m := range result.Mappings {
		fmt.Fprintf(&b, "  %s -> %s\n", m.IP, m.Role)
	}

	b.WriteString("\nBandwidth Comparison:\n")
	for _, r := range result.Reports {
		fmt.Fprintf(&b, "\n  Interface: %s (%s)\n", r.Role, r.NIC)
		fmt.Fprintf(&b, "    Estimated Bandwidth: %.2f bps\n", r.Estimated)
		fmt.Fprintf(&b, "    Actual RX: %.2f bps\n", r.ActualRX)
		fmt.Fprintf(&b, "    Actual TX: %.2f bps\n", r.ActualTX)
		fmt.Fprintf(&b, "    Actual Total: %.2f bps\n", r.ActualTotal)
		if r.Exceeded {
			b.WriteString("    Exceeded: YES\n")
			writeTopConsumers(&b, result, r.Role)
		} else {
			b.WriteString("    Exceeded: no\n")
		}
	}

	b.WriteString("\n=== End of Report ===\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTopConsumers(b *strings.Builder, result *model.CycleResult, role model.Role) {
	found := false
	for _, top := range result.TopConsumers {
		if top.Role != role {
			continue
		}
		found = true
		fmt.Fprintf(b, "    Top %s IP: %s (%.2f bps)\n",
			strings.ToUpper(string(top.Direction)), top.IP, top.Bandwidth)
	}
	if !found {
		b.WriteString("    No attributable top IP found\n")
	}
}
