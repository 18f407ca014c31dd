// mockbackend fakes the two upstream collaborators of rf-monitor: the
// routing status endpoint and the Prometheus query API. Useful for local
// runs and demos without a router or a metrics stack.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

const statusBody = `{
  "config": {"lan": "eth2", "wan0": "eth0", "wan1": "eth1"},
  "mappings": {
    "10.0.0.2": "wan1",
    "10.0.0.3": "wan1",
    "10.0.0.10": "wan0"
  }
}`

func main() {
	addr := flag.String("addr", ":32599", "Listen address for the mock backend.")
	flag.Parse()

	r := mux.NewRouter()
	r.HandleFunc("/status", statusHandler).Methods("GET")
	r.HandleFunc("/api/v1/query", queryHandler).Methods("GET", "POST")

	log.Printf("Mock backend listening on %s", *addr)
	if err := http.ListenAndServe(*addr, r); err != nil {
		log.Fatalf("Mock backend failed: %v", err)
	}
}

func statusHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, statusBody)
}

// queryHandler answers the three query shapes rf-monitor issues with canned
// instant vectors.
func queryHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	expr := r.Form.Get("query")

	var results []string
	switch {
	case strings.Contains(expr, "tcp_bandwidth_avg_bps"):
		results = []string{
			vectorSample(`"interface":"eth0"`, "1e+09"),
			vectorSample(`"interface":"eth1"`, "5e+08"),
		}
	case strings.Contains(expr, "network_ip_rx_bps"):
		results = []string{
			vectorSample(`"ip":"10.0.0.2"`, "2.5e+08"),
			vectorSample(`"ip":"10.0.0.3"`, "1.3e+08"),
			vectorSample(`"ip":"10.0.0.10"`, "4.0e+08"),
		}
	case strings.Contains(expr, "network_ip_tx_bps"):
		results = []string{
			vectorSample(`"ip":"10.0.0.2"`, "2.4e+08"),
			vectorSample(`"ip":"10.0.0.10"`, "3.7e+08"),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"success","data":{"resultType":"vector","result":[%s]}}`,
		strings.Join(results, ","))
}

func vectorSample(label, value string) string {
	return fmt.Sprintf(`{"metric":{%s},"value":[1700000000,"%s"]}`, label, value)
}
