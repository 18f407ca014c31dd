package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NextRouter/routingFlow/internal/config"
	"github.com/NextRouter/routingFlow/internal/engine"
	"github.com/NextRouter/routingFlow/internal/metrics"
	"github.com/NextRouter/routingFlow/internal/notification"
	"github.com/NextRouter/routingFlow/internal/report"
	"github.com/NextRouter/routingFlow/internal/routing"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to the YAML configuration file.")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	metricSource, err := metrics.NewPrometheusSource(cfg.Monitor.PrometheusURL, cfg.QueryTimeout())
	if err != nil {
		log.Fatalf("Failed to create Prometheus source: %v", err)
	}
	statusClient := routing.NewClient(cfg.Monitor.StatusURL, cfg.QueryTimeout())

	monitor := engine.NewMonitor(statusClient, metricSource, cfg.Interfaces())

	// One cycle per invocation, cancellable until results are reported.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result, err := monitor.RunCycle(ctx)
	if err != nil {
		log.Fatalf("Monitoring cycle failed: %v", err)
	}

	if err := report.WriteText(os.Stdout, result); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	if cfg.NATS.Enabled {
		publisher, err := notification.NewPublisher(cfg.NATS)
		if err != nil {
			log.Printf("Skipping NATS publish: %v", err)
			return
		}
		defer publisher.Close()
		if err := publisher.Publish(result); err != nil {
			log.Printf("Failed to publish cycle result: %v", err)
		}
	}
}
