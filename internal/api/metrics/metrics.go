// Package metrics defines the Prometheus metrics for the food-planner seeder.
// All metrics register with the default registry on package init, so they
// show up on the status server's /metrics endpoint and in textfile exports.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "foodplanner_seed"

// ── Run metrics ───────────────────────────────────────────────────────────────

// SeedRunsTotal counts seeding runs.
// Label:
//   - result: "success", "collection_exists", "duplicate_key", "locked" or "error"
var SeedRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "runs_total",
		Help:      "Total number of seeding runs, by result.",
	},
	[]string{"result"},
)

// SeedRunDuration measures a whole seeding run, successful or not.
var SeedRunDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Duration of a seeding run from lock to last insert.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Document metrics ──────────────────────────────────────────────────────────

// DocumentsInsertedTotal counts documents written.
// Label:
//   - collection: "Roles" or "Users"
var DocumentsInsertedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_inserted_total",
		Help:      "Total number of documents inserted, by collection.",
	},
	[]string{"collection"},
)

// VerifyProblems is the number of mismatches found by the last verification.
var VerifyProblems = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "verify_problems",
		Help:      "Number of differences between stored and expected seed data at last check.",
	},
)

// WriteTextfile dumps the default registry in the node-exporter textfile
// format. The write goes through a temp file and rename.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
