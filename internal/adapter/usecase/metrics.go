package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Status changes partitioned by source and target status
	statusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_status_transitions_total",
			Help: "Total number of applied campaign status transitions",
		},
		[]string{"from", "to"},
	)

	// Bulk operations partitioned by operation and outcome
	bulkOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_bulk_operations_total",
			Help: "Total number of campaign bulk operations",
		},
		[]string{"operation", "result"},
	)

	// Items written by successful bulk operations
	bulkItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_bulk_items_total",
			Help: "Total number of campaigns written or removed by bulk operations",
		},
		[]string{"operation"},
	)
)

func observeBulk(operation string, items int, err error) {
	if err != nil {
		bulkOperationsTotal.WithLabelValues(operation, "error").Inc()
		return
	}
	bulkOperationsTotal.WithLabelValues(operation, "ok").Inc()
	bulkItemsTotal.WithLabelValues(operation).Add(float64(items))
}
