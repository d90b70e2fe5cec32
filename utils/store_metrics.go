package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total number of store mutations",
		},
		[]string{"operation"}, // add_task, update_task, delete_task, ...
	)

	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Total number of store errors by type",
		},
		[]string{"type"}, // persist, serialize, restore_*
	)
)

// TrackStoreOperation increments the mutation counter
func TrackStoreOperation(operation string) {
	StoreOperationsTotal.WithLabelValues(operation).Inc()
}

// TrackStoreError increments the error counter by type
func TrackStoreError(errorType string) {
	StoreErrorsTotal.WithLabelValues(errorType).Inc()
}
