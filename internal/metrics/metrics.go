package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nikmy/dbconn/pkg/envelope"
)

const (
	StoreDocuments = "docstore"
	StoreHosted    = "hosted"

	OutcomeSuccess = "success"
)

var operations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "dbconn",
		Name:      "operations_total",
		Help:      "Connector operations by store, operation and outcome.",
	},
	[]string{"store", "operation", "outcome"},
)

// Observe counts env and returns it unchanged.
func Observe(store, operation string, env envelope.Envelope) envelope.Envelope {
	operations.WithLabelValues(store, operation, outcome(env)).Inc()
	return env
}

func outcome(env envelope.Envelope) string {
	if env.Success {
		return OutcomeSuccess
	}
	return string(env.Kind)
}
