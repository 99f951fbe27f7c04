// Package metrics provides application-level counters using stdlib expvar.
// Counters are automatically exported on the /debug/vars HTTP endpoint
// when expvar's handler is mounted by the API server.
package metrics

import "expvar"

// Operation counters.
var (
	RegisterTotal       = expvar.NewInt("patternkit_register_total")
	CloneTotal          = expvar.NewInt("patternkit_clone_total")
	CloneMissTotal      = expvar.NewInt("patternkit_clone_miss_total")
	OrdersProcessed     = expvar.NewInt("patternkit_orders_processed_total")
	OrdersFailed        = expvar.NewInt("patternkit_orders_failed_total")
	SessionsCreated     = expvar.NewInt("patternkit_sessions_created_total")
	FlyweightsAllocated = expvar.NewInt("patternkit_flyweights_allocated_total")
)

// Inc increments the given counter by 1.
func Inc(counter *expvar.Int) { counter.Add(1) }

// Snapshot returns the current value of every counter keyed by its short name.
func Snapshot() map[string]int64 {
	return map[string]int64{
		"register":             RegisterTotal.Value(),
		"clone":                CloneTotal.Value(),
		"clone_miss":           CloneMissTotal.Value(),
		"orders_processed":     OrdersProcessed.Value(),
		"orders_failed":        OrdersFailed.Value(),
		"sessions_created":     SessionsCreated.Value(),
		"flyweights_allocated": FlyweightsAllocated.Value(),
	}
}
