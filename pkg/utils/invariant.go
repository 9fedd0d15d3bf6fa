// Package utils holds the ambient pieces shared by dlist packages: invariants, logging and build info.
//
// Invariants are conditions that must hold unless there is a bug in this codebase, e.g. a list's forward chain
// being exactly as long as its element count. Raising an invariant records an error log and bumps a prometheus
// counter instead of crashing the host program; the caller still decides how to bail out of the broken state.
// Test builds (TestMode=true) panic so that violations can't go unnoticed.
//
// Don't raise invariants for caller mistakes such as an out-of-range index; those are regular errors.

package utils

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	promclient "github.com/prometheus/client_model/go"
)

var invariantsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "invariants_total",
	Help: "The total number of invariant violations",
}, []string{
	"module", // The package that raised the invariant.
	"type",   // The kind of violation.
})

// RaiseInvariant reports a violated invariant of `module`. The `args` are attached to the log record.
func RaiseInvariant(module, invariantType, msg string, args ...any) {
	invariantsMetric.WithLabelValues(module, invariantType).Inc()
	slog.With("invariant", invariantType, "module", module).Error(msg, args...)
	if IsTestMode {
		panic("invariant violated: " + invariantType)
	}
}

// GetMetricValue returns how many times the invariant `invariantType` of `module` has been raised.
func GetMetricValue(module, invariantType string) int {
	var metric = &promclient.Metric{}
	if err := invariantsMetric.WithLabelValues(module, invariantType).Write(metric); err != nil {
		slog.Error(err.Error())
		return 0
	}
	return int(metric.Counter.GetValue())
}
