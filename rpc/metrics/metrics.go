// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus counters for RPC calls and kennel events
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/kittyd/fault"
)

const namespace = "kittyd"

var (
	calls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "calls_total",
			Help:      "RPC calls by method and result class.",
		},
		[]string{"method", "result"},
	)

	events = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kennel",
			Name:      "events_total",
			Help:      "Kennel events delivered by type.",
		},
		[]string{"event"},
	)

	connections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "connections",
			Help:      "Open RPC connections.",
		},
	)

	registry = prometheus.NewRegistry()
)

func init() {
	registry.MustRegister(calls, events, connections)
}

// Handler - the /metrics endpoint
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// Observe - count one call of an RPC method
func Observe(method string, err error) {
	calls.WithLabelValues(method, Result(err)).Inc()
}

// Event - count one delivered kennel event
func Event(name string) {
	events.WithLabelValues(name).Inc()
}

// Connected - track the open connection count
func Connected(open uint64) {
	connections.Set(float64(open))
}

// Result - label for the outcome of a call
func Result(err error) string {
	switch {
	case nil == err:
		return "ok"
	case fault.IsErrExists(err):
		return "exists"
	case fault.IsErrInvalid(err):
		return "invalid"
	case fault.IsErrLength(err):
		return "length"
	case fault.IsErrNotFound(err):
		return "not_found"
	case fault.IsErrProcess(err):
		return "process"
	case fault.IsErrRecord(err):
		return "record"
	default:
		return "error"
	}
}
