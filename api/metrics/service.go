// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewService returns a new prometheus registry and the handler serving it.
// The registry includes the Go runtime and process collectors.
func NewService() (*prometheus.Registry, http.Handler, error) {
	registry := prometheus.NewRegistry()
	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, nil, err
	}
	if err := registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, nil, err
	}

	handler := promhttp.InstrumentMetricHandler(
		registry,
		promhttp.HandlerFor(
			registry,
			promhttp.HandlerOpts{},
		),
	)
	return registry, handler, nil
}
