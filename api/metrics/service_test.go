// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	require := require.New(t)

	registry, handler, err := NewService()
	require.NoError(err)

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_counter",
		Help: "counter used by the test",
	})
	require.NoError(registry.Register(counter))
	counter.Add(3)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ext/metrics", nil))
	require.Equal(http.StatusOK, w.Code)
	require.Contains(w.Body.String(), "test_counter 3")
	require.Contains(w.Body.String(), "promhttp_metric_handler_requests_total")
}
