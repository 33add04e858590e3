// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainext

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/nftext/utils/wrappers"
)

const (
	funcLabel   = "func"
	statusLabel = "status"
)

var _ Extension = (*meteredExtension)(nil)

type meteredExtension struct {
	Extension

	calls    *prometheus.CounterVec
	errs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMeteredExtension reports the number of calls, aborted calls and call
// latency of [ext], per function id.
func NewMeteredExtension(
	ext Extension,
	namespace string,
	reg prometheus.Registerer,
) (Extension, error) {
	m := &meteredExtension{
		Extension: ext,
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calls",
				Help:      "Number of completed calls by function and returned status",
			},
			[]string{funcLabel, statusLabel},
		),
		errs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "call_errors",
				Help:      "Number of aborted calls by function",
			},
			[]string{funcLabel},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "call_duration",
				Help:      "Time spent handling a call in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{funcLabel},
		),
	}

	errs := wrappers.Errs{}
	errs.Add(
		reg.Register(m.calls),
		reg.Register(m.errs),
		reg.Register(m.duration),
	)
	return m, errs.Err
}

func (m *meteredExtension) Call(env Environment) (RetVal, error) {
	fn := FuncLabel(env.FuncID())

	start := time.Now()
	retVal, err := m.Extension.Call(env)
	m.duration.WithLabelValues(fn).Observe(time.Since(start).Seconds())

	if err != nil {
		m.errs.WithLabelValues(fn).Inc()
		return retVal, err
	}
	m.calls.WithLabelValues(fn, strconv.FormatUint(uint64(retVal.Flags), 10)).Inc()
	return retVal, nil
}
