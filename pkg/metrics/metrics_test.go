package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry("table-booking", prometheus.NewRegistry())

	m.BookingCreated("pending")
	m.BookingCreated("pending")
	m.BookingsExpired(3)
	m.BookingsExpired(0)
	m.ObserveDBQuery("query", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsCreated.WithLabelValues("table-booking", "pending")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.bookingsExpired.WithLabelValues("table-booking")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("table-booking", "query")))
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.BookingCreated("pending")
		m.BookingStatusChanged("confirmed")
		m.BookingsExpired(1)
		m.SlotsOffered(4)
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
		m.ObserveDBQuery("exec", time.Second, nil)
		m.SetDBConnections(1, 1, 0)
	})
}
