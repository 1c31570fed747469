package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry("studio", prometheus.NewRegistry())

	m.IncBookingsCreated()
	m.IncBookingsCreated()
	m.IncBookingsCancelled()
	m.IncBookingConflicts()
	m.AddSlotsGenerated(9)
	m.AddSlotsGenerated(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreated.WithLabelValues("studio")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsCancelled.WithLabelValues("studio")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingConflicts.WithLabelValues("studio")))
	assert.Equal(t, 9.0, testutil.ToFloat64(m.SlotsGenerated.WithLabelValues("studio")))
}

func TestMetrics_HTTPAndDB(t *testing.T) {
	m := NewWithRegistry("studio", prometheus.NewRegistry())

	m.RecordHTTPRequest("GET", "/api/v1/studios", 200, 10*time.Millisecond)
	m.RecordDBQuery("select", time.Millisecond, nil)
	m.RecordDBQuery("select", time.Millisecond, sql.ErrNoRows)
	m.RecordDBQuery("insert", time.Millisecond, errors.New("duplicate"))
	m.RecordDBStats(sql.DBStats{OpenConnections: 3, InUse: 1, Idle: 2})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("studio", "GET", "/api/v1/studios", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("studio", "select")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("studio", "insert")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.DBOpenConnections.WithLabelValues("studio")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingsCreated()
		m.RecordHTTPRequest("GET", "/", 200, time.Second)
		m.RecordDBQuery("select", time.Second, nil)
		m.RecordDBStats(sql.DBStats{})
		m.AddSlotsGenerated(3)
	})
	assert.Empty(t, m.ServiceName())
}
