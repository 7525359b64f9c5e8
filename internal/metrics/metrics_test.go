package metrics

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	assert.Equal(t, "success", Result(nil))
	assert.Equal(t, "failure", Result(errors.New("boom")))
}

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(BookingEventsTotal.WithLabelValues("pending"))
	BookingEventsTotal.WithLabelValues("pending").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(BookingEventsTotal.WithLabelValues("pending")))
}

func TestRegisterDBStatsIsIdempotent(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RegisterDBStats(db, "metrics_test"))
	require.NoError(t, RegisterDBStats(db, "metrics_test"))
}
