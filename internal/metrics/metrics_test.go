package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndRecord(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := New("gpay_extractor_test")
	require.NoError(t, c.Register(registry))

	c.RecordExtraction("ok", 3, 150*time.Millisecond)
	c.RecordExtraction("error", 0, 10*time.Millisecond)
	c.RecordChecks(4, 1, 0)

	assert.Equal(t, float64(1),
		testutil.ToFloat64(c.extractionsTotal.WithLabelValues("ok")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(c.extractionsTotal.WithLabelValues("error")))
	assert.Equal(t, float64(3), testutil.ToFloat64(c.transactionsExtracted))
	assert.Equal(t, float64(4),
		testutil.ToFloat64(c.verificationChecks.WithLabelValues("pass")))
	assert.Equal(t, float64(0),
		testutil.ToFloat64(c.verificationChecks.WithLabelValues("fail")))
}

func TestRegisterTwiceFails(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := New("gpay_extractor_test")
	require.NoError(t, c.Register(registry))
	assert.Error(t, c.Register(registry))
}
