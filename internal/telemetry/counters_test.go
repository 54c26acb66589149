package telemetry

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestCountersSnapshot(t *testing.T) {
	c := NewCounters(zerolog.Nop())

	c.RecordSet("A1")
	c.RecordSet("B2")
	c.RecordClear("A1")
	c.RecordInvalidation(3)
	c.RecordInvalidation(0) // ignored
	c.RecordReject("CIRCULAR_REFERENCE")
	c.RecordReject("CIRCULAR_REFERENCE")
	c.RecordReject("INVALID_POSITION")

	snap := c.Snapshot()
	require.Equal(t, 2, snap["sets"])
	require.Equal(t, 1, snap["clears"])
	require.Equal(t, 3, snap["invalidations"])
	require.Equal(t, 2, snap["reject:CIRCULAR_REFERENCE"])
	require.Equal(t, 1, snap["reject:INVALID_POSITION"])
}
