package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetMinutes(t *testing.T) {
	assert.Equal(t, 0.0, targetMinutes(90, 7, 0))
	assert.InDelta(t, 63.0, targetMinutes(90, 7, 10), 1e-9)
}

func TestRounds(t *testing.T) {
	assert.Equal(t, 0, rounds(90, 0))
	assert.Equal(t, 4, rounds(90, 20))
	assert.Equal(t, 9, rounds(90, 10))
}

func TestIntervalCount(t *testing.T) {
	assert.Equal(t, 1, intervalCount(0))
	assert.Equal(t, 5, intervalCount(4))
}

func TestIntervalLength(t *testing.T) {
	assert.Equal(t, 0.0, intervalLength(90, 0))
	assert.InDelta(t, 18.0, intervalLength(90, 5), 1e-9)
}

func TestBenchSlotsTotal(t *testing.T) {
	assert.Equal(t, 15, benchSlotsTotal(5, 3))
}

func TestBenchQuotasDistributesRemainderToEarliestPlayers(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	quotas := benchQuotas(ids, 10)

	assert.Equal(t, 3, quotas["a"])
	assert.Equal(t, 3, quotas["b"])
	assert.Equal(t, 2, quotas["c"])
	assert.Equal(t, 2, quotas["d"])

	sum := 0
	for _, q := range quotas {
		sum += q
	}
	assert.Equal(t, 10, sum)
}

func TestBenchQuotasEmptyRoster(t *testing.T) {
	quotas := benchQuotas(nil, 10)
	assert.Empty(t, quotas)
}

func TestRoundTimestampClampsToMatchLength(t *testing.T) {
	assert.Equal(t, 20.0, roundTimestamp(1, 20, 90))
	assert.Equal(t, 90.0, roundTimestamp(5, 20, 90))
}
