package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeLatencyStats_SingleSample(t *testing.T) {
	stats := computeLatencyStats([]time.Duration{100 * time.Millisecond})

	assert.Equal(t, 100*time.Millisecond, stats.Mean)
	assert.Equal(t, 100*time.Millisecond, stats.Median)
	assert.Equal(t, 100*time.Millisecond, stats.Min)
	assert.Equal(t, 100*time.Millisecond, stats.Max)
	assert.Equal(t, time.Duration(0), stats.Stddev)
}

func TestComputeLatencyStats_OddSampleCount(t *testing.T) {
	stats := computeLatencyStats([]time.Duration{
		30 * time.Millisecond,
		10 * time.Millisecond,
		20 * time.Millisecond,
	})

	assert.Equal(t, 20*time.Millisecond, stats.Mean)
	assert.Equal(t, 20*time.Millisecond, stats.Median)
	assert.Equal(t, 10*time.Millisecond, stats.Min)
	assert.Equal(t, 30*time.Millisecond, stats.Max)
}

func TestComputeLatencyStats_EvenSampleCountAveragesMedian(t *testing.T) {
	stats := computeLatencyStats([]time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		30 * time.Millisecond,
		40 * time.Millisecond,
	})

	assert.Equal(t, 25*time.Millisecond, stats.Median)
}

func TestComputeLatencyStats_IdenticalSamplesHaveZeroStddev(t *testing.T) {
	stats := computeLatencyStats([]time.Duration{
		50 * time.Millisecond,
		50 * time.Millisecond,
		50 * time.Millisecond,
	})

	assert.Equal(t, time.Duration(0), stats.Stddev)
}
