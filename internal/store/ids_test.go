package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIDSequence_FollowsClock(t *testing.T) {
	var q idSequence
	t0 := time.UnixMilli(1_000)

	assert.Equal(t, int64(1_000), q.next(t0))
	assert.Equal(t, int64(1_500), q.next(t0.Add(500*time.Millisecond)))
}

func TestIDSequence_SameMillisecond(t *testing.T) {
	var q idSequence
	t0 := time.UnixMilli(1_000)

	assert.Equal(t, int64(1_000), q.next(t0))
	assert.Equal(t, int64(1_001), q.next(t0))
	assert.Equal(t, int64(1_002), q.next(t0))
}

func TestIDSequence_ClockGoesBackwards(t *testing.T) {
	var q idSequence

	assert.Equal(t, int64(5_000), q.next(time.UnixMilli(5_000)))
	assert.Equal(t, int64(5_001), q.next(time.UnixMilli(1_000)))
}

func TestIDSequence_Observe(t *testing.T) {
	var q idSequence
	q.observe(9_000)
	q.observe(100)

	assert.Equal(t, int64(9_001), q.next(time.UnixMilli(1_000)))
}
