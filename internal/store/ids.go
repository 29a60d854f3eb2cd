package store

import "time"

// idSequence hands out record IDs shaped like millisecond timestamps.
//
// Each ID is max(now in ms, last+1), so IDs stay compatible with records
// saved by earlier versions while remaining strictly increasing even when
// several records are created within one millisecond.
type idSequence struct {
	last int64
}

// next returns a fresh ID for a record created at now.
func (q *idSequence) next(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= q.last {
		id = q.last + 1
	}
	q.last = id
	return id
}

// observe makes sure future IDs are greater than id.
func (q *idSequence) observe(id int64) {
	q.last = max(q.last, id)
}
