package models

import "errors"

// ErrRevisionNotOpen is returned when a closed revision is used to supersede the current one.
var ErrRevisionNotOpen = errors.New("superseding revision must be open")

// revision is implemented by every revision kind that carries an effective range.
type revision[R any] interface {
	effective() DateRange
	withEffective(DateRange) R
}

// currentOf keeps the revisions whose effective range is still open, in insertion order.
func currentOf[R revision[R]](revisions []R) []R {
	var current []R
	for _, r := range revisions {
		if r.effective().IsOpen() {
			current = append(current, r)
		}
	}
	return current
}

// supersede closes every open revision in the same slot as next at next's start and appends next.
// The input slice is left untouched; on error nothing is applied.
func supersede[R revision[R], K comparable](revisions []R, next R, slot func(R) K) ([]R, error) {
	from := next.effective().From()
	if !next.effective().IsOpen() {
		return nil, ErrRevisionNotOpen
	}

	updated := make([]R, 0, len(revisions)+1)
	for _, r := range revisions {
		if r.effective().IsOpen() && slot(r) == slot(next) {
			closed, err := r.effective().Close(from)
			if err != nil {
				return nil, err
			}
			r = r.withEffective(closed)
		}
		updated = append(updated, r)
	}
	return append(updated, next), nil
}

// singleSlot puts every revision of a kind in the same slot.
func singleSlot[R any](R) struct{} {
	return struct{}{}
}
