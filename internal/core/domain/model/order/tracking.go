package order

import (
	"slices"
	"time"

	"foodies/internal/core/domain/model/kernel"
)

// Tracking records lifecycle landmarks and the live delivery position.
// Landmarks are write-once and never earlier than the latest landmark
// already recorded.
type Tracking struct {
	placed          *time.Time
	confirmed       *time.Time
	prepared        *time.Time
	pickedUp        *time.Time
	delivered       *time.Time
	currentLocation *kernel.Location
	currentStatus   string
	notes           []string
}

func (t Tracking) Placed() *time.Time    { return copyTime(t.placed) }
func (t Tracking) Confirmed() *time.Time { return copyTime(t.confirmed) }
func (t Tracking) Prepared() *time.Time  { return copyTime(t.prepared) }
func (t Tracking) PickedUp() *time.Time  { return copyTime(t.pickedUp) }
func (t Tracking) Delivered() *time.Time { return copyTime(t.delivered) }
func (t Tracking) CurrentStatus() string { return t.currentStatus }
func (t Tracking) Notes() []string       { return slices.Clone(t.notes) }
func (t Tracking) CurrentLocation() *kernel.Location {
	if t.currentLocation == nil {
		return nil
	}
	loc := *t.currentLocation
	return &loc
}

// landmarkSlot returns the landmark a transition into s sets, or nil.
// PREPARING sets prepared; READY_FOR_PICKUP only fills it when still unset.
func (t *Tracking) landmarkSlot(s Status) **time.Time {
	switch s {
	case Confirmed:
		return &t.confirmed
	case Preparing, ReadyForPickup:
		return &t.prepared
	case PickedUp:
		return &t.pickedUp
	case Delivered:
		return &t.delivered
	default:
		return nil
	}
}

// latest returns the most recent landmark, or the zero time.
func (t *Tracking) latest() time.Time {
	var latest time.Time
	for _, ts := range []*time.Time{t.placed, t.confirmed, t.prepared, t.pickedUp, t.delivered} {
		if ts != nil && ts.After(latest) {
			latest = *ts
		}
	}
	return latest
}

// record applies a status change. now is clamped forward to keep landmarks
// monotonic when the wall clock steps back.
func (t *Tracking) record(s Status, note string, now time.Time) {
	if latest := t.latest(); now.Before(latest) {
		now = latest
	}
	if slot := t.landmarkSlot(s); slot != nil && *slot == nil {
		ts := now
		*slot = &ts
	}
	t.currentStatus = s.String()
	if note != "" {
		t.notes = append(t.notes, note)
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
