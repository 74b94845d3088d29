package entity

import (
	"strconv"

	"github.com/diegoclair/fractal-rotation-bot/internal/domain"
)

// Fractal is a catalog entry. Scales are ordered from easiest to hardest.
type Fractal struct {
	ID     string
	Name   string
	Scales []int
}

// HardestScale returns the key of the fractal's last scale as used by the
// instability rotation table.
func (f Fractal) HardestScale() (string, bool) {
	if len(f.Scales) == 0 {
		return "", false
	}
	return strconv.Itoa(f.Scales[len(f.Scales)-1]), true
}

type Instability struct {
	ID   string
	Name string
}

// ReferenceData holds the static tables. It is built once at startup and
// never mutated afterwards.
type ReferenceData struct {
	// DailyRotation has one slot per rotation day, each listing fractal ids.
	DailyRotation [][]string
	Fractals      map[string]Fractal
	// InstabilityRotation is keyed by scale, each entry has one slot per rotation day.
	InstabilityRotation map[string][][]string
	Instabilities       map[string]Instability
}

// Validate checks the slot counts of every rotation table and that every id
// referenced by the rotations exists in its catalog.
func (r *ReferenceData) Validate() error {
	if len(r.DailyRotation) != domain.RotationLength {
		return domain.DataConsistencyf("daily rotation has %d slots, want %d", len(r.DailyRotation), domain.RotationLength)
	}

	for slot, ids := range r.DailyRotation {
		for _, id := range ids {
			if _, ok := r.Fractals[id]; !ok {
				return domain.DataConsistencyf("daily rotation slot %d references unknown fractal %q", slot, id)
			}
		}
	}

	for scale, slots := range r.InstabilityRotation {
		if len(slots) != domain.RotationLength {
			return domain.DataConsistencyf("instability rotation for scale %s has %d slots, want %d", scale, len(slots), domain.RotationLength)
		}
		for slot, ids := range slots {
			for _, id := range ids {
				if _, ok := r.Instabilities[id]; !ok {
					return domain.DataConsistencyf("instability rotation for scale %s slot %d references unknown instability %q", scale, slot, id)
				}
			}
		}
	}

	return nil
}
