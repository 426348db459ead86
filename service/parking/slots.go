package parkingsvc

import "github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/model"

// ValidationError rejects a candidate record that breaks the slot rules.
type ValidationError struct{ Reason string }

func (e *ValidationError) Error() string { return e.Reason }

// resolveSlots validates the slot relationship on a candidate record and
// settles its availability flag. The candidate must already carry the
// post-write values for TotalSlots and AvailableSlots: partial updates are
// merged over the stored record before this runs.
//
// When slotsChanged is true the flag is recomputed from AvailableSlots,
// overriding whatever the caller supplied. When false (a flag-only patch)
// the supplied flag is kept even if it disagrees with the counts; operators
// use that to close a lot that still has free slots.
//
// Pure over its inputs. Every write path funnels through here exactly once,
// so creation and the two update paths cannot drift apart.
func resolveSlots(c model.Parking, slotsChanged bool) (model.Parking, error) {
	if c.TotalSlots < 0 || c.AvailableSlots < 0 {
		return model.Parking{}, &ValidationError{Reason: "negative slot count"}
	}
	if c.AvailableSlots > c.TotalSlots {
		return model.Parking{}, &ValidationError{Reason: "available slots cannot exceed total slots"}
	}
	if slotsChanged {
		c.IsAvailable = c.AvailableSlots > 0
	}
	return c, nil
}
