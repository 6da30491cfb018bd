// Package selection holds the two-click range picker used by booking clients.
// It is a pure reducer over click and reset events: no I/O, no clock, no
// goroutines, so the whole interaction model is testable without a UI.
package selection

import "github.com/Hemantgupta27/Court-booking-application/internal/slot"

type State int

const (
	Empty State = iota
	SingleSelected
	RangeSelected
)

func (s State) String() string {
	switch s {
	case SingleSelected:
		return "single"
	case RangeSelected:
		return "range"
	default:
		return "empty"
	}
}

// Selection is an immutable snapshot of the picker. Slots holds the anchor in
// SingleSelected and the full contiguous range in RangeSelected, always in
// grid order.
type Selection struct {
	State State
	Slots []slot.Slot
}

// ClickOutcome pairs the next state with whether the click was refused
// because the candidate range crossed a booked slot. A blocked range is a
// whole-range rejection: nothing is trimmed, the second click becomes the new
// sole anchor.
type ClickOutcome struct {
	Selection    Selection
	RangeBlocked bool
}

func New() Selection {
	return Selection{State: Empty}
}

// Reset drops any selection. Callers invoke it on venue change, date change
// and after a submission.
func (s Selection) Reset() Selection {
	return New()
}

// Click advances the machine for one tap on a slot within day, the ordered
// slot grid the selection is drawn from. Only the second consecutive click
// extends; any other click restarts the selection at the clicked slot.
func (s Selection) Click(day []slot.Slot, clicked slot.Slot) ClickOutcome {
	if clicked.IsBooked {
		// Booked slots are not selectable; invariant: a selection never
		// contains a booked member.
		return ClickOutcome{Selection: s}
	}

	if s.State != SingleSelected {
		return ClickOutcome{Selection: anchor(clicked)}
	}

	startIdx := indexOf(day, s.Slots[0].ID)
	endIdx := indexOf(day, clicked.ID)
	if startIdx == -1 || endIdx == -1 {
		// Stale reference, e.g. the grid was refetched under the user.
		return ClickOutcome{Selection: s}
	}

	lo, hi := startIdx, endIdx
	if lo > hi {
		lo, hi = hi, lo
	}

	candidate := make([]slot.Slot, hi-lo+1)
	copy(candidate, day[lo:hi+1])

	for _, member := range candidate {
		if member.IsBooked {
			return ClickOutcome{Selection: anchor(clicked), RangeBlocked: true}
		}
	}

	return ClickOutcome{Selection: Selection{State: RangeSelected, Slots: candidate}}
}

func anchor(s slot.Slot) Selection {
	return Selection{State: SingleSelected, Slots: []slot.Slot{s}}
}

func indexOf(day []slot.Slot, id string) int {
	for i, s := range day {
		if s.ID == id {
			return i
		}
	}
	return -1
}
