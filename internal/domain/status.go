package domain

type (
	// DeliveryStatus is the client-observed projection of the backend delivery state.
	DeliveryStatus string
	// Step is one stage of the four-step delivery timeline shown to a partner.
	Step string
)

// List of delivery statuses observed from the backend or set locally.
const (
	StatusPendingAssignment DeliveryStatus = "pending_assignment"
	StatusAccepted          DeliveryStatus = "accepted"
	StatusPickedUp          DeliveryStatus = "picked_up"
	StatusOutForDelivery    DeliveryStatus = "outForDelivery"
	StatusInTransit         DeliveryStatus = "in_transit"
	StatusDelivered         DeliveryStatus = "delivered"
)

// List of timeline steps
const (
	StepAccepted  Step = "accepted"
	StepPickedUp  Step = "picked_up"
	StepInTransit Step = "in_transit"
	StepDelivered Step = "delivered"
)

var allowedStatuses = [...]DeliveryStatus{
	StatusPendingAssignment,
	StatusAccepted,
	StatusPickedUp,
	StatusOutForDelivery,
	StatusInTransit,
	StatusDelivered,
}

var timeline = [...]Step{StepAccepted, StepPickedUp, StepInTransit, StepDelivered}

// Valid checks if the DeliveryStatus is known.
func (s DeliveryStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsActive reports whether a delivery with this status belongs on the active list.
func (s DeliveryStatus) IsActive() bool {
	switch s {
	case StatusAccepted, StatusPickedUp, StatusOutForDelivery, StatusInTransit:
		return true
	default:
		return false
	}
}

// Steps returns the timeline steps in display order.
func Steps() []Step {
	out := make([]Step, len(timeline))
	copy(out, timeline[:])
	return out
}

// Progress marks which timeline steps are complete.
type Progress map[Step]bool

// Completed returns how many steps are marked complete.
func (p Progress) Completed() int {
	n := 0
	for _, s := range timeline {
		if p[s] {
			n++
		}
	}
	return n
}

// ProgressFor computes the timeline for a status.
// The backend reports picked-up and in-transit as a single outForDelivery state,
// so both steps complete together for it.
func ProgressFor(s DeliveryStatus) Progress {
	p := Progress{}
	for _, step := range timeline {
		p[step] = false
	}
	switch s {
	case StatusAccepted:
		p[StepAccepted] = true
	case StatusPickedUp:
		p[StepAccepted], p[StepPickedUp] = true, true
	case StatusOutForDelivery, StatusInTransit:
		p[StepAccepted], p[StepPickedUp], p[StepInTransit] = true, true, true
	case StatusDelivered:
		for _, step := range timeline {
			p[step] = true
		}
	}
	return p
}

// NextStatus returns the status a partner moves a delivery to next.
func NextStatus(s DeliveryStatus) (DeliveryStatus, bool) {
	switch s {
	case StatusAccepted:
		return StatusPickedUp, true
	case StatusPickedUp:
		return StatusInTransit, true
	case StatusInTransit, StatusOutForDelivery:
		return StatusDelivered, true
	default:
		return "", false
	}
}
