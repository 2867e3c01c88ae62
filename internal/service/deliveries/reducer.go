package deliveries

import "artmarket-partner-console/internal/domain"

// ApplyStatusTransition returns a copy of state in which the delivery with itemID
// carries newStatus and the matching timeline. state is not modified.
func ApplyStatusTransition(state []domain.DeliveryRequest, itemID string, newStatus domain.DeliveryStatus) []domain.DeliveryRequest {
	out := make([]domain.DeliveryRequest, len(state))
	for i, d := range state {
		out[i] = d.Clone()
		if d.ID == itemID {
			out[i].Status = newStatus
			out[i].Progress = domain.ProgressFor(newStatus)
		}
	}
	return out
}

// withoutItem returns a copy of state without itemID.
func withoutItem(state []domain.DeliveryRequest, itemID string) []domain.DeliveryRequest {
	out := make([]domain.DeliveryRequest, 0, len(state))
	for _, d := range state {
		if d.ID != itemID {
			out = append(out, d)
		}
	}
	return out
}
