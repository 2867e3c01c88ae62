package deliveries

import (
	"strings"

	"artmarket-partner-console/internal/domain"
	partnergw "artmarket-partner-console/internal/gateway/partner"
)

// FromActive converts an item of the active endpoint into the canonical delivery.
func FromActive(r partnergw.ActiveRequest) domain.DeliveryRequest {
	d := domain.DeliveryRequest{
		ID:                string(r.ID),
		RequestType:       r.RequestType,
		ArtistName:        r.ArtistName,
		BuyerName:         r.BuyerName,
		BuyerPhone:        r.BuyerPhone,
		BuyerContact:      r.BuyerPhone,
		ArtworkTitle:      r.ArtworkTitle,
		ArtworkType:       r.ArtworkType,
		ArtworkDimensions: r.ArtworkDimensions,
		PickupAddress:     r.PickupAddress,
		PickupCity:        r.PickupCity,
		ShippingAddress:   r.ShippingAddress,
		Status:            normalizeStatus(r.DeliveryStatus),
		PaymentAmount:     float64(r.PaymentAmount),
		TotalAmount:       float64(r.TotalAmount),
		ShippingFee:       float64(r.ShippingFee),
		RequestDate:       r.OrderDate.Time,
		AcceptedDate:      r.AcceptedDate.Time,
		EstimatedDelivery: r.Deadline.Time,
	}
	if !d.RequestType.Valid() {
		d.RequestType = domain.RequestTypeArtworkOrder
	}
	d.Progress = domain.ProgressFor(d.Status)
	return d
}

// FromLegacyArtwork converts a legacy artwork order into the canonical delivery.
func FromLegacyArtwork(o partnergw.LegacyArtworkOrder) domain.DeliveryRequest {
	d := domain.DeliveryRequest{
		ID:                string(o.ID),
		RequestType:       domain.RequestTypeArtworkOrder,
		ArtistName:        o.ArtistName,
		ArtistPhone:       o.ArtistPhone,
		BuyerName:         o.BuyerName,
		BuyerPhone:        o.BuyerPhone,
		BuyerContact:      firstNonEmpty(o.BuyerPhone, o.BuyerEmail),
		ArtworkTitle:      o.ArtworkTitle,
		ArtworkType:       o.ArtworkType,
		ArtworkDimensions: o.ArtworkDimensions,
		PickupAddress:     o.PickupAddress,
		PickupCity:        o.PickupCity,
		ShippingAddress:   o.ShippingAddress,
		Status:            normalizeStatus(o.DeliveryStatus),
		PaymentAmount:     float64(o.PaymentAmount),
		TotalAmount:       float64(o.TotalAmount),
		ShippingFee:       float64(o.ShippingFee),
		RequestDate:       o.OrderDate.Time,
		AcceptedDate:      o.AcceptedDate.Time,
		EstimatedDelivery: o.EstimatedDelivery.Time,
		PartnerID:         string(o.DeliveryPartnerID),
	}
	if d.PaymentAmount == 0 {
		d.PaymentAmount = d.TotalAmount
	}
	d.Progress = domain.ProgressFor(d.Status)
	return d
}

// FromLegacyCommission converts a legacy commission request into the canonical delivery.
func FromLegacyCommission(c partnergw.LegacyCommissionRequest) domain.DeliveryRequest {
	d := domain.DeliveryRequest{
		ID:                 string(c.ID),
		RequestType:        domain.RequestTypeCommissionRequest,
		ArtistName:         c.ArtistName,
		ArtistPhone:        c.ArtistPhone,
		BuyerName:          c.BuyerName,
		BuyerPhone:         c.BuyerPhone,
		BuyerContact:       firstNonEmpty(c.BuyerPhone, c.BuyerEmail),
		ArtworkTitle:       c.Title,
		ArtworkType:        "commission",
		ArtworkDimensions:  c.Dimensions,
		ArtworkDescription: c.Description,
		PickupAddress:      c.PickupAddress,
		PickupCity:         c.PickupCity,
		ShippingAddress:    c.DeliveryAddress,
		Status:             normalizeStatus(c.DeliveryStatus),
		PaymentAmount:      float64(c.Budget),
		TotalAmount:        float64(c.Budget),
		ShippingFee:        float64(c.ShippingFee),
		RequestDate:        c.CreatedAt.Time,
		AcceptedDate:       c.AcceptedDate.Time,
		EstimatedDelivery:  c.Deadline.Time,
		PartnerID:          string(c.DeliveryPartnerID),
	}
	d.Progress = domain.ProgressFor(d.Status)
	return d
}

// FromPending flattens the legacy response, artwork orders first.
func FromPending(p partnergw.PendingData) []domain.DeliveryRequest {
	out := make([]domain.DeliveryRequest, 0, len(p.ArtworkOrders)+len(p.CommissionRequests))
	for _, o := range p.ArtworkOrders {
		out = append(out, FromLegacyArtwork(o))
	}
	for _, c := range p.CommissionRequests {
		out = append(out, FromLegacyCommission(c))
	}
	return out
}

// normalizeStatus folds spelling variants the legacy endpoint emits.
func normalizeStatus(s domain.DeliveryStatus) domain.DeliveryStatus {
	switch strings.ToLower(strings.TrimSpace(string(s))) {
	case "outfordelivery", "out_for_delivery", "out-for-delivery":
		return domain.StatusOutForDelivery
	case "":
		return ""
	default:
		return domain.DeliveryStatus(strings.ToLower(strings.TrimSpace(string(s))))
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
