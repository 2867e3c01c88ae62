package kafka

import (
	"strings"
	"time"

	"artmarket-partner-console/internal/domain"
)

// DeliveryDTO is the delivery snapshot carried by an event.
type DeliveryDTO struct {
	ID                 string    `json:"id"`
	RequestType        string    `json:"request_type"`
	ArtistName         string    `json:"artist_name,omitempty"`
	ArtistPhone        string    `json:"artist_phone,omitempty"`
	BuyerName          string    `json:"buyer_name,omitempty"`
	BuyerPhone         string    `json:"buyer_phone,omitempty"`
	BuyerContact       string    `json:"buyer_contact,omitempty"`
	ArtworkTitle       string    `json:"artwork_title,omitempty"`
	ArtworkType        string    `json:"artwork_type,omitempty"`
	ArtworkDimensions  string    `json:"artwork_dimensions,omitempty"`
	ArtworkDescription string    `json:"artwork_description,omitempty"`
	PickupAddress      string    `json:"pickup_address,omitempty"`
	PickupCity         string    `json:"pickup_city,omitempty"`
	ShippingAddress    string    `json:"shipping_address,omitempty"`
	PaymentAmount      float64   `json:"payment_amount"`
	TotalAmount        float64   `json:"total_amount"`
	ShippingFee        float64   `json:"shipping_fee"`
	RequestDate        time.Time `json:"request_date"`
	AcceptedDate       time.Time `json:"accepted_date"`
	EstimatedDelivery  time.Time `json:"estimated_delivery"`
	PartnerID          string    `json:"partner_id,omitempty"`
}

// StatusChangedEvent is published for every status change the backend accepted.
type StatusChangedEvent struct {
	EventID     string      `json:"event_id"`
	DeliveryID  string      `json:"delivery_id"`
	OrderType   string      `json:"order_type"`
	RequestType string      `json:"request_type"`
	Status      string      `json:"status"`
	OccurredAt  time.Time   `json:"occurred_at"`
	Delivery    DeliveryDTO `json:"delivery"`
}

// FromTransition builds the event for t.
func FromTransition(eventID string, t domain.Transition) StatusChangedEvent {
	d := t.Delivery
	return StatusChangedEvent{
		EventID:     eventID,
		DeliveryID:  d.ID,
		OrderType:   string(d.OrderType()),
		RequestType: string(d.RequestType),
		Status:      string(t.Status),
		OccurredAt:  t.OccurredAt.UTC(),
		Delivery: DeliveryDTO{
			ID:                 d.ID,
			RequestType:        string(d.RequestType),
			ArtistName:         d.ArtistName,
			ArtistPhone:        d.ArtistPhone,
			BuyerName:          d.BuyerName,
			BuyerPhone:         d.BuyerPhone,
			BuyerContact:       d.BuyerContact,
			ArtworkTitle:       d.ArtworkTitle,
			ArtworkType:        d.ArtworkType,
			ArtworkDimensions:  d.ArtworkDimensions,
			ArtworkDescription: d.ArtworkDescription,
			PickupAddress:      d.PickupAddress,
			PickupCity:         d.PickupCity,
			ShippingAddress:    d.ShippingAddress,
			PaymentAmount:      d.PaymentAmount,
			TotalAmount:        d.TotalAmount,
			ShippingFee:        d.ShippingFee,
			RequestDate:        d.RequestDate,
			AcceptedDate:       d.AcceptedDate,
			EstimatedDelivery:  d.EstimatedDelivery,
			PartnerID:          d.PartnerID,
		},
	}
}

// ToDomain converts the event back into a transition.
func ToDomain(ev StatusChangedEvent) domain.Transition {
	s := domain.DeliveryStatus(strings.TrimSpace(ev.Status))
	dto := ev.Delivery
	id := strings.TrimSpace(ev.DeliveryID)
	if id == "" {
		id = strings.TrimSpace(dto.ID)
	}
	reqType := domain.RequestType(strings.TrimSpace(ev.RequestType))
	if reqType == "" {
		reqType = domain.RequestType(dto.RequestType)
	}
	return domain.Transition{
		Status:     s,
		OccurredAt: ev.OccurredAt,
		Delivery: domain.DeliveryRequest{
			ID:                 id,
			RequestType:        reqType,
			ArtistName:         dto.ArtistName,
			ArtistPhone:        dto.ArtistPhone,
			BuyerName:          dto.BuyerName,
			BuyerPhone:         dto.BuyerPhone,
			BuyerContact:       dto.BuyerContact,
			ArtworkTitle:       dto.ArtworkTitle,
			ArtworkType:        dto.ArtworkType,
			ArtworkDimensions:  dto.ArtworkDimensions,
			ArtworkDescription: dto.ArtworkDescription,
			PickupAddress:      dto.PickupAddress,
			PickupCity:         dto.PickupCity,
			ShippingAddress:    dto.ShippingAddress,
			Status:             s,
			PaymentAmount:      dto.PaymentAmount,
			TotalAmount:        dto.TotalAmount,
			ShippingFee:        dto.ShippingFee,
			RequestDate:        dto.RequestDate,
			AcceptedDate:       dto.AcceptedDate,
			EstimatedDelivery:  dto.EstimatedDelivery,
			Progress:           domain.ProgressFor(s),
			PartnerID:          dto.PartnerID,
		},
	}
}
