package domain

import "time"

type (
	// RequestType is the kind of marketplace item a delivery ships.
	RequestType string
	// OrderType is the path segment the delivery-status endpoints expect.
	OrderType string
)

// List of request types
const (
	RequestTypeArtworkOrder      RequestType = "artwork_order"
	RequestTypeCommissionRequest RequestType = "commission_request"
)

// List of order types
const (
	OrderTypeArtwork    OrderType = "artwork"
	OrderTypeCommission OrderType = "commission"
)

// Valid checks if the RequestType is known.
func (t RequestType) Valid() bool {
	return t == RequestTypeArtworkOrder || t == RequestTypeCommissionRequest
}

// OrderTypeFor maps a request type to its order type: artwork iff artwork_order.
func OrderTypeFor(t RequestType) OrderType {
	if t == RequestTypeArtworkOrder {
		return OrderTypeArtwork
	}
	return OrderTypeCommission
}

// DeliveryRequest - a shipment task a delivery partner works on.
type DeliveryRequest struct {
	ID          string
	RequestType RequestType

	ArtistName   string
	ArtistPhone  string
	BuyerName    string
	BuyerPhone   string
	BuyerContact string

	ArtworkTitle       string
	ArtworkType        string
	ArtworkDimensions  string
	ArtworkDescription string

	PickupAddress   string
	PickupCity      string
	ShippingAddress string

	Status        DeliveryStatus
	PaymentAmount float64
	TotalAmount   float64
	ShippingFee   float64

	RequestDate       time.Time
	AcceptedDate      time.Time
	EstimatedDelivery time.Time

	Progress  Progress
	PartnerID string
}

// OrderType returns the order type used to address this delivery on the backend.
func (d DeliveryRequest) OrderType() OrderType {
	return OrderTypeFor(d.RequestType)
}

// Clone returns a copy that does not share the progress map.
func (d DeliveryRequest) Clone() DeliveryRequest {
	cp := d
	if d.Progress != nil {
		cp.Progress = make(Progress, len(d.Progress))
		for k, v := range d.Progress {
			cp.Progress[k] = v
		}
	}
	return cp
}

// Transition - a status change applied to a delivery.
type Transition struct {
	Delivery   DeliveryRequest
	Status     DeliveryStatus
	OccurredAt time.Time
}
