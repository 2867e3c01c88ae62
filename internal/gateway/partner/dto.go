package partner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"artmarket-partner-console/internal/domain"
)

// ID accepts both JSON strings and numbers; backend ids come in either form.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Amount accepts monetary values as JSON numbers or numeric strings.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*a = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("amount %q: %w", s, err)
		}
		*a = Amount(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	*a = Amount(f)
	return nil
}

// Timestamp accepts RFC 3339 timestamps, plain dates, epoch milliseconds,
// empty strings and null. Anything else decodes to the zero time with the raw
// value kept in Unparsed, so one bad date does not fail the whole list.
type Timestamp struct {
	time.Time
	Unparsed string
}

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*t = Timestamp{}
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var ms int64
	if err := json.Unmarshal(b, &ms); err == nil {
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		t.Unparsed = string(b)
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			t.Time = ts.UTC()
			return nil
		}
	}
	t.Unparsed = s
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

// ActiveRequest is one item of GET /delivery-partner/requests/active.
type ActiveRequest struct {
	ID                ID                    `json:"id"`
	RequestType       domain.RequestType    `json:"requestType"`
	ArtistName        string                `json:"artistName"`
	BuyerName         string                `json:"buyerName"`
	BuyerPhone        string                `json:"buyerPhone"`
	PaymentAmount     Amount                `json:"paymentAmount"`
	ArtworkTitle      string                `json:"artworkTitle"`
	ArtworkType       string                `json:"artworkType"`
	ArtworkDimensions string                `json:"artworkDimensions"`
	TotalAmount       Amount                `json:"totalAmount"`
	PickupAddress     string                `json:"pickupAddress"`
	PickupCity        string                `json:"pickupCity"`
	ShippingAddress   string                `json:"shippingAddress"`
	DeliveryStatus    domain.DeliveryStatus `json:"deliveryStatus"`
	ShippingFee       Amount                `json:"shippingFee"`
	OrderDate         Timestamp             `json:"orderDate"`
	AcceptedDate      Timestamp             `json:"acceptedDate"`
	Deadline          Timestamp             `json:"deadline"`
}

// ActiveResponse is the body of GET /delivery-partner/requests/active.
type ActiveResponse struct {
	Success  bool            `json:"success"`
	Requests []ActiveRequest `json:"requests"`
}

// LegacyArtworkOrder is an artwork order in the legacy pending shape.
type LegacyArtworkOrder struct {
	ID                ID                    `json:"id"`
	ArtistName        string                `json:"artist_name"`
	ArtistPhone       string                `json:"artist_phone"`
	BuyerName         string                `json:"buyer_name"`
	BuyerPhone        string                `json:"buyer_phone"`
	BuyerEmail        string                `json:"buyer_email"`
	ArtworkTitle      string                `json:"artwork_title"`
	ArtworkType       string                `json:"artwork_type"`
	ArtworkDimensions string                `json:"dimensions"`
	TotalAmount       Amount                `json:"total_amount"`
	PaymentAmount     Amount                `json:"payment_amount"`
	PickupAddress     string                `json:"pickup_address"`
	PickupCity        string                `json:"pickup_city"`
	ShippingAddress   string                `json:"shipping_address"`
	DeliveryStatus    domain.DeliveryStatus `json:"delivery_status"`
	ShippingFee       Amount                `json:"shipping_fee"`
	OrderDate         Timestamp             `json:"order_date"`
	AcceptedDate      Timestamp             `json:"accepted_date"`
	EstimatedDelivery Timestamp             `json:"estimated_delivery_date"`
	DeliveryPartnerID ID                    `json:"delivery_partner_id"`
}

// LegacyCommissionRequest is a commission in the legacy pending shape.
type LegacyCommissionRequest struct {
	ID                ID                    `json:"id"`
	ArtistName        string                `json:"artist_name"`
	ArtistPhone       string                `json:"artist_phone"`
	BuyerName         string                `json:"buyer_name"`
	BuyerPhone        string                `json:"buyer_phone"`
	BuyerEmail        string                `json:"buyer_email"`
	Title             string                `json:"title"`
	Description       string                `json:"description"`
	Dimensions        string                `json:"dimensions"`
	Budget            Amount                `json:"budget"`
	PickupAddress     string                `json:"pickup_address"`
	PickupCity        string                `json:"pickup_city"`
	DeliveryAddress   string                `json:"delivery_address"`
	DeliveryStatus    domain.DeliveryStatus `json:"delivery_status"`
	ShippingFee       Amount                `json:"shipping_fee"`
	CreatedAt         Timestamp             `json:"created_at"`
	AcceptedDate      Timestamp             `json:"accepted_date"`
	Deadline          Timestamp             `json:"deadline"`
	DeliveryPartnerID ID                    `json:"delivery_partner_id"`
}

// PendingData groups the legacy pending lists.
type PendingData struct {
	ArtworkOrders      []LegacyArtworkOrder      `json:"artworkOrders"`
	CommissionRequests []LegacyCommissionRequest `json:"commissionRequests"`
}

// PendingResponse is the body of GET /delivery-status/pending.
type PendingResponse struct {
	Success bool        `json:"success"`
	Data    PendingData `json:"data"`
}

// StatusUpdateResponse is the body returned by the delivery-status PUT endpoints.
type StatusUpdateResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	PlatformFee   Amount `json:"platformFee"`
	PaymentAmount Amount `json:"paymentAmount"`
}

// ComprehensiveUpdate is the body of PUT /delivery-status/update-comprehensive.
type ComprehensiveUpdate struct {
	OrderID           string                `json:"orderId"`
	OrderType         domain.OrderType      `json:"orderType"`
	DeliveryStatus    domain.DeliveryStatus `json:"deliveryStatus"`
	ShippingFee       float64               `json:"shippingFee"`
	DeliveryPartnerID string                `json:"deliveryPartnerId"`
}

// envelope carries the fields every backend response may use to report failure.
type envelope struct {
	Success *bool           `json:"success"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details"`
}

func (e envelope) details() string {
	raw := bytes.TrimSpace(e.Details)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
