package handlers

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"artmarket-partner-console/internal/domain"
	"artmarket-partner-console/internal/service/history"
)

type stepDTO struct {
	Step      domain.Step `json:"step"`
	Completed bool        `json:"completed"`
}

type deliveryDTO struct {
	ID                 string                `json:"id"`
	RequestType        domain.RequestType    `json:"requestType"`
	OrderType          domain.OrderType      `json:"orderType"`
	ArtistName         string                `json:"artistName"`
	ArtistPhone        string                `json:"artistPhone,omitempty"`
	BuyerName          string                `json:"buyerName"`
	BuyerContact       string                `json:"buyerContact,omitempty"`
	ArtworkTitle       string                `json:"artworkTitle"`
	ArtworkType        string                `json:"artworkType,omitempty"`
	ArtworkDimensions  string                `json:"artworkDimensions,omitempty"`
	ArtworkDescription string                `json:"artworkDescription,omitempty"`
	PickupAddress      string                `json:"pickupAddress"`
	PickupCity         string                `json:"pickupCity"`
	ShippingAddress    string                `json:"shippingAddress"`
	Status             domain.DeliveryStatus `json:"deliveryStatus"`
	PaymentAmount      float64               `json:"paymentAmount"`
	TotalAmount        float64               `json:"totalAmount"`
	ShippingFee        float64               `json:"shippingFee"`
	RequestDate        *time.Time            `json:"requestDate,omitempty"`
	AcceptedDate       *time.Time            `json:"acceptedDate,omitempty"`
	EstimatedDelivery  *time.Time            `json:"estimatedDelivery,omitempty"`
	PartnerID          string                `json:"deliveryPartnerId,omitempty"`
	Progress           []stepDTO             `json:"progress"`
}

type listResponse struct {
	Items []deliveryDTO `json:"items"`
	Count int           `json:"count"`
	Error string        `json:"error,omitempty"`
}

type historyResponse struct {
	Items []deliveryDTO `json:"items"`
	Count int           `json:"count"`
	Sort  sortDTO       `json:"sort"`
}

type sortDTO struct {
	Field history.SortField `json:"field"`
	Dir   string            `json:"dir"`
}

type statusRequest struct {
	Status domain.DeliveryStatus `json:"status"`
}

type advanceResponse struct {
	Delivery      deliveryDTO `json:"delivery"`
	Message       string      `json:"message,omitempty"`
	PlatformFee   float64     `json:"platformFee,omitempty"`
	PaymentAmount float64     `json:"paymentAmount,omitempty"`
}

type toggleSortRequest struct {
	Field history.SortField `json:"field"`
}

// feeInput accepts the fee as a JSON number or string; the text is validated later.
type feeInput string

func (f *feeInput) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = feeInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = feeInput(n.String())
	return nil
}

type acceptRequest struct {
	Fee feeInput `json:"fee"`
}

type sessionDTO struct {
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role,omitempty"`
	UserID        string `json:"userId,omitempty"`
	Name          string `json:"name,omitempty"`
}

type loginRequest struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

func toDeliveryDTO(d domain.DeliveryRequest) deliveryDTO {
	steps := domain.Steps()
	progress := make([]stepDTO, len(steps))
	for i, s := range steps {
		progress[i] = stepDTO{Step: s, Completed: d.Progress[s]}
	}
	return deliveryDTO{
		ID:                 d.ID,
		RequestType:        d.RequestType,
		OrderType:          d.OrderType(),
		ArtistName:         d.ArtistName,
		ArtistPhone:        d.ArtistPhone,
		BuyerName:          d.BuyerName,
		BuyerContact:       d.BuyerContact,
		ArtworkTitle:       d.ArtworkTitle,
		ArtworkType:        d.ArtworkType,
		ArtworkDimensions:  d.ArtworkDimensions,
		ArtworkDescription: d.ArtworkDescription,
		PickupAddress:      d.PickupAddress,
		PickupCity:         d.PickupCity,
		ShippingAddress:    d.ShippingAddress,
		Status:             d.Status,
		PaymentAmount:      d.PaymentAmount,
		TotalAmount:        d.TotalAmount,
		ShippingFee:        d.ShippingFee,
		RequestDate:        optTime(d.RequestDate),
		AcceptedDate:       optTime(d.AcceptedDate),
		EstimatedDelivery:  optTime(d.EstimatedDelivery),
		PartnerID:          d.PartnerID,
		Progress:           progress,
	}
}

func toDeliveryDTOs(items []domain.DeliveryRequest) []deliveryDTO {
	out := make([]deliveryDTO, len(items))
	for i, d := range items {
		out[i] = toDeliveryDTO(d)
	}
	return out
}

func toSortDTO(s history.SortState) sortDTO {
	dir := "asc"
	if s.Desc {
		dir = "desc"
	}
	return sortDTO{Field: s.Field, Dir: dir}
}

func toSessionDTO(s domain.Session) sessionDTO {
	if !s.Authenticated() {
		return sessionDTO{}
	}
	return sessionDTO{Authenticated: true, Role: s.Role, UserID: s.UserID, Name: s.Name}
}

func optTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}
