package history

import (
	"sort"
	"strings"
	"time"

	"artmarket-partner-console/internal/domain"
)

// FilterAll disables a filter.
const FilterAll = "all"

// SortField names a sortable column of the history view.
type SortField string

// List of sortable fields
const (
	SortByDate        SortField = "date"
	SortByRequestDate SortField = "requestDate"
	SortByArtistName  SortField = "artistName"
	SortByBuyerName   SortField = "buyerName"
	SortByFee         SortField = "fee"
)

// Valid checks if the SortField is known.
func (f SortField) Valid() bool {
	switch f {
	case SortByDate, SortByRequestDate, SortByArtistName, SortByBuyerName, SortByFee:
		return true
	default:
		return false
	}
}

// SortState is the column and direction the history is displayed in.
type SortState struct {
	Field SortField
	Desc  bool
}

// Toggle flips the direction when field is already selected,
// otherwise selects field ascending.
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field {
		return SortState{Field: field, Desc: !s.Desc}
	}
	return SortState{Field: field}
}

// Query selects and orders history items.
type Query struct {
	Status      string
	RequestType string
	Search      string
	Sort        SortState
}

// Filter returns the items matching q, in their original order.
// With no active filter the input is returned as is.
func Filter(items []domain.DeliveryRequest, q Query) []domain.DeliveryRequest {
	status := normalizeFilter(q.Status)
	reqType := normalizeFilter(q.RequestType)
	search := strings.ToLower(strings.TrimSpace(q.Search))
	if status == "" && reqType == "" && search == "" {
		return items
	}

	out := make([]domain.DeliveryRequest, 0, len(items))
	for _, d := range items {
		if status != "" && string(d.Status) != status {
			continue
		}
		if reqType != "" && string(d.RequestType) != reqType {
			continue
		}
		if search != "" && !matches(d, search) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Sort orders items by s in place. Equal keys keep their relative order in
// both directions. An unknown or empty field leaves items untouched.
func Sort(items []domain.DeliveryRequest, s SortState) {
	less := lessFor(s.Field)
	if less == nil {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		if s.Desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func lessFor(f SortField) func(a, b domain.DeliveryRequest) bool {
	switch f {
	case SortByDate:
		return func(a, b domain.DeliveryRequest) bool { return displayDate(a).Before(displayDate(b)) }
	case SortByRequestDate:
		return func(a, b domain.DeliveryRequest) bool { return a.RequestDate.Before(b.RequestDate) }
	case SortByArtistName:
		return func(a, b domain.DeliveryRequest) bool { return foldLess(a.ArtistName, b.ArtistName) }
	case SortByBuyerName:
		return func(a, b domain.DeliveryRequest) bool { return foldLess(a.BuyerName, b.BuyerName) }
	case SortByFee:
		return func(a, b domain.DeliveryRequest) bool { return a.ShippingFee < b.ShippingFee }
	default:
		return nil
	}
}

func displayDate(d domain.DeliveryRequest) time.Time {
	if !d.AcceptedDate.IsZero() {
		return d.AcceptedDate
	}
	return d.RequestDate
}

func foldLess(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

func matches(d domain.DeliveryRequest, needle string) bool {
	for _, hay := range [...]string{d.ID, d.ArtistName, d.BuyerName, d.ArtworkTitle, d.PickupCity, d.ShippingAddress} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

func normalizeFilter(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, FilterAll) {
		return ""
	}
	return v
}
