package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"artmarket-partner-console/internal/domain"
)

// HistoryRepo stores completed deliveries.
type HistoryRepo struct {
	db *pgxpool.Pool
}

// NewHistoryRepo creates a new HistoryRepo.
func NewHistoryRepo(db *pgxpool.Pool) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// Record upserts the delivery of a delivered transition. Other transitions are ignored.
func (r *HistoryRepo) Record(ctx context.Context, t domain.Transition) error {
	if t.Status != domain.StatusDelivered {
		return nil
	}
	d := t.Delivery
	deliveredAt := t.OccurredAt
	if deliveredAt.IsZero() {
		deliveredAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO delivery_history (
			delivery_id, request_type, status,
			artist_name, artist_phone, buyer_name, buyer_phone, buyer_contact,
			artwork_title, artwork_type, artwork_dimensions, artwork_description,
			pickup_address, pickup_city, shipping_address,
			payment_amount, total_amount, shipping_fee,
			request_date, accepted_date, estimated_delivery,
			partner_id, delivered_at
		) VALUES (
			$1, $2, $3,
			$4, $5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, $14, $15,
			$16, $17, $18,
			$19, $20, $21,
			$22, $23
		)
		ON CONFLICT (delivery_id) DO UPDATE SET
			request_type        = EXCLUDED.request_type,
			status              = EXCLUDED.status,
			artist_name         = EXCLUDED.artist_name,
			artist_phone        = EXCLUDED.artist_phone,
			buyer_name          = EXCLUDED.buyer_name,
			buyer_phone         = EXCLUDED.buyer_phone,
			buyer_contact       = EXCLUDED.buyer_contact,
			artwork_title       = EXCLUDED.artwork_title,
			artwork_type        = EXCLUDED.artwork_type,
			artwork_dimensions  = EXCLUDED.artwork_dimensions,
			artwork_description = EXCLUDED.artwork_description,
			pickup_address      = EXCLUDED.pickup_address,
			pickup_city         = EXCLUDED.pickup_city,
			shipping_address    = EXCLUDED.shipping_address,
			payment_amount      = EXCLUDED.payment_amount,
			total_amount        = EXCLUDED.total_amount,
			shipping_fee        = EXCLUDED.shipping_fee,
			request_date        = EXCLUDED.request_date,
			accepted_date       = EXCLUDED.accepted_date,
			estimated_delivery  = EXCLUDED.estimated_delivery,
			partner_id          = EXCLUDED.partner_id,
			delivered_at        = EXCLUDED.delivered_at
	`,
		d.ID, string(d.RequestType), string(domain.StatusDelivered),
		d.ArtistName, d.ArtistPhone, d.BuyerName, d.BuyerPhone, d.BuyerContact,
		d.ArtworkTitle, d.ArtworkType, d.ArtworkDimensions, d.ArtworkDescription,
		d.PickupAddress, d.PickupCity, d.ShippingAddress,
		d.PaymentAmount, d.TotalAmount, d.ShippingFee,
		nullTime(d.RequestDate), nullTime(d.AcceptedDate), nullTime(d.EstimatedDelivery),
		d.PartnerID, deliveredAt,
	)
	if err != nil {
		return fmt.Errorf("record delivery %s: %w", d.ID, err)
	}
	return nil
}

// List returns the whole history, most recently delivered first.
func (r *HistoryRepo) List(ctx context.Context) ([]domain.DeliveryRequest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			delivery_id, request_type, status,
			artist_name, artist_phone, buyer_name, buyer_phone, buyer_contact,
			artwork_title, artwork_type, artwork_dimensions, artwork_description,
			pickup_address, pickup_city, shipping_address,
			payment_amount, total_amount, shipping_fee,
			request_date, accepted_date, estimated_delivery,
			partner_id
		FROM delivery_history
		ORDER BY delivered_at DESC, delivery_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list delivery history: %w", err)
	}

	items, err := pgx.CollectRows(rows, scanDelivery)
	if err != nil {
		return nil, fmt.Errorf("scan delivery history: %w", err)
	}
	return items, nil
}

func scanDelivery(row pgx.CollectableRow) (domain.DeliveryRequest, error) {
	var d domain.DeliveryRequest
	var requestType, status string
	var requestDate, acceptedDate, estDelivery *time.Time
	err := row.Scan(
		&d.ID, &requestType, &status,
		&d.ArtistName, &d.ArtistPhone, &d.BuyerName, &d.BuyerPhone, &d.BuyerContact,
		&d.ArtworkTitle, &d.ArtworkType, &d.ArtworkDimensions, &d.ArtworkDescription,
		&d.PickupAddress, &d.PickupCity, &d.ShippingAddress,
		&d.PaymentAmount, &d.TotalAmount, &d.ShippingFee,
		&requestDate, &acceptedDate, &estDelivery,
		&d.PartnerID,
	)
	if err != nil {
		return domain.DeliveryRequest{}, err
	}
	d.RequestType = domain.RequestType(requestType)
	d.Status = domain.DeliveryStatus(status)
	d.Progress = domain.ProgressFor(d.Status)
	d.RequestDate = derefTime(requestDate)
	d.AcceptedDate = derefTime(acceptedDate)
	d.EstimatedDelivery = derefTime(estDelivery)
	return d, nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.UTC()
}
