package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []struct {
	name string
	ddl  string
}{
	{"delivery_history", `
		CREATE TABLE IF NOT EXISTS delivery_history (
			delivery_id         TEXT PRIMARY KEY,
			request_type        TEXT NOT NULL,
			status              TEXT NOT NULL,
			artist_name         TEXT NOT NULL DEFAULT '',
			artist_phone        TEXT NOT NULL DEFAULT '',
			buyer_name          TEXT NOT NULL DEFAULT '',
			buyer_phone         TEXT NOT NULL DEFAULT '',
			buyer_contact       TEXT NOT NULL DEFAULT '',
			artwork_title       TEXT NOT NULL DEFAULT '',
			artwork_type        TEXT NOT NULL DEFAULT '',
			artwork_dimensions  TEXT NOT NULL DEFAULT '',
			artwork_description TEXT NOT NULL DEFAULT '',
			pickup_address      TEXT NOT NULL DEFAULT '',
			pickup_city         TEXT NOT NULL DEFAULT '',
			shipping_address    TEXT NOT NULL DEFAULT '',
			payment_amount      DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_amount        DOUBLE PRECISION NOT NULL DEFAULT 0,
			shipping_fee        DOUBLE PRECISION NOT NULL DEFAULT 0,
			request_date        TIMESTAMPTZ,
			accepted_date       TIMESTAMPTZ,
			estimated_delivery  TIMESTAMPTZ,
			partner_id          TEXT NOT NULL DEFAULT '',
			delivered_at        TIMESTAMPTZ NOT NULL
		);
	`},
	{"partner_session", `
		CREATE TABLE IF NOT EXISTS partner_session (
			id         SMALLINT PRIMARY KEY CHECK (id = 1),
			token      TEXT NOT NULL,
			role       TEXT NOT NULL,
			user_id    TEXT NOT NULL DEFAULT '',
			name       TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`},
}

// Migrate creates the console tables if they do not exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, t := range schema {
		if _, err := pool.Exec(ctx, t.ddl); err != nil {
			return fmt.Errorf("create %s table: %w", t.name, err)
		}
	}
	return nil
}
