package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"artmarket-partner-console/internal/domain"
)

// SessionRepo keeps the single partner session row.
type SessionRepo struct {
	db *pgxpool.Pool
}

// NewSessionRepo creates a new SessionRepo.
func NewSessionRepo(db *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{db: db}
}

// Load returns the stored session, empty when none is stored.
func (r *SessionRepo) Load(ctx context.Context) (domain.Session, error) {
	var s domain.Session
	err := r.db.QueryRow(ctx, `
		SELECT token, role, user_id, name
		FROM partner_session
		WHERE id = 1
	`).Scan(&s.Token, &s.Role, &s.UserID, &s.Name)
	if err != nil {
		if IsNotFound(err) {
			return domain.Session{}, nil
		}
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	return s, nil
}

// Save stores s, replacing any previous session.
func (r *SessionRepo) Save(ctx context.Context, s domain.Session) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO partner_session (id, token, role, user_id, name, updated_at)
		VALUES (1, $1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE SET
			token      = EXCLUDED.token,
			role       = EXCLUDED.role,
			user_id    = EXCLUDED.user_id,
			name       = EXCLUDED.name,
			updated_at = EXCLUDED.updated_at
	`, s.Token, s.Role, s.UserID, s.Name)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes the stored session.
func (r *SessionRepo) Clear(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM partner_session WHERE id = 1`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
