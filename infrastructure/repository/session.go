package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/partner-revenue-api/infrastructure/database/postgres"
	"github.com/vfg2006/partner-revenue-api/internal/domain"
)

const sessionsTable = "admin_sessions"

//go:generate mockgen -source=session.go -destination=mocks/session.go -package=mocks
type SessionRepository interface {
	UpsertSession(ctx context.Context, session *domain.AdminSession) error
	GetSession(ctx context.Context, adminID string) (*domain.AdminSession, error)
	DeleteSession(ctx context.Context, adminID string) error
}

type sessionRepository struct {
	db postgres.Queryer
}

func NewSessionRepository(db postgres.Queryer) SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// UpsertSession substitui a sessão ativa do admin, se houver
func (r *sessionRepository) UpsertSession(ctx context.Context, session *domain.AdminSession) error {
	query, args, err := squirrel.
		Insert(sessionsTable).
		Columns("admin_id", "session_token", "expires_at", "created_at").
		Values(session.AdminID, session.SessionToken, session.ExpiresAt, session.CreatedAt).
		Suffix(`
			ON CONFLICT (admin_id) DO UPDATE SET
				session_token = EXCLUDED.session_token,
				expires_at = EXCLUDED.expires_at,
				created_at = EXCLUDED.created_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapPQError(err)
	}

	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context, adminID string) (*domain.AdminSession, error) {
	query, args, err := squirrel.
		Select("admin_id, session_token, expires_at, created_at").
		From(sessionsTable).
		Where(squirrel.Eq{"admin_id": adminID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var session domain.AdminSession
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&session.AdminID,
		&session.SessionToken,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear sessão: %w", err)
	}

	return &session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, adminID string) error {
	query, args, err := squirrel.
		Delete(sessionsTable).
		Where(squirrel.Eq{"admin_id": adminID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapPQError(err)
	}

	return nil
}
