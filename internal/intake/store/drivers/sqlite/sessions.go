package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/lodgeworks/gatehouse/internal/intake/domain"
)

type sessionsRepo struct {
	db *sql.DB
}

func (r *sessionsRepo) Create(ctx context.Context, s domain.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions
			(token_hash, email, client_ip, created_at, expires_at, last_activity)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.TokenHash, s.Email, s.ClientIP,
		formatTime(s.CreatedAt), formatTime(s.ExpiresAt), formatTime(s.LastActivity),
	)
	return err
}

func (r *sessionsRepo) GetByTokenHash(ctx context.Context, tokenHash string) (domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT token_hash, email, client_ip, created_at, expires_at, last_activity
		FROM sessions WHERE token_hash = ?`, tokenHash)

	var (
		s                                  domain.Session
		createdAt, expiresAt, lastActivity string
	)
	err := row.Scan(&s.TokenHash, &s.Email, &s.ClientIP,
		&createdAt, &expiresAt, &lastActivity)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}

	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Session{}, err
	}
	if s.ExpiresAt, err = parseTime(expiresAt); err != nil {
		return domain.Session{}, err
	}
	if s.LastActivity, err = parseTime(lastActivity); err != nil {
		return domain.Session{}, err
	}
	return s, nil
}

func (r *sessionsRepo) Touch(ctx context.Context, tokenHash string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET last_activity = ? WHERE token_hash = ?`,
		formatTime(at), tokenHash)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *sessionsRepo) Extend(ctx context.Context, tokenHash string, expiresAt, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET expires_at = ?, last_activity = ? WHERE token_hash = ?`,
		formatTime(expiresAt), formatTime(at), tokenHash)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *sessionsRepo) Delete(ctx context.Context, tokenHash string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE token_hash = ?`, tokenHash)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *sessionsRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at < ?`, formatTime(now))
	return err
}
