package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/lodgeworks/gatehouse/internal/intake/domain"
	"github.com/lodgeworks/gatehouse/internal/intake/store"
)

type verificationsRepo struct {
	db *sql.DB
}

func (r *verificationsRepo) Create(ctx context.Context, v domain.VerificationSession) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO verification_sessions
			(id, email, code_hash, client_ip, attempts, verified, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.Email, v.CodeHash, v.ClientIP,
		v.Attempts, boolToInt(v.Verified),
		formatTime(v.CreatedAt), formatTime(v.ExpiresAt),
	)
	return err
}

func (r *verificationsRepo) Get(ctx context.Context, id string) (domain.VerificationSession, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, code_hash, client_ip, attempts, verified, created_at, expires_at
		FROM verification_sessions WHERE id = ?`, id)
	return scanVerification(row)
}

func (r *verificationsRepo) IncrementAttempts(ctx context.Context, id string) (domain.VerificationSession, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE verification_sessions SET attempts = attempts + 1
		WHERE id = ?
		RETURNING id, email, code_hash, client_ip, attempts, verified, created_at, expires_at`,
		id)
	return scanVerification(row)
}

func (r *verificationsRepo) MarkVerified(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE verification_sessions SET verified = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *verificationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM verification_sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *verificationsRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM verification_sessions WHERE expires_at < ?`, formatTime(now))
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVerification(row rowScanner) (domain.VerificationSession, error) {
	var (
		v                    domain.VerificationSession
		verified             int
		createdAt, expiresAt string
	)

	err := row.Scan(&v.ID, &v.Email, &v.CodeHash, &v.ClientIP,
		&v.Attempts, &verified, &createdAt, &expiresAt)
	if err != nil {
		return domain.VerificationSession{}, mapNotFound(err)
	}

	v.Verified = verified != 0
	if v.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.VerificationSession{}, err
	}
	if v.ExpiresAt, err = parseTime(expiresAt); err != nil {
		return domain.VerificationSession{}, err
	}
	return v, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func requireRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
